package config

const (
	ConfigIsNil              = "config is nil"
	InvalidPort              = "invalid client port"
	PassphraseTooShort       = "passphrase_length is too short"
	ServerUrlAndTokenMissing = "serverUrl and token are required"
	InvalidServerUrl         = "serverUrl must be an absolute url"
	InvalidRoomName          = "invalid room name"
)
