package config

const (
	DefaultPort        = 3000
	DefaultClientPath  = "./client"
	DefaultMetricsPath = "/metrics"

	DefaultDemoLabel            = "Demo"
	DefaultCustomLabel          = "Customizada"
	DefaultPassphraseLength     = 64
	MinPassphraseLength         = 8
	DefaultServerUrlPlaceholder = "LiveKit Server URL: wss://*.livekit.cloud"
	DefaultConnectionDetailsUrl = "/api/connection-details"
	DefaultSdkScriptUrl         = "https://cdn.jsdelivr.net/npm/livekit-client/dist/livekit-client.umd.min.js"

	// query and form keys shared by the templates and the handlers
	TabQueryKey        = "tab"
	LiveKitUrlQueryKey = "liveKitUrl"
	TokenQueryKey      = "token"
	ServerUrlFormKey   = "serverUrl"
	TokenFormKey       = "token"
	E2EEFormKey        = "e2ee"
	PassphraseFormKey  = "passphrase"
)
