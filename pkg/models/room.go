package models

import (
	"errors"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/sofya-ai/meet-launcher/pkg/config"
)

var (
	ErrInvalidRoomName     = errors.New(config.InvalidRoomName)
	ErrMissingLiveKitQuery = errors.New(config.ServerUrlAndTokenMissing)

	roomNameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)
)

// RoomPage is rendered at /rooms/:roomName. The passphrase stays in the
// url fragment and is read by the page script only.
type RoomPage struct {
	Title                string
	RoomName             string
	ConnectionDetailsUrl string
	SdkScriptUrl         string
}

// CustomRoomPage is rendered at /custom.
type CustomRoomPage struct {
	Title        string
	LiveKitUrl   string
	Token        string
	SdkScriptUrl string
	Preview      *TokenPreview
	Error        string
	BackUrl      string
}

type RoomModel struct {
	app    *config.AppConfig
	logger *logrus.Entry
}

func NewRoomModel(app *config.AppConfig, logger *logrus.Logger) *RoomModel {
	return &RoomModel{
		app:    app,
		logger: logger.WithField("model", "room"),
	}
}

func ValidateRoomName(name string) error {
	if !roomNameRegex.MatchString(name) {
		return ErrInvalidRoomName
	}
	return nil
}

func (m *RoomModel) GetRoomPage(roomName string) (*RoomPage, error) {
	if err := ValidateRoomName(roomName); err != nil {
		return nil, err
	}

	return &RoomPage{
		Title:                m.app.Meet.HeaderTitle,
		RoomName:             roomName,
		ConnectionDetailsUrl: m.app.Meet.ConnectionDetailsUrl,
		SdkScriptUrl:         m.app.Meet.SdkScriptUrl,
	}, nil
}

// GetCustomRoomPage always returns a page; on error the page carries the
// message and a link back to the custom tab.
func (m *RoomModel) GetCustomRoomPage(liveKitUrl, token string) (*CustomRoomPage, error) {
	p := &CustomRoomPage{
		Title:        m.app.Meet.HeaderTitle,
		LiveKitUrl:   strings.TrimSpace(liveKitUrl),
		Token:        strings.TrimSpace(token),
		SdkScriptUrl: m.app.Meet.SdkScriptUrl,
		BackUrl:      TabCustom.URL(),
	}

	if p.LiveKitUrl == "" || p.Token == "" {
		p.Error = ErrMissingLiveKitQuery.Error()
		return p, ErrMissingLiveKitQuery
	}

	p.Preview = PreviewToken(p.Token)
	if p.Preview == nil {
		m.logger.Debugln("custom token could not be decoded for preview")
	}

	return p, nil
}
