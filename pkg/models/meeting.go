package models

import (
	"errors"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/sofya-ai/meet-launcher/pkg/config"
	"github.com/sofya-ai/meet-launcher/pkg/helpers"
)

var (
	ErrMissingServerUrlOrToken = errors.New(config.ServerUrlAndTokenMissing)
	ErrInvalidServerUrl        = errors.New(config.InvalidServerUrl)
)

type DemoMeetingReq struct {
	E2EE       bool
	Passphrase string
}

type CustomConnectionReq struct {
	ServerUrl  string
	Token      string
	E2EE       bool
	Passphrase string
}

// HomePage is the view model of the tabbed landing page.
type HomePage struct {
	Title                string
	LogoUrl              string
	ActiveTab            int
	IsCustom             bool
	Tabs                 []TabButton
	Passphrase           string
	ServerUrlPlaceholder string
	Error                string
	ServerUrl            string
	Token                string
	E2EE                 bool
}

type MeetingModel struct {
	app    *config.AppConfig
	logger *logrus.Entry
}

func NewMeetingModel(app *config.AppConfig, logger *logrus.Logger) *MeetingModel {
	return &MeetingModel{
		app:    app,
		logger: logger.WithField("model", "meeting"),
	}
}

// NewPassphrase returns a random candidate passphrase of the configured length.
func (m *MeetingModel) NewPassphrase() (string, error) {
	return helpers.RandomString(m.app.Meet.PassphraseLength)
}

// NewHomePage builds the landing page for the given tab with a freshly
// seeded passphrase.
func (m *MeetingModel) NewHomePage(tab Tab) (*HomePage, error) {
	passphrase, err := m.NewPassphrase()
	if err != nil {
		return nil, err
	}

	return &HomePage{
		Title:                m.app.Meet.HeaderTitle,
		LogoUrl:              m.app.Meet.LogoUrl,
		ActiveTab:            tab.Index(),
		IsCustom:             tab == TabCustom,
		Tabs:                 TabButtons(tab, &m.app.Meet),
		Passphrase:           passphrase,
		ServerUrlPlaceholder: m.app.Meet.ServerUrlPlaceholder,
	}, nil
}

// StartDemoMeeting generates a room id and returns the room url to navigate to.
func (m *MeetingModel) StartDemoMeeting(req *DemoMeetingReq) (string, error) {
	roomId, err := helpers.GenerateRoomId()
	if err != nil {
		return "", err
	}

	u := "/rooms/" + roomId
	if req.E2EE {
		fragment, err := m.encodedFragment(req.Passphrase)
		if err != nil {
			return "", err
		}
		u += fragment
	}

	m.logger.WithFields(logrus.Fields{
		"roomId": roomId,
		"e2ee":   req.E2EE,
	}).Infoln("starting demo meeting")

	return u, nil
}

// ConnectCustom returns the custom room url carrying the server url and
// token as query parameters.
func (m *MeetingModel) ConnectCustom(req *CustomConnectionReq) (string, error) {
	serverUrl := strings.TrimSpace(req.ServerUrl)
	token := strings.TrimSpace(req.Token)
	if serverUrl == "" || token == "" {
		return "", ErrMissingServerUrlOrToken
	}

	parsed, err := url.Parse(serverUrl)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", ErrInvalidServerUrl
	}

	var b strings.Builder
	b.WriteString("/custom/?")
	b.WriteString(config.LiveKitUrlQueryKey)
	b.WriteByte('=')
	b.WriteString(url.QueryEscape(serverUrl))
	b.WriteByte('&')
	b.WriteString(config.TokenQueryKey)
	b.WriteByte('=')
	b.WriteString(url.QueryEscape(token))

	if req.E2EE {
		fragment, err := m.encodedFragment(req.Passphrase)
		if err != nil {
			return "", err
		}
		b.WriteString(fragment)
	}

	m.logger.WithFields(logrus.Fields{
		"host": parsed.Host,
		"e2ee": req.E2EE,
	}).Infoln("connecting to custom server")

	return b.String(), nil
}

// encodedFragment never returns an empty fragment: a blank passphrase is
// replaced by a generated one.
func (m *MeetingModel) encodedFragment(passphrase string) (string, error) {
	if passphrase == "" {
		p, err := m.NewPassphrase()
		if err != nil {
			return "", err
		}
		passphrase = p
	}
	return "#" + helpers.EncodePassphrase(passphrase), nil
}
