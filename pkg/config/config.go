package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	appCnf *AppConfig
	mu     sync.RWMutex
)

type AppConfig struct {
	Logger *logrus.Logger `yaml:"-"`

	RootWorkingDir string       `yaml:"-"`
	Client         ClientInfo   `yaml:"client"`
	LogSettings    LogSettings  `yaml:"log_settings"`
	Meet           MeetSettings `yaml:"meet"`
}

type ClientInfo struct {
	Port           int            `yaml:"port"`
	Debug          bool           `yaml:"debug"`
	Path           string         `yaml:"path"`
	PrometheusConf PrometheusConf `yaml:"prometheus"`
	ProxyHeader    string         `yaml:"proxy_header"`
}

type PrometheusConf struct {
	Enable      bool   `yaml:"enable"`
	MetricsPath string `yaml:"metrics_path"`
}

type LogSettings struct {
	LogLevel   *string `yaml:"log_level"`
	LogFile    string  `yaml:"log_file"`
	MaxSize    int     `yaml:"max_size"`
	MaxBackups int     `yaml:"max_backups"`
	MaxAge     int     `yaml:"max_age"`
}

// MeetSettings controls what the landing page shows and where the
// room pages hand off to the external media platform.
type MeetSettings struct {
	HeaderTitle          string `yaml:"header_title"`
	LogoUrl              string `yaml:"logo_url"`
	DemoLabel            string `yaml:"demo_label"`
	CustomLabel          string `yaml:"custom_label"`
	PassphraseLength     int    `yaml:"passphrase_length"`
	ServerUrlPlaceholder string `yaml:"server_url_placeholder"`
	ConnectionDetailsUrl string `yaml:"connection_details_url"`
	SdkScriptUrl         string `yaml:"sdk_script_url"`
}

// New applies defaults, validates the config and stores it for global usage.
func New(a *AppConfig) (*AppConfig, error) {
	if a == nil {
		return nil, errors.New(ConfigIsNil)
	}

	if a.Client.Port == 0 {
		a.Client.Port = DefaultPort
	}
	if a.Client.Port < 0 || a.Client.Port > 65535 {
		return nil, fmt.Errorf("%s: %d", InvalidPort, a.Client.Port)
	}

	if a.Client.Path == "" {
		a.Client.Path = DefaultClientPath
	}
	if strings.HasPrefix(a.Client.Path, "./") && a.RootWorkingDir != "" {
		a.Client.Path = filepath.Join(a.RootWorkingDir, a.Client.Path)
	}
	if _, err := os.Stat(a.Client.Path); err != nil {
		return nil, fmt.Errorf("client path %s: %w", a.Client.Path, err)
	}

	if a.Client.PrometheusConf.Enable && a.Client.PrometheusConf.MetricsPath == "" {
		a.Client.PrometheusConf.MetricsPath = DefaultMetricsPath
	}

	setMeetDefaults(&a.Meet)
	if a.Meet.PassphraseLength < MinPassphraseLength {
		return nil, fmt.Errorf("%s: %d", PassphraseTooShort, a.Meet.PassphraseLength)
	}

	mu.Lock()
	appCnf = a
	mu.Unlock()

	return a, nil
}

func setMeetDefaults(m *MeetSettings) {
	if m.DemoLabel == "" {
		m.DemoLabel = DefaultDemoLabel
	}
	if m.CustomLabel == "" {
		m.CustomLabel = DefaultCustomLabel
	}
	if m.PassphraseLength == 0 {
		m.PassphraseLength = DefaultPassphraseLength
	}
	if m.ServerUrlPlaceholder == "" {
		m.ServerUrlPlaceholder = DefaultServerUrlPlaceholder
	}
	if m.ConnectionDetailsUrl == "" {
		m.ConnectionDetailsUrl = DefaultConnectionDetailsUrl
	}
	if m.SdkScriptUrl == "" {
		m.SdkScriptUrl = DefaultSdkScriptUrl
	}
}

// GetConfig returns the config set by New, nil before that.
func GetConfig() *AppConfig {
	mu.RLock()
	defer mu.RUnlock()
	return appCnf
}
