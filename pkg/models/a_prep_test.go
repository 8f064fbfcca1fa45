package models

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/sofya-ai/meet-launcher/pkg/config"
)

func newTestAppConfig() *config.AppConfig {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &config.AppConfig{
		Logger: logger,
		Meet: config.MeetSettings{
			HeaderTitle:          "Meet",
			DemoLabel:            config.DefaultDemoLabel,
			CustomLabel:          config.DefaultCustomLabel,
			PassphraseLength:     config.DefaultPassphraseLength,
			ServerUrlPlaceholder: config.DefaultServerUrlPlaceholder,
			ConnectionDetailsUrl: config.DefaultConnectionDetailsUrl,
			SdkScriptUrl:         config.DefaultSdkScriptUrl,
		},
	}
}
