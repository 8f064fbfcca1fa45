package helpers

import (
	"github.com/sofya-ai/meet-launcher/pkg/config"
	"github.com/sofya-ai/meet-launcher/pkg/logging"
)

func HandleCloseConnections() error {
	if config.GetConfig() == nil {
		return nil
	}

	// flush and close the rotating log file, if any
	return logging.Close()
}
