package logging

import (
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/DeRuina/timberjack"
	"github.com/sirupsen/logrus"
	"github.com/sofya-ai/meet-launcher/pkg/config"
)

var (
	fileLogger *timberjack.Logger
	fileMu     sync.Mutex
)

// NewLogger creates and configures a new logrus.Logger based on the provided configuration.
func NewLogger(cfg *config.LogSettings) (*logrus.Logger, error) {
	logger := logrus.New()

	// 1. Set Log Level
	logger.SetLevel(ParseLevel(cfg.LogLevel))

	// 2. Setup Output
	var output io.Writer = os.Stdout

	// If file logging is enabled, log to both stdout and the file.
	if cfg.LogFile != "" {
		fl := &timberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
		}
		fileMu.Lock()
		fileLogger = fl
		fileMu.Unlock()

		output = io.MultiWriter(os.Stdout, fl)
		// the main logger isn't fully configured yet
		logrus.New().Infof("File logging enabled, writing to %s", cfg.LogFile)
	}
	logger.SetOutput(output)

	// 3. Set Formatter
	textFormatter := &logrus.TextFormatter{
		FullTimestamp: true,
		// let SourceFormatter print the caller
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			return "", ""
		},
		ForceColors: cfg.LogFile == "",
	}

	// 4. Wrap with our custom source formatter
	logger.SetFormatter(&SourceFormatter{
		Underlying: textFormatter,
	})

	// 5. Set Caller Reporting
	logger.SetReportCaller(true)

	return logger, nil
}

// ParseLevel falls back to info for a missing or unknown level.
func ParseLevel(level *string) logrus.Level {
	if level == nil || *level == "" {
		return logrus.InfoLevel
	}
	lv, err := logrus.ParseLevel(strings.ToLower(*level))
	if err != nil {
		return logrus.InfoLevel
	}
	return lv
}

// Close releases the rotating log file opened by NewLogger.
func Close() error {
	fileMu.Lock()
	defer fileMu.Unlock()
	if fileLogger == nil {
		return nil
	}
	err := fileLogger.Close()
	fileLogger = nil
	return err
}
