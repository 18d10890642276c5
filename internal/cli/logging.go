package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/collectiontypes/pkg/types"
)

// newLogger builds the CLI logger. Logs go to w (stderr) so they never mix
// with command output.
func newLogger(w io.Writer, cfg types.Config) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(w)

	level := logrus.InfoLevel
	if cfg.LogLevel != "" {
		l, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("log_level: %w", err)
		}
		level = l
	}
	log.SetLevel(level)

	switch cfg.LogFormat {
	case types.LogFormatJSON:
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	return log, nil
}
