package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/presbrey/demo-tools/internal/config"
)

func encoder(cfg config.Config) zapcore.Encoder {
	if cfg.LogEncoding == "json" {
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
}

// New builds a logger that writes to w. Progress output for the user goes to
// stdout separately, so w is normally stderr.
func New(cfg config.Config, w io.Writer) (*zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	core := zapcore.NewCore(encoder(cfg), zapcore.Lock(zapcore.AddSync(w)), cfg.Level())
	return zap.New(core), nil
}

// CloseOrDebug closes c and only debug-logs a failure.
func CloseOrDebug(logger *zap.Logger, c io.Closer) {
	if err := c.Close(); err != nil {
		logger.Debug("Failed to close resource", zap.Error(err))
	}
}
