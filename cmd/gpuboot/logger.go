package main

import (
	"io"

	"github.com/gogpu/gpuboot"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a zap logger writing to w. The level has already been
// checked by Config.Validate; an empty level means info.
func newLogger(cfg gpuboot.LogConfig, w io.Writer) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, err
		}
	}

	var zapCfg zap.Config
	var enc zapcore.Encoder
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
		enc = zapcore.NewJSONEncoder(zapCfg.EncoderConfig)
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		enc = zapcore.NewConsoleEncoder(zapCfg.EncoderConfig)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), zap.NewAtomicLevelAt(level))
	return zap.New(core, zap.ErrorOutput(zapcore.Lock(zapcore.AddSync(w)))), nil
}
