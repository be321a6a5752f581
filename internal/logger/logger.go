package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/formbridge/formbridge/internal/gelf"
)

// New builds the process logger. Logs always go to stderr as JSON; when
// gelfAddr is non-empty the same entries are also shipped to Graylog over UDP.
func New(levelStr, gelfAddr string) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	switch levelStr {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	enc := zapcore.NewJSONEncoder(encCfg)

	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level),
	}

	if gelfAddr != "" {
		gw, err := gelf.New(gelfAddr)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(gw), level))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}
