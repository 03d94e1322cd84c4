package utils

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogger tees JSON (console when debug) output to a rotating file under
// dir and to stdout. An empty dir logs to stdout only.
func InitLogger(dir, name string, debug bool) (*zap.Logger, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	if debug {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.CallerKey = "caller"
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	encoder := zapcore.NewJSONEncoder(encoderConfig)
	if debug {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	logLevel := zap.InfoLevel
	if debug {
		logLevel = zap.DebugLevel
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), logLevel),
	}

	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}

		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(dir, name+".log"),
			MaxSize:    10, // MB
			MaxBackups: 7,
			MaxAge:     28, // days
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(encoder, fileWriter, logLevel))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}
