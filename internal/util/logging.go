package util

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.SugaredLogger

func init() {
	logger = newLogger().Sugar()
}

func newLogger() *zap.Logger {
	if os.Getenv("LOG_DEV") == "1" {
		l, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		return l
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(os.Stdout), zapcore.InfoLevel)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// Logger возвращает общий логгер приложения
func Logger() *zap.SugaredLogger {
	return logger
}

// LogError пишет ошибку в лог и возвращает её обёрнутой тем же сообщением.
// Детали (например, причина отказа в авторизации) остаются в логе,
// клиенту уходит только общий текст из хэндлера
func LogError(message string, err error) error {
	logger.Errorf("%s: %v", message, err)
	return fmt.Errorf("%s: %w", message, err)
}

func LogInfo(format string, args ...interface{}) {
	logger.Infof(format, args...)
}
