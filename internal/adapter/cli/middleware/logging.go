package middleware

import (
	"time"

	"go.uber.org/zap"
)

// Logged runs a menu action and logs its name, duration and outcome.
func Logged(logger *zap.Logger, action string, fn func() error) error {
	start := time.Now()

	err := fn()

	fields := []zap.Field{
		zap.String("action", action),
		zap.Duration("latency", time.Since(start)),
	}
	if err != nil {
		logger.Error("menu action", append(fields, zap.Error(err))...)
		return err
	}

	logger.Info("menu action", fields...)
	return nil
}
