package middleware

import (
	"time"

	"go.uber.org/zap"

	"addressbook/internal/handler"
)

// Timing logs every command with its argument count, processing time and
// outcome at debug level.
func Timing(logger *zap.Logger) handler.Middleware {
	return func(next handler.CommandFunc) handler.CommandFunc {
		return func(cmd string, args []string) (string, error) {
			start := time.Now()

			out, err := next(cmd, args)

			fields := []zap.Field{
				zap.String("command", cmd),
				zap.Int("args", len(args)),
				zap.Int64("duration_us", time.Since(start).Microseconds()),
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}
			logger.Debug("command processed", fields...)

			return out, err
		}
	}
}
