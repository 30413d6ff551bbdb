package middleware

import (
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"

	"addressbook/internal/handler"
)

// Recovery turns a panicking command into an error so the session survives.
func Recovery(logger *zap.Logger) handler.Middleware {
	return func(next handler.CommandFunc) handler.CommandFunc {
		return func(cmd string, args []string) (out string, err error) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic in command",
						zap.String("command", cmd),
						zap.Any("panic", rec),
						zap.ByteString("stack", debug.Stack()),
					)
					out, err = "", fmt.Errorf("internal error in %q", cmd)
				}
			}()

			return next(cmd, args)
		}
	}
}
