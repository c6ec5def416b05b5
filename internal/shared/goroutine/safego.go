// Package goroutine wraps fire-and-forget work with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/vendra-inc/vendra/internal/shared/logger"
)

// SafeGo runs fn on its own goroutine. A panic is logged with its stack under
// the given name instead of taking the process down. Used for best-effort
// work after the main operation already succeeded: bridge pushes, receipt
// mail.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
