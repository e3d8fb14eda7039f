package safe

import (
	"log/slog"
	"runtime/debug"
)

// Run executes f and recovers any panic so a background goroutine
// cannot take the process down.
func Run(f func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic recovered", slog.Any("panic", r), slog.String("stack", string(debug.Stack())))
		}
	}()
	f()
}
