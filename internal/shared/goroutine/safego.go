// Package goroutine launches goroutines that survive their own panics.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/huddle-inc/huddle/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine. A panic inside fn is logged with its
// stack trace under the given name instead of taking the process down; the
// notify fan-out relies on this so one bad recipient cannot kill its
// siblings.
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
