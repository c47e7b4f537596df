package push

import (
	"fmt"

	"github.com/huddle-inc/huddle/internal/domain/notification"
)

// SummarizeBatch collapses a batch of related notifications into a single
// title and body. The batch is ordered oldest first: the title stays the
// one the recipient would have seen first, and the body carries the
// collapsed count.
func SummarizeBatch(batch []*notification.Notification) (title, body string) {
	if len(batch) == 0 {
		return "", ""
	}
	first := batch[0]
	if len(batch) == 1 {
		return first.Title(), first.Body()
	}

	title = first.Title()
	body = fmt.Sprintf("%s and %d more", first.Title(), len(batch)-1)
	return title, body
}
