package push

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/huddle-inc/huddle/internal/domain/notification"
)

func TestSummarizeBatch(t *testing.T) {
	tests := []struct {
		name      string
		batch     []*notification.Notification
		wantTitle string
		wantBody  string
	}{
		{
			name:      "empty batch",
			batch:     nil,
			wantTitle: "",
			wantBody:  "",
		},
		{
			name: "single notification keeps its own title",
			batch: []*notification.Notification{
				reconstructForTest(t, 1, "ntf_1", "Alex nudged you"),
			},
			wantTitle: "Alex nudged you",
			wantBody:  "body",
		},
		{
			name: "multiple notifications collapse onto the oldest",
			batch: []*notification.Notification{
				reconstructForTest(t, 1, "ntf_1", "Alex nudged you"),
				reconstructForTest(t, 2, "ntf_2", "Alex nudged you again"),
				reconstructForTest(t, 3, "ntf_3", "Alex nudged you once more"),
			},
			wantTitle: "Alex nudged you",
			wantBody:  "Alex nudged you and 2 more",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, body := SummarizeBatch(tt.batch)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
