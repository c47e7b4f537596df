package notification

import (
	"testing"
	"time"
)

func TestIsActiveAt(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	threshold := 60 * time.Second

	at := func(secondsAgo int) *time.Time {
		ts := now.Add(-time.Duration(secondsAgo) * time.Second)
		return &ts
	}

	tests := []struct {
		name         string
		lastActiveAt *time.Time
		expected     bool
	}{
		{"no record means inactive", nil, false},
		{"just now", at(0), true},
		{"one second inside the window", at(59), true},
		{"exactly at the threshold counts as active", at(60), true},
		{"one second past the threshold", at(61), false},
		{"long gone", at(3600), false},
		{"future timestamp tolerated", at(-10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsActiveAt(tt.lastActiveAt, threshold, now); got != tt.expected {
				t.Errorf("IsActiveAt() = %v, want %v", got, tt.expected)
			}
		})
	}
}
