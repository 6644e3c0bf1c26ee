package journal

import (
	"context"
	"time"
)

// ClickRecord is one dispatched dialog response.
type ClickRecord struct {
	ID          string    `json:"id"`
	Player      string    `json:"player"`
	Message     string    `json:"message"`
	ButtonLabel string    `json:"button_label"`
	Quit        bool      `json:"quit"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store persists dispatched clicks.
type Store interface {
	RecordClick(ctx context.Context, rec ClickRecord) error
	RecentClicks(ctx context.Context, player string, limit int) ([]ClickRecord, error)
	Close() error
}
