package journal

import (
	"context"
	"testing"
)

func TestInMemoryStoreRecordAndRecent(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()

	for _, label := range []string{"one", "two", "three"} {
		err := s.RecordClick(ctx, ClickRecord{Player: "p1", Message: "m", ButtonLabel: label})
		if err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.RecentClicks(ctx, "p1", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
	for _, rec := range got {
		if rec.ID == "" || rec.CreatedAt.IsZero() {
			t.Fatalf("record missing defaults: %+v", rec)
		}
	}
	if got[0].ButtonLabel != "one" || got[2].ButtonLabel != "three" {
		t.Fatalf("records out of order: %+v", got)
	}
}

func TestInMemoryStoreRecentLimit(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()

	for _, label := range []string{"one", "two", "three"} {
		s.RecordClick(ctx, ClickRecord{Player: "p1", ButtonLabel: label})
	}

	got, err := s.RecentClicks(ctx, "p1", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ButtonLabel != "two" || got[1].ButtonLabel != "three" {
		t.Fatalf("limit did not keep the newest records: %+v", got)
	}
}

func TestInMemoryStoreIsolatesPlayers(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()

	s.RecordClick(ctx, ClickRecord{Player: "p1", ButtonLabel: "a"})
	s.RecordClick(ctx, ClickRecord{Player: "p2", ButtonLabel: "b"})

	got, _ := s.RecentClicks(ctx, "p2", 0)
	if len(got) != 1 || got[0].ButtonLabel != "b" {
		t.Fatalf("p2 records: %+v", got)
	}
	if got, _ := s.RecentClicks(ctx, "nobody", 0); got != nil {
		t.Fatalf("unknown player returned records: %+v", got)
	}
}
