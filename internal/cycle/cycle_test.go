package cycle

import (
	"context"
	"testing"

	"github.com/InsanityAI/DialogQueue/internal/dialog"
)

type recordingPresenter struct {
	messages []string
	buttons  map[dialog.PlayerID][]dialog.PresentedButton
}

func newRecordingPresenter() *recordingPresenter {
	return &recordingPresenter{buttons: make(map[dialog.PlayerID][]dialog.PresentedButton)}
}

func (r *recordingPresenter) Present(player dialog.PlayerID, message string, buttons []dialog.PresentedButton, quit *dialog.PresentedQuitButton) {
	r.messages = append(r.messages, message)
	r.buttons[player] = buttons
}

func (r *recordingPresenter) ClearDialog(player dialog.PlayerID) {}

func click(t *testing.T, s *dialog.Scheduler, r *recordingPresenter, player dialog.PlayerID, label string) {
	t.Helper()
	for _, b := range r.buttons[player] {
		if b.Label == label {
			s.HandleClick(context.Background(), player, b.Handle)
			return
		}
	}
	t.Fatalf("no button %q presented for %s", label, player)
}

func TestNewChooserValidation(t *testing.T) {
	s := dialog.NewScheduler(newRecordingPresenter())
	if _, err := NewChooser(s, "q", nil, "OK", nil); err != ErrNoOptions {
		t.Fatalf("expected ErrNoOptions, got %v", err)
	}
	c, err := NewChooser(s, "q", []string{"a"}, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.commitLabel != "OK" {
		t.Fatalf("empty commit label not defaulted, got %q", c.commitLabel)
	}
}

func TestChooserCyclesAndCommits(t *testing.T) {
	r := newRecordingPresenter()
	s := dialog.NewScheduler(r)
	p := dialog.PlayerID("p1")

	var gotIdx int
	var gotOption string
	c, err := NewChooser(s, "pick one", []string{"alpha", "beta", "gamma"}, "Confirm",
		func(_ dialog.PlayerID, idx int, option string) {
			gotIdx = idx
			gotOption = option
		})
	if err != nil {
		t.Fatal(err)
	}
	c.Show(p)

	click(t, s, r, p, "< alpha >")
	click(t, s, r, p, "< beta >")
	click(t, s, r, p, "Confirm")

	if gotIdx != 2 || gotOption != "gamma" {
		t.Fatalf("committed (%d, %q), want (2, gamma)", gotIdx, gotOption)
	}
	if !s.IsEmpty(p) {
		t.Fatal("chooser left entries queued after commit")
	}
}

func TestChooserWrapsAround(t *testing.T) {
	r := newRecordingPresenter()
	s := dialog.NewScheduler(r)
	p := dialog.PlayerID("p1")

	var gotOption string
	c, _ := NewChooser(s, "pick", []string{"a", "b"}, "OK",
		func(_ dialog.PlayerID, _ int, option string) { gotOption = option })
	c.Show(p)

	click(t, s, r, p, "< a >")
	click(t, s, r, p, "< b >")
	click(t, s, r, p, "< a >")
	click(t, s, r, p, "OK")

	if gotOption != "b" {
		t.Fatalf("committed %q after wrapping, want b", gotOption)
	}
}

func TestChooserKeepsPlaceAheadOfOtherProducers(t *testing.T) {
	r := newRecordingPresenter()
	s := dialog.NewScheduler(r)
	p := dialog.PlayerID("p1")

	c, _ := NewChooser(s, "pick", []string{"a", "b"}, "OK", nil)
	c.Show(p)

	// An unrelated dialog arrives while the chooser is on screen.
	other := dialog.NewEntry()
	other.SetMessage("unrelated")
	if _, err := other.AddButton("ok", ""); err != nil {
		t.Fatal(err)
	}
	s.EnqueueFor(other, p)

	click(t, s, r, p, "< a >")

	// The refreshed chooser is shown next, not the unrelated dialog.
	if got := r.messages[len(r.messages)-1]; got != "pick" {
		t.Fatalf("presented %q after cycling, want the chooser", got)
	}
	if head := s.PeekHead(p); head == other {
		t.Fatal("unrelated dialog jumped ahead of the chooser")
	}

	click(t, s, r, p, "OK")
	if head := s.PeekHead(p); head != other {
		t.Fatal("unrelated dialog not shown after commit")
	}
}
