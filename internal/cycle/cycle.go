// Package cycle builds "cycle through options, then commit" prompts on top of
// the dialog queue. It only uses the queue's exported contract: enqueue,
// priority insert behind the current head, dequeue and handler registration.
package cycle

import (
	"errors"
	"fmt"

	"github.com/InsanityAI/DialogQueue/internal/dialog"
)

var ErrNoOptions = errors.New("chooser needs at least one option")

// CommitFunc receives the option the player settled on.
type CommitFunc func(player dialog.PlayerID, index int, option string)

// Chooser presents a prompt whose first button shows the current option and
// cycles to the next one on every click, and whose second button commits the
// current option. Each cycle click dequeues the dispatched entry itself and
// requeues a refreshed copy directly behind the head, so the prompt keeps its
// place ahead of dialogs enqueued by unrelated producers in the meantime.
type Chooser struct {
	sched       *dialog.Scheduler
	prompt      string
	options     []string
	commitLabel string
	onCommit    CommitFunc
}

func NewChooser(s *dialog.Scheduler, prompt string, options []string, commitLabel string, onCommit CommitFunc) (*Chooser, error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}
	if commitLabel == "" {
		commitLabel = "OK"
	}
	return &Chooser{
		sched:       s,
		prompt:      prompt,
		options:     append([]string(nil), options...),
		commitLabel: commitLabel,
		onCommit:    onCommit,
	}, nil
}

// Show enqueues the chooser for the player, starting at the first option.
// The caller holds the scheduler lock, as for any queue call.
func (c *Chooser) Show(player dialog.PlayerID) {
	c.sched.EnqueueFor(c.build(0), player)
}

func (c *Chooser) build(idx int) *dialog.Entry {
	e := dialog.NewEntry()
	e.SetMessage(c.prompt)

	cycleBtn, _ := e.AddButton(fmt.Sprintf("< %s >", c.options[idx]), "")
	cycleBtn.OnClick(func(_ *dialog.Button, entry *dialog.Entry, p dialog.PlayerID) {
		next := (idx + 1) % len(c.options)
		// Slot the refreshed copy behind the still-displayed entry first,
		// then dequeue the displayed one; the dispatcher tolerates the
		// dispatched entry having been removed by its own handler.
		c.sched.EnqueueAfterCurrent(c.build(next), p)
		c.sched.DequeueFor(entry, p)
	})

	commit, _ := e.AddButton(c.commitLabel, "")
	commit.OnClick(func(_ *dialog.Button, _ *dialog.Entry, p dialog.PlayerID) {
		if c.onCommit != nil {
			c.onCommit(p, idx, c.options[idx])
		}
	})

	return e
}
