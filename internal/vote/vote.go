// Package vote runs majority votes across a set of players by queueing one
// shared question dialog for everyone in the set and tallying the answers as
// they come back. Like package cycle it sits entirely on the dialog queue's
// exported contract.
package vote

import (
	"errors"

	"github.com/InsanityAI/DialogQueue/internal/dialog"
)

var (
	ErrNoChoices = errors.New("poll needs at least one choice")
	ErrNoVoters  = errors.New("poll needs at least one voter")
)

// DoneFunc reports the winning choice once every pending voter has answered
// or abstained. Ties resolve to the earliest declared choice.
type DoneFunc func(winnerIndex int, winner string, counts []int)

// Poll is one question put to a player set.
type Poll struct {
	sched    *dialog.Scheduler
	question string
	choices  []string
	onDone   DoneFunc

	entry   *dialog.Entry
	pending *dialog.PlayerSet
	counts  []int
	done    bool
}

func NewPoll(s *dialog.Scheduler, question string, choices []string, onDone DoneFunc) (*Poll, error) {
	if len(choices) == 0 {
		return nil, ErrNoChoices
	}
	return &Poll{
		sched:    s,
		question: question,
		choices:  append([]string(nil), choices...),
		onDone:   onDone,
	}, nil
}

// Start queues the question for every player in the set. One logical entry is
// shared by all voters; each player's presentation advances independently.
// The caller holds the scheduler lock.
func (p *Poll) Start(voters *dialog.PlayerSet) error {
	if voters == nil || voters.Len() == 0 {
		return ErrNoVoters
	}
	p.pending = voters.Copy()
	p.counts = make([]int, len(p.choices))

	e := dialog.NewEntry()
	e.SetMessage(p.question)
	for i, choice := range p.choices {
		idx := i
		b, err := e.AddButton(choice, "")
		if err != nil {
			return err
		}
		b.OnClick(func(_ *dialog.Button, _ *dialog.Entry, player dialog.PlayerID) {
			p.record(player, idx)
		})
	}
	p.entry = e
	p.sched.Enqueue(e, voters)
	return nil
}

// Abstain withdraws a voter, dequeueing the question for them. The poll
// finishes if they were the last one pending.
func (p *Poll) Abstain(player dialog.PlayerID) {
	if p.done || p.pending == nil || !p.pending.Contains(player) {
		return
	}
	p.pending.Remove(player)
	p.sched.DequeueFor(p.entry, player)
	if p.pending.Len() == 0 {
		p.finish()
	}
}

// Cancel withdraws every pending voter without reporting a result.
func (p *Poll) Cancel() {
	if p.done || p.pending == nil {
		return
	}
	p.done = true
	p.pending.Each(func(player dialog.PlayerID) {
		p.sched.DequeueFor(p.entry, player)
	})
	p.pending = dialog.NewPlayerSet()
}

// Counts returns the running tally.
func (p *Poll) Counts() []int {
	return append([]int(nil), p.counts...)
}

// PendingVoters returns how many players have not answered yet.
func (p *Poll) PendingVoters() int {
	if p.pending == nil {
		return 0
	}
	return p.pending.Len()
}

func (p *Poll) record(player dialog.PlayerID, idx int) {
	if p.done || !p.pending.Contains(player) {
		return
	}
	p.counts[idx]++
	p.pending.Remove(player)
	if p.pending.Len() == 0 {
		p.finish()
	}
}

func (p *Poll) finish() {
	if p.done {
		return
	}
	p.done = true
	winner := 0
	for i, n := range p.counts {
		if n > p.counts[winner] {
			winner = i
		}
	}
	if p.onDone != nil {
		p.onDone(winner, p.choices[winner], append([]int(nil), p.counts...))
	}
}
