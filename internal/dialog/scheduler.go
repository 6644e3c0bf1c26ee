package dialog

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/InsanityAI/DialogQueue/internal/journal"
	"github.com/InsanityAI/DialogQueue/internal/observability"
)

// PresentedButton is one clickable widget handed to the presentation layer.
// The handle is minted fresh on every present; stale handles never resolve.
type PresentedButton struct {
	Handle string
	Label  string
	Hotkey string
}

// PresentedQuitButton carries the pass-through score screen flag alongside
// the widget data.
type PresentedQuitButton struct {
	PresentedButton
	ShowScoreScreen bool
}

// Presenter is the native prompt facility: it can show at most one dialog per
// player and clear it again. The scheduler never calls Present for a player
// that already has a dialog up.
type Presenter interface {
	Present(player PlayerID, message string, buttons []PresentedButton, quit *PresentedQuitButton)
	ClearDialog(player PlayerID)
}

// dispatchContext tracks one in-flight click while its handlers run. The
// retired flag is set when a handler removes the dispatched entry itself, so
// the guaranteed retire step knows not to advance the queue a second time.
type dispatchContext struct {
	player  PlayerID
	entry   *Entry
	button  *Button
	retired bool
}

// Scheduler owns every player's dialog queue and decides what the presenter
// shows. It is the registry, display state machine and click dispatcher in
// one place, the way a Room owns its players and world.
//
// Mu guards all queue state. The transport locks it around each inbound
// event; producer-supplied handlers therefore run with Mu already held and
// may call any Scheduler method directly, at arbitrary reentrancy depth.
// Producers outside a dispatch must lock Mu themselves.
type Scheduler struct {
	Mu sync.Mutex

	// Metrics and Journal are optional wiring; nil disables them.
	Metrics *observability.Metrics
	Journal journal.Store

	presenter  Presenter
	states     map[PlayerID]*playerQueue
	dispatches []*dispatchContext // innermost last
}

func NewScheduler(p Presenter) *Scheduler {
	return &Scheduler{
		presenter: p,
		states:    make(map[PlayerID]*playerQueue),
	}
}

// state returns the player's queue record, creating it on first reference.
func (s *Scheduler) state(player PlayerID) *playerQueue {
	q, ok := s.states[player]
	if !ok {
		q = newPlayerQueue(player)
		s.states[player] = q
	}
	return q
}

/* ---------------------------- queue operations ---------------------------- */

// EnqueueFor appends e to the player's queue and presents it immediately if
// the player is idle.
func (s *Scheduler) EnqueueFor(e *Entry, player PlayerID) {
	q := s.state(player)
	q.push(e)
	if s.Metrics != nil {
		s.Metrics.DialogsEnqueued.Inc()
	}
	s.maybePresent(q)
}

// Enqueue appends e for every player in the set. The entry is shared: one
// logical dialog, independent per-player presentations.
func (s *Scheduler) Enqueue(e *Entry, players *PlayerSet) {
	players.Each(func(p PlayerID) {
		s.EnqueueFor(e, p)
	})
}

// EnqueueAfterCurrent inserts e directly behind the player's head entry so it
// is shown next, ahead of anything other producers queued in the meantime.
// The current display is not disturbed.
func (s *Scheduler) EnqueueAfterCurrent(e *Entry, player PlayerID) {
	q := s.state(player)
	q.insertAfterHead(e)
	if s.Metrics != nil {
		s.Metrics.DialogsEnqueued.Inc()
	}
	s.maybePresent(q)
}

// DequeueFor removes e from the player's queue wherever it sits. Removing the
// currently displayed entry skips it and advances the queue. Returns false if
// the entry is not queued for the player; that case is a silent no-op.
func (s *Scheduler) DequeueFor(e *Entry, player PlayerID) bool {
	q, ok := s.states[player]
	if !ok {
		return false
	}
	idx := q.indexOf(e)
	if idx < 0 {
		return false
	}
	if idx == 0 && q.displaying {
		s.retire(q)
		return true
	}
	q.removeAt(idx)
	return true
}

// Dequeue removes e for every player in the set, returning how many players
// actually had it queued.
func (s *Scheduler) Dequeue(e *Entry, players *PlayerSet) int {
	removed := 0
	players.Each(func(p PlayerID) {
		if s.DequeueFor(e, p) {
			removed++
		}
	})
	return removed
}

// SkipCurrent dismisses the player's displayed dialog without a click and
// advances the queue. Returns false if nothing is displayed.
func (s *Scheduler) SkipCurrent(player PlayerID) bool {
	q, ok := s.states[player]
	if !ok || !q.displaying {
		return false
	}
	s.retire(q)
	return true
}

// IsEmpty reports whether the player has no pending dialogs.
func (s *Scheduler) IsEmpty(player PlayerID) bool {
	q, ok := s.states[player]
	return !ok || q.empty()
}

// Pending returns the number of queued entries, the displayed one included.
func (s *Scheduler) Pending(player PlayerID) int {
	q, ok := s.states[player]
	if !ok {
		return 0
	}
	return len(q.entries)
}

// IsDisplaying reports whether the player currently has a dialog up.
func (s *Scheduler) IsDisplaying(player PlayerID) bool {
	q, ok := s.states[player]
	return ok && q.displaying
}

// Refresh re-presents the player's displayed dialog with freshly minted
// widget handles, for transports that lost the original presentation (e.g. a
// reconnect). No-op when nothing is displayed.
func (s *Scheduler) Refresh(player PlayerID) bool {
	q, ok := s.states[player]
	if !ok || !q.displaying {
		return false
	}
	q.displaying = false
	q.live = nil
	if s.Metrics != nil {
		s.Metrics.ActiveDialogs.Dec()
	}
	s.presenter.ClearDialog(player)
	s.maybePresent(q)
	return true
}

// PeekHead returns the head entry without disturbing it, or nil.
func (s *Scheduler) PeekHead(player PlayerID) *Entry {
	q, ok := s.states[player]
	if !ok {
		return nil
	}
	return q.head()
}

// EachQueued calls fn for every player that currently has e queued. Used by
// the legacy destroy path, which unlinks an entry everywhere at once.
func (s *Scheduler) EachQueued(e *Entry, fn func(player PlayerID)) {
	players := make([]PlayerID, 0, len(s.states))
	for p, q := range s.states {
		if q.indexOf(e) >= 0 {
			players = append(players, p)
		}
	}
	for _, p := range players {
		fn(p)
	}
}

/* ---------------------------- display machine ----------------------------- */

// maybePresent drives the Idle -> Displaying transition. Buttonless entries
// are retired on the spot without ever reaching the presenter, recursing
// until a presentable head is found or the queue drains.
func (s *Scheduler) maybePresent(q *playerQueue) {
	if q.displaying || q.empty() {
		return
	}
	head := q.entries[0]
	if !head.presentable() {
		q.removeAt(0)
		if s.Metrics != nil {
			s.Metrics.DialogsAutoSkipped.Inc()
		}
		s.maybePresent(q)
		return
	}

	q.displaying = true
	q.live = make(map[string]*Button, len(head.buttons)+1)

	buttons := make([]PresentedButton, 0, len(head.buttons))
	for _, b := range head.buttons {
		handle := uuid.NewString()
		q.live[handle] = b
		buttons = append(buttons, PresentedButton{Handle: handle, Label: b.Label, Hotkey: b.Hotkey})
	}
	var quit *PresentedQuitButton
	if head.quit != nil {
		handle := uuid.NewString()
		q.live[handle] = &head.quit.Button
		quit = &PresentedQuitButton{
			PresentedButton: PresentedButton{Handle: handle, Label: head.quit.Label, Hotkey: head.quit.Hotkey},
			ShowScoreScreen: head.quit.ShowScoreScreen,
		}
	}

	if s.Metrics != nil {
		s.Metrics.DialogsPresented.Inc()
		s.Metrics.ActiveDialogs.Inc()
	}
	s.presenter.Present(q.player, head.Message, buttons, quit)
}

// retire performs the Displaying -> Idle transition: drop the head, clear the
// presentation and immediately try to show the next entry. If the retired
// entry is the one being dispatched right now, the dispatch is marked so the
// guaranteed retire step does not advance again.
func (s *Scheduler) retire(q *playerQueue) {
	head := q.head()
	if dc := s.dispatchFor(q.player); dc != nil && dc.entry == head && !dc.retired {
		dc.retired = true
		log.Printf("[dialog] %s: displayed entry removed from inside its own dispatch", q.player)
	}
	q.removeAt(0)
	q.displaying = false
	q.live = nil
	if s.Metrics != nil {
		s.Metrics.ActiveDialogs.Dec()
	}
	s.presenter.ClearDialog(q.player)
	s.maybePresent(q)
}

/* ---------------------------- click dispatch ------------------------------ */

// HandleClick resolves a raw "player clicked widget" event, runs the entry's
// handlers then the button's handlers, and finally retires the head entry.
// The retire step runs even when a handler panics, and tolerates the entry
// having already been dequeued by a handler.
func (s *Scheduler) HandleClick(ctx context.Context, player PlayerID, handle string) {
	q, ok := s.states[player]
	if !ok || !q.displaying {
		s.dropEvent(player, "idle")
		return
	}
	btn, ok := q.live[handle]
	if !ok {
		s.dropEvent(player, "unknown_widget")
		return
	}
	head := q.head()

	dc := &dispatchContext{player: player, entry: head, button: btn}
	s.dispatches = append(s.dispatches, dc)
	defer func() {
		s.dispatches = s.dispatches[:len(s.dispatches)-1]
		s.finishDispatch(q, dc)
	}()

	if s.Metrics != nil {
		s.Metrics.ClicksTotal.Inc()
	}
	s.recordClick(ctx, player, head, btn)

	for _, h := range append([]EntryHandler(nil), head.handlers...) {
		s.invokeEntryHandler(h, head, player)
	}
	for _, h := range append([]ButtonHandler(nil), btn.handlers...) {
		s.invokeButtonHandler(h, btn, head, player)
	}
}

// ClickedEntry returns the entry being dispatched for the player, scoped to
// the active dispatch. Nil outside a dispatch.
func (s *Scheduler) ClickedEntry(player PlayerID) *Entry {
	if dc := s.dispatchFor(player); dc != nil {
		return dc.entry
	}
	return nil
}

// ClickedButton returns the button being dispatched for the player, scoped to
// the active dispatch. Nil outside a dispatch.
func (s *Scheduler) ClickedButton(player PlayerID) *Button {
	if dc := s.dispatchFor(player); dc != nil {
		return dc.button
	}
	return nil
}

func (s *Scheduler) dispatchFor(player PlayerID) *dispatchContext {
	for i := len(s.dispatches) - 1; i >= 0; i-- {
		if s.dispatches[i].player == player {
			return s.dispatches[i]
		}
	}
	return nil
}

// finishDispatch is the guaranteed retire step at the end of HandleClick.
func (s *Scheduler) finishDispatch(q *playerQueue, dc *dispatchContext) {
	if dc.retired {
		// A handler already dequeued the entry and the queue advanced.
		return
	}
	if !q.displaying || q.head() != dc.entry {
		log.Printf("[dialog] %s: dispatch finished with unexpected queue state, not advancing", q.player)
		return
	}
	s.retire(q)
}

func (s *Scheduler) invokeEntryHandler(h EntryHandler, e *Entry, player PlayerID) {
	defer s.recoverHandler(player)
	h(e, player)
}

func (s *Scheduler) invokeButtonHandler(h ButtonHandler, b *Button, e *Entry, player PlayerID) {
	defer s.recoverHandler(player)
	h(b, e, player)
}

// recoverHandler isolates a faulty producer handler so one bad producer
// cannot starve a player's queue.
func (s *Scheduler) recoverHandler(player PlayerID) {
	if r := recover(); r != nil {
		if s.Metrics != nil {
			s.Metrics.HandlerPanics.Inc()
		}
		log.Printf("[dialog] %s: handler panic: %v", player, r)
	}
}

func (s *Scheduler) dropEvent(player PlayerID, reason string) {
	if s.Metrics != nil {
		s.Metrics.DroppedEvents.WithLabelValues(reason).Inc()
	}
	log.Printf("[dialog] %s: dropping click event (%s)", player, reason)
}

func (s *Scheduler) recordClick(ctx context.Context, player PlayerID, e *Entry, b *Button) {
	if s.Journal == nil {
		return
	}
	rec := journal.ClickRecord{
		Player:      string(player),
		Message:     e.Message,
		ButtonLabel: b.Label,
		Quit:        e.quit != nil && b == &e.quit.Button,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Journal.RecordClick(ctx, rec); err != nil {
		log.Printf("[dialog] %s: journal write failed: %v", player, err)
	}
}
