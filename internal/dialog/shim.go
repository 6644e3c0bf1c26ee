package dialog

// API is the legacy single-shot dialog surface. Callers written against the
// old create/set-message/add-button/display/destroy contract go through it
// unchanged and end up in the queue without ever learning one exists.
//
// Like the Scheduler itself, callers outside a dispatch hold Scheduler.Mu
// around these calls; handlers already do.
type API struct {
	sched *Scheduler
}

func NewAPI(s *Scheduler) *API {
	return &API{sched: s}
}

// Scheduler exposes the backing scheduler for callers that outgrow the
// legacy surface.
func (a *API) Scheduler() *Scheduler {
	return a.sched
}

// Create builds a fresh empty dialog.
func (a *API) Create() *Entry {
	return NewEntry()
}

// CreateFrom builds a deep copy of an existing dialog, replacing the legacy
// copy-construction idiom.
func (a *API) CreateFrom(e *Entry) *Entry {
	return CopyEntry(e)
}

func (a *API) SetMessage(e *Entry, text string) {
	e.SetMessage(text)
}

func (a *API) AddButton(e *Entry, label, hotkey string) (*Button, error) {
	return e.AddButton(label, hotkey)
}

func (a *API) AddQuitButton(e *Entry, label, hotkey string, showScoreScreen bool) (*QuitButton, error) {
	return e.AddQuitButton(label, hotkey, showScoreScreen)
}

// Display mirrors the legacy show/hide call. show=true enqueues the dialog
// (presenting it immediately when the player is idle); show=false removes it,
// advancing the queue when it is the one on screen.
func (a *API) Display(player PlayerID, e *Entry, show bool) {
	if show {
		a.sched.EnqueueFor(e, player)
		return
	}
	a.sched.DequeueFor(e, player)
}

// Clear is the legacy destroy: the entry is unlinked from every player's
// queue it is scheduled on, then its content is reset to empty so the caller
// can rebuild it.
func (a *API) Clear(e *Entry) {
	a.sched.EachQueued(e, func(player PlayerID) {
		a.sched.DequeueFor(e, player)
	})
	e.reset()
}

// ClickedDialog returns the dialog whose click is being dispatched for the
// player right now. Unlike the legacy "last created" global this is scoped to
// the in-flight dispatch, so overlapping handler chains across players stay
// independent.
func (a *API) ClickedDialog(player PlayerID) *Entry {
	return a.sched.ClickedEntry(player)
}

// ClickedButton returns the button whose click is being dispatched for the
// player right now, with the same scoping as ClickedDialog.
func (a *API) ClickedButton(player PlayerID) *Button {
	return a.sched.ClickedButton(player)
}
