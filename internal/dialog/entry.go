package dialog

import (
	"errors"
	"unicode/utf8"
)

// PlayerID identifies one connected player. Every player has its own fully
// independent dialog queue.
type PlayerID string

// EntryHandler observes any click on the dialog it is registered on. Entry
// handlers run before the clicked button's own handlers.
type EntryHandler func(e *Entry, player PlayerID)

// ButtonHandler runs when its button is the one clicked.
type ButtonHandler func(b *Button, e *Entry, player PlayerID)

var ErrBadHotkey = errors.New("hotkey must be empty or exactly one character")

// Button is one selectable response on a dialog.
type Button struct {
	Label    string
	Hotkey   string // empty or exactly one character
	handlers []ButtonHandler
}

// OnClick registers a handler invoked when this button is clicked.
func (b *Button) OnClick(h ButtonHandler) {
	b.handlers = append(b.handlers, h)
}

// QuitButton is a Button that dismisses the dialog and ends the player's
// session. ShowScoreScreen is passed through to the presentation layer
// untouched; the queue itself attaches no meaning to it.
type QuitButton struct {
	Button
	ShowScoreScreen bool
}

// Entry is one schedulable dialog: a message, buttons in declaration order
// and at most one quit button, shown last. An entry with no buttons at all is
// never presented; the queue retires it on sight.
type Entry struct {
	Message  string
	buttons  []*Button
	quit     *QuitButton
	handlers []EntryHandler
}

func NewEntry() *Entry {
	return &Entry{}
}

// CopyEntry returns a deep copy of e: buttons and handler lists are cloned so
// the copy can be mutated and requeued without touching the source.
func CopyEntry(e *Entry) *Entry {
	c := &Entry{
		Message:  e.Message,
		handlers: append([]EntryHandler(nil), e.handlers...),
	}
	for _, b := range e.buttons {
		c.buttons = append(c.buttons, &Button{
			Label:    b.Label,
			Hotkey:   b.Hotkey,
			handlers: append([]ButtonHandler(nil), b.handlers...),
		})
	}
	if q := e.quit; q != nil {
		c.quit = &QuitButton{
			Button: Button{
				Label:    q.Label,
				Hotkey:   q.Hotkey,
				handlers: append([]ButtonHandler(nil), q.handlers...),
			},
			ShowScoreScreen: q.ShowScoreScreen,
		}
	}
	return c
}

// SetMessage replaces the dialog's message text.
func (e *Entry) SetMessage(text string) {
	e.Message = text
}

// AddButton appends a button. The hotkey may be empty or a single character.
func (e *Entry) AddButton(label, hotkey string) (*Button, error) {
	if err := validateHotkey(hotkey); err != nil {
		return nil, err
	}
	b := &Button{Label: label, Hotkey: hotkey}
	e.buttons = append(e.buttons, b)
	return b, nil
}

// AddQuitButton sets the dialog's quit button, replacing any previous one.
func (e *Entry) AddQuitButton(label, hotkey string, showScoreScreen bool) (*QuitButton, error) {
	if err := validateHotkey(hotkey); err != nil {
		return nil, err
	}
	q := &QuitButton{
		Button:          Button{Label: label, Hotkey: hotkey},
		ShowScoreScreen: showScoreScreen,
	}
	e.quit = q
	return q, nil
}

// OnClick registers a handler invoked for any click on this dialog, before
// the clicked button's handlers.
func (e *Entry) OnClick(h EntryHandler) {
	e.handlers = append(e.handlers, h)
}

// Buttons returns the ordinary buttons in declaration order.
func (e *Entry) Buttons() []*Button {
	return e.buttons
}

// Quit returns the quit button, or nil.
func (e *Entry) Quit() *QuitButton {
	return e.quit
}

// presentable reports whether the entry has anything to click. Entries
// without any button are auto-retired instead of presented.
func (e *Entry) presentable() bool {
	return len(e.buttons) > 0 || e.quit != nil
}

// reset empties the entry so it can be rebuilt, mirroring the legacy
// destroy-then-reuse lifecycle.
func (e *Entry) reset() {
	e.Message = ""
	e.buttons = nil
	e.quit = nil
	e.handlers = nil
}

func validateHotkey(hotkey string) error {
	if hotkey == "" {
		return nil
	}
	if utf8.RuneCountInString(hotkey) != 1 {
		return ErrBadHotkey
	}
	return nil
}
