package dialog

import (
	"errors"
	"testing"
)

func TestAddButtonHotkeyValidation(t *testing.T) {
	e := NewEntry()

	if _, err := e.AddButton("ok", ""); err != nil {
		t.Fatalf("empty hotkey rejected: %v", err)
	}
	if _, err := e.AddButton("ok", "k"); err != nil {
		t.Fatalf("single-char hotkey rejected: %v", err)
	}
	if _, err := e.AddButton("ok", "é"); err != nil {
		t.Fatalf("single-rune hotkey rejected: %v", err)
	}
	if _, err := e.AddButton("ok", "ok"); !errors.Is(err, ErrBadHotkey) {
		t.Fatalf("multi-char hotkey accepted, err=%v", err)
	}
	if _, err := e.AddQuitButton("quit", "qq", false); !errors.Is(err, ErrBadHotkey) {
		t.Fatalf("multi-char quit hotkey accepted, err=%v", err)
	}
}

func TestAddQuitButtonReplacesPrevious(t *testing.T) {
	e := NewEntry()
	first, _ := e.AddQuitButton("first", "", false)
	second, _ := e.AddQuitButton("second", "", true)

	if e.Quit() == first {
		t.Fatal("previous quit button still attached")
	}
	if e.Quit() != second || !e.Quit().ShowScoreScreen {
		t.Fatal("replacement quit button not attached")
	}
}

func TestButtonsKeepDeclarationOrder(t *testing.T) {
	e := NewEntry()
	labels := []string{"alpha", "beta", "gamma"}
	for _, l := range labels {
		if _, err := e.AddButton(l, ""); err != nil {
			t.Fatal(err)
		}
	}
	got := e.Buttons()
	if len(got) != len(labels) {
		t.Fatalf("got %d buttons", len(got))
	}
	for i, l := range labels {
		if got[i].Label != l {
			t.Fatalf("button %d is %q, want %q", i, got[i].Label, l)
		}
	}
}

func TestCopyEntryIsIndependent(t *testing.T) {
	src := NewEntry()
	src.SetMessage("original")
	b, _ := src.AddButton("ok", "o")
	fired := ""
	b.OnClick(func(_ *Button, _ *Entry, _ PlayerID) { fired = "src" })
	src.OnClick(func(_ *Entry, _ PlayerID) {})
	if _, err := src.AddQuitButton("quit", "q", true); err != nil {
		t.Fatal(err)
	}

	cp := CopyEntry(src)

	if cp.Message != "original" || len(cp.Buttons()) != 1 || cp.Quit() == nil {
		t.Fatalf("copy missing content: %+v", cp)
	}
	if cp.Buttons()[0] == b || cp.Quit() == src.Quit() {
		t.Fatal("copy shares button pointers with source")
	}
	if !cp.Quit().ShowScoreScreen {
		t.Fatal("copy lost the score screen flag")
	}

	// Mutating the copy must not reach back into the source.
	cp.SetMessage("changed")
	cp.Buttons()[0].OnClick(func(_ *Button, _ *Entry, _ PlayerID) { fired = "cp" })
	if _, err := cp.AddButton("extra", ""); err != nil {
		t.Fatal(err)
	}
	if src.Message != "original" || len(src.Buttons()) != 1 {
		t.Fatal("mutating the copy changed the source")
	}
	if len(b.handlers) != 1 {
		t.Fatal("copy shares handler slices with source")
	}
	_ = fired
}

func TestPresentable(t *testing.T) {
	e := NewEntry()
	e.SetMessage("words alone")
	if e.presentable() {
		t.Fatal("buttonless entry reported presentable")
	}

	withButton := NewEntry()
	withButton.AddButton("ok", "")
	if !withButton.presentable() {
		t.Fatal("entry with a button reported unpresentable")
	}

	quitOnly := NewEntry()
	quitOnly.AddQuitButton("quit", "", false)
	if !quitOnly.presentable() {
		t.Fatal("entry with only a quit button reported unpresentable")
	}
}

func TestResetEmptiesEntry(t *testing.T) {
	e := NewEntry()
	e.SetMessage("msg")
	e.AddButton("ok", "")
	e.AddQuitButton("quit", "", true)
	e.OnClick(func(_ *Entry, _ PlayerID) {})

	e.reset()

	if e.Message != "" || len(e.Buttons()) != 0 || e.Quit() != nil || len(e.handlers) != 0 {
		t.Fatalf("reset left content behind: %+v", e)
	}
	if e.presentable() {
		t.Fatal("reset entry still presentable")
	}
}
