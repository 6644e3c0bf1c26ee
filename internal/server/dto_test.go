package server

import (
	"errors"
	"testing"

	"github.com/InsanityAI/DialogQueue/internal/dialog"
)

func TestParseClick(t *testing.T) {
	msg, err := parseClick([]byte(`{"type":"dialog_click","payload":{"button_id":"h-1"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if msg.ButtonID != "h-1" {
		t.Fatalf("ButtonID = %q", msg.ButtonID)
	}
}

func TestParseClickRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", `{{{`},
		{"missing button_id", `{"type":"dialog_click","payload":{}}`},
		{"bad payload", `{"type":"dialog_click","payload":"nope"}`},
	}
	for _, tc := range cases {
		if _, err := parseClick([]byte(tc.raw)); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}

	_, err := parseClick([]byte(`{"type":"ship_input","payload":{}}`))
	if !errors.Is(err, errUnknownType) {
		t.Fatalf("expected errUnknownType, got %v", err)
	}
}

func TestDialogToDTO(t *testing.T) {
	buttons := []dialog.PresentedButton{
		{Handle: "h-a", Label: "A", Hotkey: "a"},
		{Handle: "h-b", Label: "B"},
	}
	quit := &dialog.PresentedQuitButton{
		PresentedButton: dialog.PresentedButton{Handle: "h-q", Label: "Quit", Hotkey: "q"},
		ShowScoreScreen: true,
	}

	dto := dialogToDTO("pick", buttons, quit)

	if dto.Message != "pick" || len(dto.Buttons) != 2 {
		t.Fatalf("dto = %+v", dto)
	}
	if dto.Buttons[0].ID != "h-a" || dto.Buttons[0].Hotkey != "a" || dto.Buttons[1].ID != "h-b" {
		t.Fatalf("buttons mapped wrong: %+v", dto.Buttons)
	}
	if dto.Quit == nil || dto.Quit.ID != "h-q" || !dto.Quit.ScoreScreen {
		t.Fatalf("quit mapped wrong: %+v", dto.Quit)
	}

	noQuit := dialogToDTO("plain", buttons, nil)
	if noQuit.Quit != nil {
		t.Fatal("nil quit should stay nil")
	}
}
