package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/InsanityAI/DialogQueue/internal/dialog"
)

/* ------------------------------ wire frames ------------------------------ */

type outboundFrame struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type helloDTO struct {
	PlayerID string `json:"player_id"`
}

type buttonDTO struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Hotkey string `json:"hotkey,omitempty"`
}

type quitButtonDTO struct {
	buttonDTO
	ScoreScreen bool `json:"score_screen"`
}

type dialogDTO struct {
	Message string         `json:"message,omitempty"`
	Buttons []buttonDTO    `json:"buttons"`
	Quit    *quitButtonDTO `json:"quit,omitempty"`
}

type clickDTO struct {
	ButtonID string `json:"button_id"`
}

var errUnknownType = errors.New("unknown message type")

func dialogToDTO(message string, buttons []dialog.PresentedButton, quit *dialog.PresentedQuitButton) dialogDTO {
	dto := dialogDTO{
		Message: message,
		Buttons: make([]buttonDTO, len(buttons)),
	}
	for i, b := range buttons {
		dto.Buttons[i] = buttonDTO{ID: b.Handle, Label: b.Label, Hotkey: b.Hotkey}
	}
	if quit != nil {
		dto.Quit = &quitButtonDTO{
			buttonDTO:   buttonDTO{ID: quit.Handle, Label: quit.Label, Hotkey: quit.Hotkey},
			ScoreScreen: quit.ShowScoreScreen,
		}
	}
	return dto
}

// parseClick validates a dialog_click message.
func parseClick(raw []byte) (clickDTO, error) {
	var inbound inboundMessage
	if err := json.Unmarshal(raw, &inbound); err != nil {
		return clickDTO{}, fmt.Errorf("invalid envelope: %w", err)
	}
	if inbound.Type != "dialog_click" {
		return clickDTO{}, fmt.Errorf("%w: %s", errUnknownType, inbound.Type)
	}
	var msg clickDTO
	if err := json.Unmarshal(inbound.Payload, &msg); err != nil {
		return clickDTO{}, fmt.Errorf("invalid dialog_click payload: %w", err)
	}
	if msg.ButtonID == "" {
		return clickDTO{}, errors.New("dialog_click missing button_id")
	}
	return msg, nil
}
