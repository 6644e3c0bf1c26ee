package server

import (
	"sync"

	"github.com/InsanityAI/DialogQueue/internal/dialog"
)

// Gateway is the native prompt facility seen by the scheduler: each Present
// or ClearDialog becomes an outbound frame buffered per player, drained by
// that player's websocket send loop. Buffering keeps network writes out of
// the scheduler's critical section.
type Gateway struct {
	mu      sync.Mutex
	pending map[dialog.PlayerID][]outboundFrame
}

func NewGateway() *Gateway {
	return &Gateway{pending: make(map[dialog.PlayerID][]outboundFrame)}
}

func (g *Gateway) Present(player dialog.PlayerID, message string, buttons []dialog.PresentedButton, quit *dialog.PresentedQuitButton) {
	g.push(player, outboundFrame{Type: "dialog", Payload: dialogToDTO(message, buttons, quit)})
}

func (g *Gateway) ClearDialog(player dialog.PlayerID) {
	g.push(player, outboundFrame{Type: "dialog_clear"})
}

func (g *Gateway) push(player dialog.PlayerID, frame outboundFrame) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending[player] = append(g.pending[player], frame)
}

// Drain returns and clears the player's buffered frames.
func (g *Gateway) Drain(player dialog.PlayerID) []outboundFrame {
	g.mu.Lock()
	defer g.mu.Unlock()
	frames := g.pending[player]
	if len(frames) == 0 {
		return nil
	}
	delete(g.pending, player)
	return frames
}

// DropPlayer discards buffered frames after a disconnect. The player's queue
// itself lives on in the scheduler.
func (g *Gateway) DropPlayer(player dialog.PlayerID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.pending, player)
}
