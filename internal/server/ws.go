package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/InsanityAI/DialogQueue/internal/dialog"
)

// Outbound frames are low-rate (one dialog at a time per player), so the
// send loop polls the gateway buffer well below game-server rates.
const sendRateHz = 20

func serveWS(app *App, w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	playerID := dialog.PlayerID(query.Get("player"))
	if playerID == "" {
		playerID = dialog.PlayerID(RandId("p"))
	}

	conn, err := app.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}

	if err := conn.WriteJSON(outboundFrame{Type: "hello", Payload: helloDTO{PlayerID: string(playerID)}}); err != nil {
		log.Printf("hello send error: %v", err)
		conn.Close()
		return
	}

	app.Sched.Mu.Lock()
	if query.Get("demo") == "1" {
		seedDemo(app, playerID)
	}
	// A returning player may still have a dialog up from before the
	// disconnect; mint fresh widget handles and show it again.
	app.Sched.Refresh(playerID)
	app.Sched.Mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		defer cancel()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			msg, err := parseClick(data)
			if err != nil {
				log.Printf("ws %s: %v", playerID, err)
				continue
			}
			app.Metrics.WSMessages.WithLabelValues("in", "dialog_click").Inc()

			app.Sched.Mu.Lock()
			app.Sched.HandleClick(ctx, playerID, msg.ButtonID)
			app.Sched.Mu.Unlock()
		}
	}()

	sendTick := time.NewTicker(time.Second / sendRateHz)
	go func() {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case <-sendTick.C:
				for _, frame := range app.Gateway.Drain(playerID) {
					if err := conn.WriteJSON(frame); err != nil {
						log.Printf("send error: %v", err)
						return
					}
					app.Metrics.WSMessages.WithLabelValues("out", frame.Type).Inc()
				}
			}
		}
	}()

	<-ctx.Done()
	sendTick.Stop()
	conn.Close()
	app.Gateway.DropPlayer(playerID)
}
