package server

import (
	_ "embed"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/InsanityAI/DialogQueue/internal/journal"
	"github.com/InsanityAI/DialogQueue/internal/observability"
)

/* ------------------------------ Embeds ------------------------------ */

//go:embed web/index.html
var htmlIndex []byte

//go:embed web/client.js
var jsClient []byte

/* ------------------------------- HTTP ------------------------------- */

func newRouter(app *App) http.Handler {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(htmlIndex)
	})
	r.Get("/client.js", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		_, _ = w.Write(jsClient)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", observability.MetricsHandler())
	r.Get("/journal/{player}", app.handleJournal)
	r.Get("/ws", func(w http.ResponseWriter, req *http.Request) {
		serveWS(app, w, req)
	})
	return r
}

type journalResponse struct {
	Player string                `json:"player"`
	Clicks []journal.ClickRecord `json:"clicks"`
}

func (app *App) handleJournal(w http.ResponseWriter, r *http.Request) {
	player := chi.URLParam(r, "player")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	clicks, err := app.Journal.RecentClicks(r.Context(), player, limit)
	if err != nil {
		log.Printf("journal read for %s: %v", player, err)
		http.Error(w, "journal read failed", http.StatusInternalServerError)
		return
	}
	if clicks == nil {
		clicks = []journal.ClickRecord{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(journalResponse{Player: player, Clicks: clicks})
}

func startServer(app *App, addr string) {
	log.Fatal(http.ListenAndServe(addr, newRouter(app)))
}
