package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/InsanityAI/DialogQueue/internal/dialog"
	"github.com/InsanityAI/DialogQueue/internal/journal"
	"github.com/InsanityAI/DialogQueue/internal/observability"
)

// App wires the dialog scheduler to its transport, journal and metrics.
type App struct {
	Cfg     AppConfig
	Sched   *dialog.Scheduler
	Shim    *dialog.API
	Gateway *Gateway
	Metrics *observability.Metrics
	Journal journal.Store

	upgrader websocket.Upgrader
}

func NewApp(cfg AppConfig, store journal.Store, metrics *observability.Metrics) *App {
	gw := NewGateway()
	sched := dialog.NewScheduler(gw)
	sched.Metrics = metrics
	sched.Journal = store

	return &App{
		Cfg:     cfg,
		Sched:   sched,
		Shim:    dialog.NewAPI(sched),
		Gateway: gw,
		Metrics: metrics,
		Journal: store,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return cfg.AllowAnyOrigin },
		},
	}
}

func StartApp(cfg AppConfig) {
	metrics := observability.NewMetrics(cfg.MetricsNamespace)

	store, err := journal.NewStore(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("journal init failed: %v", err)
	}

	app := NewApp(cfg, store, metrics)

	mode := "in-memory"
	if cfg.DatabaseURL != "" {
		mode = "postgres"
	}
	log.Printf("starting dialog server on %s (journal: %s)", cfg.Addr, mode)
	startServer(app, cfg.Addr)
}
