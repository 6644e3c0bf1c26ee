package main

import (
	"flag"

	"github.com/InsanityAI/DialogQueue/internal/server"
)

func main() {
	defaults := server.DefaultAppConfig()

	addr := flag.String("addr", defaults.Addr, "address to listen on (e.g., 127.0.0.1:8080)")
	metricsNamespace := flag.String("metrics-namespace", defaults.MetricsNamespace, "prometheus metrics namespace")
	databaseURL := flag.String("database-url", defaults.DatabaseURL, "postgres URL for the click journal (default $DATABASE_URL; empty = in-memory)")
	allowAnyOrigin := flag.Bool("allow-any-origin", defaults.AllowAnyOrigin, "accept websocket connections from any origin")
	flag.Parse()

	cfg := defaults
	cfg.Addr = *addr
	cfg.MetricsNamespace = *metricsNamespace
	cfg.DatabaseURL = *databaseURL
	cfg.AllowAnyOrigin = *allowAnyOrigin

	server.StartApp(cfg)
}
