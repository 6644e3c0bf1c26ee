package server

import "os"

// AppConfig carries the runtime settings resolved in main.
type AppConfig struct {
	Addr             string
	MetricsNamespace string
	DatabaseURL      string
	AllowAnyOrigin   bool
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		Addr:             ":8080",
		MetricsNamespace: "dialogqueue",
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		AllowAnyOrigin:   true,
	}
}
