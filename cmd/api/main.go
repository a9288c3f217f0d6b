package main

import (
	"net/http"
	"os"
	"time"

	"tarantula-husbandry/internal/adapters/auth/clerk"
	"tarantula-husbandry/internal/adapters/sync/webhook"
	"tarantula-husbandry/internal/platform/logger"
	"tarantula-husbandry/internal/ports/auth"
	"tarantula-husbandry/internal/router"
)

// @title Tarantula Husbandry API
// @version 1.0
// @description Registro de mudas, alimentación, salud, cría y notas de
// @description investigación para colecciones de tarántulas.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Sin CLERK_BASE_URL/CLERK_API_KEY el server queda en modo dev
	// (header X-Debug-User-ID).
	var verifier auth.AuthVerifier
	if base := os.Getenv("CLERK_BASE_URL"); base != "" {
		client, err := clerk.NewClient(clerk.Config{
			BaseURL: base,
			APIKey:  os.Getenv("CLERK_API_KEY"),
		})
		if err != nil {
			log.Error("config de clerk inválida", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		verifier = clerk.NewVerifier(client)
	} else {
		log.Warn("sin verifier configurado: modo dev (X-Debug-User-ID)", nil)
	}

	syncer := webhook.New(
		os.Getenv("MOLT_SYNC_WEBHOOK_URL"),
		os.Getenv("MOLT_SYNC_SECRET"),
		log,
	)

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Syncer:       syncer,
		Log:          log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
