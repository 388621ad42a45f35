package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/refform/refform/analytics"
	"github.com/refform/refform/app"
	"github.com/refform/refform/config"
	"github.com/refform/refform/database"
	"github.com/refform/refform/httpx"
	"github.com/refform/refform/log"
	"github.com/refform/refform/routes"
	"github.com/refform/refform/store"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	repo := store.New(db)
	bearerServer := httpx.NewBearerServer(db, cfg)

	app := app.App{
		Store:        repo,
		BearerServer: bearerServer,
		Config:       cfg,
		Analytics:    analytics.NewService(repo),
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
