package app

import (
	"github.com/go-chi/oauth"
	"github.com/refform/refform/analytics"
	"github.com/refform/refform/config"
	"github.com/refform/refform/store"
)

type App struct {
	*store.Store
	*oauth.BearerServer
	config.Config
	Analytics *analytics.Service
}
