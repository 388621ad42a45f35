package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/refform/refform/app"
	"github.com/refform/refform/routes/middlewares"
)

var validate = validator.New()

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))

	root.
		With(middlewares.CookieAuth(app.BearerServer), middlewares.Admin(app.TokenSecret)).
		Mount("/admin", servePrivateFiles("/admin"))
	root.Mount("/", servePublicFiles())

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	api.Get("/campaigns/{id}", PublicGetCampaignById(app))
	api.Post("/campaigns/{id}/submissions", PublicSubmitCampaign(app))

	api.Route("/admin", func(r chi.Router) {
		r.Use(middlewares.Admin(app.TokenSecret))

		// CRUD campaign
		r.Post("/campaigns", CreateCampaign(app))
		r.Get("/campaigns", ListCampaigns(app))
		r.Get("/campaigns/analytics", GetAllCampaignAnalytics(app))
		r.Get("/campaigns/{id}", GetCampaignById(app))
		r.Put("/campaigns/{id}", UpdateCampaign(app))
		r.Delete("/campaigns/{id}", DeleteCampaign(app))

		r.Get("/campaigns/{id}/submissions", GetCampaignSubmissions(app))
		r.Get("/campaigns/{id}/analytics", GetCampaignAnalytics(app))
		r.Get("/analytics", GetOverallAnalytics(app))
	})

	api.Post("/login", Login(app))
	api.Post("/refresh", Refresh(app))

	return api
}

func servePublicFiles() http.Handler {
	return http.FileServer(http.Dir("public"))
}

func servePrivateFiles(path string) http.Handler {
	return http.StripPrefix(path, http.FileServer(http.Dir("private")))
}
