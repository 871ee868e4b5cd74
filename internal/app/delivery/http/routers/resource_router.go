package routers

import (
	"spectrumconnect-service/internal/app/delivery/http/controllers"
	"spectrumconnect-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// Resources is a public page: the guard renders it for everyone.
func attachResourceRoutes(router chi.Router, middlewares *middlewares.Middlewares, resourceController *controllers.ResourceController) {
	router.With(middlewares.Guard(publicPage)).Get("/", resourceController.FindAll)
}
