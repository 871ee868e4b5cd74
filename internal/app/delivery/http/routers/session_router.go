package routers

import (
	"spectrumconnect-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(router chi.Router, sessionController *controllers.SessionController) {
	router.Get("/", sessionController.Get)
	router.Post("/refresh", sessionController.Refresh)
}
