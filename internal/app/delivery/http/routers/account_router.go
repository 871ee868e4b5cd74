package routers

import (
	"spectrumconnect-service/internal/app/delivery/http/controllers"
	"spectrumconnect-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAccountRoutes(router chi.Router, middlewares *middlewares.Middlewares, accountController *controllers.AccountController) {
	router.With(middlewares.Guard(loginRequired)).Get("/", accountController.GetProfile)
	router.With(middlewares.Guard(loginRequired)).Patch("/profile", accountController.UpdateProfile)
	router.With(middlewares.Guard(loginRequired)).Post("/profile-image", accountController.UploadProfileImage)
}
