package routers

import (
	"spectrumconnect-service/internal/app/delivery/http/controllers"
	"spectrumconnect-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCommunityRoutes(router chi.Router, middlewares *middlewares.Middlewares, communityController *controllers.CommunityController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Guard(loginRequired))
		r.Get("/topics", communityController.FindTopics)
		r.Post("/topics", communityController.CreateTopic)
		r.Post("/topics/{id}/like", communityController.LikeTopic)
		r.Get("/topics/{id}/comments", communityController.FindComments)
		r.Post("/topics/{id}/comments", communityController.CreateComment)
		r.Get("/events", communityController.FindEvents)
		r.Post("/events", communityController.CreateEvent)
		r.Post("/events/{id}/join", communityController.JoinEvent)
	})
}
