package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/fixtureapp/fixture-backend/handlers"
	"github.com/fixtureapp/fixture-backend/middleware"
)

// SetupRoutes wires every endpoint. Reads are public; everything that
// mutates tournament state sits behind the admin token check.
func SetupRoutes(
	router *chi.Mux,
	allowedOrigins []string,
	auth *middleware.Authenticator,
	authHandler *handlers.AuthHandler,
	tournamentHandler *handlers.TournamentHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Post("/auth/login", authHandler.Login)

	router.Route("/tournament", func(r chi.Router) {
		r.Get("/", tournamentHandler.GetState)
		r.Get("/overview", tournamentHandler.GetOverview)
		r.Get("/groups/{groupID}/standings", tournamentHandler.GetStandings)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin)

			r.Post("/generate", tournamentHandler.GenerateSchedule)
			r.Post("/matches/{matchID}/result", tournamentHandler.SubmitResult)
			r.Post("/advance", tournamentHandler.GenerateNextKnockoutStage)
			r.Post("/reset", tournamentHandler.Reset)
			r.Post("/teams/{teamID}/logo", tournamentHandler.UploadTeamLogo)
		})
	})

	router.Get("/ws", webSocketHandler.ServeWs)
}
