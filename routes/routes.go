package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/copaamateur/copa-backend/handlers"
	"github.com/copaamateur/copa-backend/middleware"
	"github.com/copaamateur/copa-backend/models"
)

// SetupRoutes собирает все маршруты API. Чтение открыто всем, изменения
// требуют токена: управление турниром — админу, запись результатов — судьям.
func SetupRoutes(
	router *chi.Mux,
	auth *middleware.Auth,
	authHandler *handlers.AuthHandler,
	teamHandler *handlers.TeamHandler,
	eventHandler *handlers.EventHandler,
	tournamentHandler *handlers.TournamentHandler,
	postHandler *handlers.PostHandler,
	sponsorHandler *handlers.SponsorHandler,
	participantHandler *handlers.ParticipantHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	admin := string(models.RoleAdmin)
	referee := string(models.RoleReferee)

	router.Post("/auth/register", authHandler.Register)
	router.Post("/auth/login", authHandler.Login)
	router.Group(func(r chi.Router) {
		r.Use(auth.Authenticate)
		r.Get("/auth/me", authHandler.CurrentUser)
	})

	router.Route("/users", func(r chi.Router) {
		r.Use(auth.Authenticate)
		r.Use(middleware.Authorize(admin))
		r.Get("/referees", authHandler.ListReferees)
		r.Put("/{userID}/role", authHandler.SetUserRole)
	})

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", teamHandler.ListTeams)
		r.Get("/{teamID}", teamHandler.GetTeamByID)
		r.Get("/{teamID}/players", teamHandler.ListRoster)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Use(middleware.Authorize(admin))
			r.Post("/", teamHandler.CreateTeam)
			r.Put("/{teamID}", teamHandler.UpdateTeam)
			r.Post("/{teamID}/logo", teamHandler.UploadLogo)
			r.Delete("/{teamID}", teamHandler.DeleteTeam)
		})
	})

	router.Route("/participants", func(r chi.Router) {
		r.Use(auth.Authenticate)
		r.Use(middleware.Authorize(admin))
		r.Post("/", participantHandler.CreateParticipant)
		r.Put("/{participantID}", participantHandler.UpdateParticipant)
		r.Delete("/{participantID}", participantHandler.DeleteParticipant)
	})

	router.Route("/events", func(r chi.Router) {
		r.Get("/", eventHandler.ListEvents)
		r.Get("/{eventID}", eventHandler.GetEventDetail)
		r.Get("/{eventID}/teams", tournamentHandler.ListEventTeams)
		r.Get("/{eventID}/matches", tournamentHandler.ListMatches)
		r.Get("/{eventID}/standings", tournamentHandler.GroupStandings)
		r.Get("/{eventID}/standings/export", tournamentHandler.ExportStandingsCSV)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Use(middleware.Authorize(admin))
			r.Post("/", eventHandler.CreateEvent)
			r.Put("/{eventID}", eventHandler.UpdateEvent)
			r.Post("/{eventID}/poster", eventHandler.UploadPoster)
			r.Delete("/{eventID}", eventHandler.DeleteEvent)

			r.Post("/{eventID}/matches", tournamentHandler.CreateMatch)
			r.Post("/{eventID}/teams", tournamentHandler.AddTeams)
			r.Delete("/{eventID}/teams/{eventTeamID}", tournamentHandler.RemoveTeam)
			r.Post("/{eventID}/draw", tournamentHandler.GenerateDraw)
			r.Post("/{eventID}/knockout", tournamentHandler.GenerateKnockout)
			r.Post("/{eventID}/standings/recompute", tournamentHandler.RecomputeStandings)
		})
	})

	router.Route("/matches", func(r chi.Router) {
		r.Use(auth.Authenticate)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authorize(admin, referee))
			r.Put("/{matchID}/result", tournamentHandler.RecordResult)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authorize(admin))
			r.Put("/{matchID}", tournamentHandler.UpdateMatch)
			r.Put("/{matchID}/referee", tournamentHandler.AssignReferee)
			r.Delete("/{matchID}/referee", tournamentHandler.UnassignReferee)
		})
	})

	router.Route("/posts", func(r chi.Router) {
		r.Get("/", postHandler.ListPosts)
		r.Get("/{postID}", postHandler.GetPostByID)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Use(middleware.Authorize(admin))
			r.Post("/", postHandler.CreatePost)
			r.Put("/{postID}", postHandler.UpdatePost)
			r.Post("/{postID}/image", postHandler.UploadImage)
			r.Delete("/{postID}", postHandler.DeletePost)
		})
	})

	router.Route("/sponsors", func(r chi.Router) {
		r.Get("/", sponsorHandler.ListSponsors)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Use(middleware.Authorize(admin))
			r.Post("/", sponsorHandler.CreateSponsor)
			r.Put("/{sponsorID}", sponsorHandler.UpdateSponsor)
			r.Post("/{sponsorID}/logo", sponsorHandler.UploadLogo)
			r.Delete("/{sponsorID}", sponsorHandler.DeleteSponsor)
		})
	})
}
