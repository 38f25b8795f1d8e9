package adminapp

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	authsvc "github.com/jayeshnarola-afk/pet-meeting-admin/internal/services/auth"
	catalogsvc "github.com/jayeshnarola-afk/pet-meeting-admin/internal/services/catalog"
	overviewsvc "github.com/jayeshnarola-afk/pet-meeting-admin/internal/services/overview"
	petssvc "github.com/jayeshnarola-afk/pet-meeting-admin/internal/services/pets"
	userssvc "github.com/jayeshnarola-afk/pet-meeting-admin/internal/services/users"
	"github.com/jayeshnarola-afk/pet-meeting-admin/internal/transport/http/handlers"
)

type Dependencies struct {
	AuthService     *authsvc.Service
	UserService     *userssvc.Service
	PetService      *petssvc.Service
	CatalogService  *catalogsvc.Service
	OverviewService *overviewsvc.Service
	Logger          *zap.Logger
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	authHandler := handlers.NewAuthHandler(deps.AuthService)
	usersHandler := handlers.NewUsersHandler(deps.UserService)
	petsHandler := handlers.NewPetsHandler(deps.PetService)
	catalogHandler := handlers.NewCatalogHandler(deps.CatalogService)
	overviewHandler := handlers.NewOverviewHandler(deps.OverviewService)
	healthHandler := handlers.NewHealthHandler()
	authMW := AuthMiddleware(deps.AuthService, deps.Logger)

	r.Get("/healthz", healthHandler.Check)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Group(func(r chi.Router) {
			r.Use(authMW)
			r.Post("/logout", authHandler.Logout)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(authMW)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", usersHandler.List)
			r.Post("/{id}/ban", usersHandler.Ban)
			r.Delete("/{id}", usersHandler.Delete)
			r.Post("/{id}/photo/block", usersHandler.BlockPhoto)
		})

		r.Route("/pets", func(r chi.Router) {
			r.Get("/", petsHandler.List)
			r.Get("/types", catalogHandler.Types)
			r.Get("/breeds", catalogHandler.Breeds)
			r.Get("/personalities", catalogHandler.Personalities)
			r.Post("/images/block", petsHandler.BlockImage)
			r.Post("/{id}/ban", petsHandler.Ban)
			r.Delete("/{id}", petsHandler.Delete)
		})

		r.Get("/overview", overviewHandler.Get)
	})
}
