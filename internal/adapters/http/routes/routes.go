package routes

import (
	"time"

	"natpark-backend/internal/adapters/http/handlers"
	"natpark-backend/internal/adapters/http/middleware"
	"natpark-backend/internal/adapters/persistence/repositories"
	"natpark-backend/internal/config"
	"natpark-backend/internal/core/domain"
	"natpark-backend/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	areaRepo := repositories.NewAreaRepository(db)
	biodiversityRepo := repositories.NewBiodiversityRepository(db)
	environmentRepo := repositories.NewEnvironmentRepository(db)
	visitorRepo := repositories.NewVisitorRepository(db)
	enforcementRepo := repositories.NewEnforcementRepository(db)
	researchRepo := repositories.NewResearchRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, sessionRepo, cfg)
	userService := services.NewUserService(userRepo)
	reservationService := services.NewReservationService(visitorRepo)
	visitorService := services.NewVisitorService(visitorRepo)
	enforcementService := services.NewEnforcementService(enforcementRepo)
	researchService := services.NewResearchService(researchRepo)
	statsService := services.NewStatsService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	areaHandler := handlers.NewAreaHandler(areaRepo)
	biodiversityHandler := handlers.NewBiodiversityHandler(biodiversityRepo)
	environmentHandler := handlers.NewEnvironmentHandler(environmentRepo)
	visitorHandler := handlers.NewVisitorHandler(visitorRepo, reservationService, visitorService)
	enforcementHandler := handlers.NewEnforcementHandler(enforcementRepo, enforcementService)
	researchHandler := handlers.NewResearchHandler(researchRepo, researchService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	api := app.Group("/api/v1")
	auth := middleware.AuthMiddleware(cfg)

	// Auth
	authGroup := api.Group("/auth")
	authGroup.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)
	authGroup.Post("/logout", auth, authHandler.Logout)
	authGroup.Get("/current-user", auth, authHandler.CurrentUser)

	// System administration
	system := api.Group("/system", auth)
	users := system.Group("/users")
	users.Get("/", middleware.RequirePermission(domain.OpViewUserDirectory), userHandler.ListUsers)
	users.Post("/", middleware.RequirePermission(domain.OpManageUsers), userHandler.CreateUser)
	users.Get("/:id", middleware.RequirePermission(domain.OpViewUserDirectory), userHandler.GetUser)
	users.Put("/:id", middleware.RequirePermission(domain.OpManageUsers), userHandler.UpdateUser)
	users.Delete("/:id", middleware.RequirePermission(domain.OpManageUsers), userHandler.DeleteUser)
	users.Post("/:id/reset-password", middleware.RequirePermission(domain.OpManageUsers), userHandler.ResetPassword)

	areas := system.Group("/areas")
	areas.Get("/", areaHandler.ListAreas)
	areas.Post("/", middleware.RequirePermission(domain.OpManageAreas), areaHandler.CreateArea)
	areas.Get("/:id", areaHandler.GetArea)
	areas.Put("/:id", middleware.RequirePermission(domain.OpManageAreas), areaHandler.UpdateArea)
	areas.Delete("/:id", middleware.RequirePermission(domain.OpManageAreas), areaHandler.DeleteArea)

	// Biodiversity
	biodiversity := api.Group("/biodiversity", auth)
	species := biodiversity.Group("/species")
	species.Get("/", middleware.CacheControl(10*time.Minute), biodiversityHandler.ListSpecies)
	species.Get("/protected", biodiversityHandler.ListProtectedSpecies)
	species.Get("/statistics", biodiversityHandler.SpeciesStatistics)
	species.Post("/", middleware.RequirePermission(domain.OpWriteBiodiversity), biodiversityHandler.CreateSpecies)
	species.Get("/:id", biodiversityHandler.GetSpecies)
	species.Put("/:id", middleware.RequirePermission(domain.OpWriteBiodiversity), biodiversityHandler.UpdateSpecies)
	species.Delete("/:id", middleware.RequirePermission(domain.OpWriteBiodiversity), biodiversityHandler.DeleteSpecies)

	habitats := biodiversity.Group("/habitats")
	habitats.Get("/", biodiversityHandler.ListHabitats)
	habitats.Post("/", middleware.RequirePermission(domain.OpWriteBiodiversity), biodiversityHandler.CreateHabitat)
	habitats.Get("/:id", biodiversityHandler.GetHabitat)
	habitats.Put("/:id", middleware.RequirePermission(domain.OpWriteBiodiversity), biodiversityHandler.UpdateHabitat)
	habitats.Delete("/:id", middleware.RequirePermission(domain.OpWriteBiodiversity), biodiversityHandler.DeleteHabitat)
	habitats.Get("/:id/species", biodiversityHandler.ListHabitatSpecies)
	habitats.Post("/:id/species", middleware.RequirePermission(domain.OpWriteBiodiversity), biodiversityHandler.LinkSpecies)

	devices := biodiversity.Group("/devices")
	devices.Get("/", biodiversityHandler.ListDevices)
	devices.Post("/", middleware.RequirePermission(domain.OpManageDevices), biodiversityHandler.CreateDevice)
	devices.Get("/:id", biodiversityHandler.GetDevice)
	devices.Patch("/:id/status", middleware.RequirePermission(domain.OpManageDevices), biodiversityHandler.UpdateDeviceStatus)
	devices.Delete("/:id", middleware.RequirePermission(domain.OpManageDevices), biodiversityHandler.DeleteDevice)

	records := biodiversity.Group("/monitoring-records")
	records.Get("/", biodiversityHandler.ListMonitoringRecords)
	records.Post("/", middleware.RequirePermission(domain.OpWriteBiodiversity), biodiversityHandler.CreateMonitoringRecord)
	records.Get("/:id", biodiversityHandler.GetMonitoringRecord)
	records.Post("/:id/verify", middleware.RequirePermission(domain.OpWriteBiodiversity), biodiversityHandler.VerifyMonitoringRecord)

	// Environment
	environment := api.Group("/environment", auth)
	indicators := environment.Group("/indicators")
	indicators.Get("/", middleware.CacheControl(10*time.Minute), environmentHandler.ListIndicators)
	indicators.Post("/", middleware.RequirePermission(domain.OpWriteEnvironment), environmentHandler.CreateIndicator)
	indicators.Get("/:id", environmentHandler.GetIndicator)
	indicators.Put("/:id", middleware.RequirePermission(domain.OpWriteEnvironment), environmentHandler.UpdateIndicator)
	indicators.Delete("/:id", middleware.RequirePermission(domain.OpWriteEnvironment), environmentHandler.DeleteIndicator)

	envData := environment.Group("/data")
	envData.Get("/", environmentHandler.ListData)
	envData.Post("/", middleware.RequirePermission(domain.OpWriteEnvironment), environmentHandler.CreateData)
	envData.Get("/:id", environmentHandler.GetData)
	environment.Get("/statistics", environmentHandler.DataStatistics)

	// Visitor management
	visitor := api.Group("/visitor", auth)
	visitors := visitor.Group("/visitors")
	visitors.Get("/", visitorHandler.ListVisitors)
	visitors.Post("/", middleware.RequirePermission(domain.OpManageVisitors), visitorHandler.CreateVisitor)
	visitors.Get("/:id", visitorHandler.GetVisitor)
	visitors.Post("/:id/entry", middleware.RequirePermission(domain.OpManageVisitors), visitorHandler.RegisterEntry)
	visitors.Post("/:id/exit", middleware.RequirePermission(domain.OpManageVisitors), visitorHandler.RegisterExit)
	visitors.Get("/:id/trajectories", visitorHandler.ListVisitorTrajectories)

	reservations := visitor.Group("/reservations")
	reservations.Get("/", visitorHandler.ListReservations)
	reservations.Post("/", visitorHandler.CreateReservation)
	reservations.Get("/:id", visitorHandler.GetReservation)
	reservations.Post("/:id/cancel", middleware.RequirePermission(domain.OpCancelReservation), visitorHandler.CancelReservation)
	reservations.Post("/:id/complete", middleware.RequirePermission(domain.OpManageVisitors), visitorHandler.CompleteReservation)

	visitor.Post("/trajectories", middleware.RequirePermission(domain.OpManageVisitors), visitorHandler.CreateTrajectory)

	traffic := visitor.Group("/traffic", middleware.NoCacheHeaders())
	traffic.Get("/", visitorHandler.TrafficOverview)
	traffic.Get("/:id", visitorHandler.GetAreaTraffic)
	traffic.Put("/:id", middleware.RequirePermission(domain.OpManageTrafficControl), visitorHandler.UpsertTrafficControl)

	// Enforcement
	enforcement := api.Group("/enforcement", auth)
	enforcers := enforcement.Group("/enforcers")
	enforcers.Get("/", enforcementHandler.ListEnforcers)
	enforcers.Post("/", middleware.RequirePermission(domain.OpWriteEnforcement), enforcementHandler.CreateEnforcer)
	enforcers.Get("/:id", enforcementHandler.GetEnforcer)
	enforcers.Put("/:id", middleware.RequirePermission(domain.OpWriteEnforcement), enforcementHandler.UpdateEnforcer)
	enforcers.Delete("/:id", middleware.RequirePermission(domain.OpWriteEnforcement), enforcementHandler.DeleteEnforcer)

	surveillance := enforcement.Group("/surveillance-points")
	surveillance.Get("/", enforcementHandler.ListSurveillancePoints)
	surveillance.Post("/", middleware.RequirePermission(domain.OpWriteEnforcement), enforcementHandler.CreateSurveillancePoint)
	surveillance.Get("/:id", enforcementHandler.GetSurveillancePoint)
	surveillance.Put("/:id", middleware.RequirePermission(domain.OpWriteEnforcement), enforcementHandler.UpdateSurveillancePoint)
	surveillance.Delete("/:id", middleware.RequirePermission(domain.OpWriteEnforcement), enforcementHandler.DeleteSurveillancePoint)

	cases := enforcement.Group("/cases")
	cases.Get("/", enforcementHandler.ListCases)
	cases.Post("/", middleware.RequirePermission(domain.OpWriteEnforcement), enforcementHandler.CreateCase)
	cases.Get("/:id", enforcementHandler.GetCase)
	cases.Post("/:id/handle", middleware.RequirePermission(domain.OpHandleCase), enforcementHandler.HandleCase)

	dispatches := enforcement.Group("/dispatches")
	dispatches.Get("/", enforcementHandler.ListDispatches)
	dispatches.Post("/", middleware.RequirePermission(domain.OpDispatchWorkflow), enforcementHandler.CreateDispatch)
	dispatches.Get("/:id", enforcementHandler.GetDispatch)
	dispatches.Post("/:id/respond", middleware.RequirePermission(domain.OpDispatchWorkflow), enforcementHandler.RespondDispatch)
	dispatches.Post("/:id/complete", middleware.RequirePermission(domain.OpDispatchWorkflow), enforcementHandler.CompleteDispatch)

	// Research
	research := api.Group("/research", auth)
	projects := research.Group("/projects")
	projects.Get("/", researchHandler.ListProjects)
	projects.Post("/", middleware.RequirePermission(domain.OpWriteResearch), researchHandler.CreateProject)
	projects.Get("/:id", researchHandler.GetProject)
	projects.Put("/:id", middleware.RequirePermission(domain.OpWriteResearch), researchHandler.UpdateProject)
	projects.Delete("/:id", middleware.RequirePermission(domain.OpWriteResearch), researchHandler.DeleteProject)
	projects.Post("/:id/complete", middleware.RequirePermission(domain.OpWriteResearch), researchHandler.CompleteProject)
	projects.Post("/:id/suspend", middleware.RequirePermission(domain.OpWriteResearch), researchHandler.SuspendProject)
	projects.Post("/:id/resume", middleware.RequirePermission(domain.OpWriteResearch), researchHandler.ResumeProject)

	collections := research.Group("/data-collections")
	collections.Get("/", researchHandler.ListCollections)
	collections.Post("/", middleware.RequirePermission(domain.OpWriteResearch), researchHandler.CreateCollection)
	collections.Get("/:id", researchHandler.GetCollection)

	achievements := research.Group("/achievements")
	achievements.Get("/", researchHandler.ListAchievements)
	achievements.Post("/", middleware.RequirePermission(domain.OpWriteResearch), researchHandler.CreateAchievement)
	achievements.Get("/:id", researchHandler.GetAchievement)

	// Statistics
	stats := api.Group("/stats", auth)
	stats.Get("/dashboard", statsHandler.Dashboard)
	stats.Get("/biodiversity", statsHandler.Biodiversity)
	stats.Get("/visitors", statsHandler.Visitors)
	stats.Get("/enforcement", statsHandler.Enforcement)
	stats.Get("/research", statsHandler.Research)
}
