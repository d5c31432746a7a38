package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-turnos/internal/audit"
	"github.com/BruksfildServices01/barber-turnos/internal/config"
	"github.com/BruksfildServices01/barber-turnos/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-turnos/internal/infra/repository"
	"github.com/BruksfildServices01/barber-turnos/internal/metrics"
	"github.com/BruksfildServices01/barber-turnos/internal/middleware"
	"github.com/BruksfildServices01/barber-turnos/internal/timezone"
	ucComment "github.com/BruksfildServices01/barber-turnos/internal/usecase/comment"
	ucReservation "github.com/BruksfildServices01/barber-turnos/internal/usecase/reservation"
)

// Deps são as peças criadas no main e compartilhadas pelas rotas.
type Deps struct {
	Audit    *audit.Dispatcher
	Metrics  *metrics.Metrics
	Clock    timezone.Clock
	Lock     ucReservation.RunLock
	Archiver ucReservation.Archiver
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.MetricsMiddleware(deps.Metrics))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(db)
	barbershopRepo := infraRepo.NewBarbershopGormRepository(db)
	commentRepo := infraRepo.NewCommentGormRepository(db)

	// ======================================================
	// USE CASES: RESERVATIONS
	// ======================================================
	bookUC := ucReservation.NewBook(reservationRepo, deps.Clock, deps.Audit, deps.Metrics)
	updateUC := ucReservation.NewUpdate(reservationRepo, deps.Clock, deps.Audit)
	cancelUC := ucReservation.NewCancel(reservationRepo, deps.Clock, deps.Audit)
	deleteUC := ucReservation.NewDelete(reservationRepo, deps.Audit)
	listMineUC := ucReservation.NewListMine(reservationRepo, deps.Clock)
	availabilityUC := ucReservation.NewListAvailability(reservationRepo, deps.Clock)
	reapUC := ucReservation.NewReap(reservationRepo, deps.Lock, deps.Archiver, deps.Audit, deps.Metrics)

	// ======================================================
	// USE CASES: COMMENTS
	// ======================================================
	createCommentUC := ucComment.NewCreate(commentRepo, deps.Audit)
	updateCommentUC := ucComment.NewUpdate(commentRepo, deps.Audit)
	listCommentsUC := ucComment.NewList(commentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	reservationHandler := handlers.NewReservationHandler(
		bookUC,
		updateUC,
		cancelUC,
		deleteUC,
		listMineUC,
	)
	publicHandler := handlers.NewPublicHandler(availabilityUC, listCommentsUC, barbershopRepo)
	commentHandler := handlers.NewCommentHandler(createCommentUC, updateCommentUC)
	scheduleHandler := handlers.NewScheduleHandler(barbershopRepo, deps.Audit)
	barbershopHandler := handlers.NewBarbershopHandler(barbershopRepo, deps.Audit)
	serviceHandler := handlers.NewServiceHandler(barbershopRepo)
	reaperHandler := handlers.NewReaperHandler(reapUC, deps.Clock, timezone.Location(cfg.DefaultTimezone))
	meHandler := handlers.NewMeHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICA
		// ------------------------------
		api.GET("/barbershops/:id/availability", publicHandler.Availability)
		api.GET("/barbershops/:id/services", publicHandler.Services)
		api.GET("/barbershops/:id/comments", publicHandler.Comments)

		// ------------------------------
		// GATILHO AGENDADO
		// ------------------------------
		api.DELETE(
			"/reservations/stale",
			middleware.CronTokenMiddleware(cfg.CronSecret),
			reaperHandler.Run,
		)

		// ------------------------------
		// PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/reservations", reservationHandler.Book)
			secured.GET("/reservations", reservationHandler.List)
			secured.PATCH("/reservations/:id", reservationHandler.Update)
			secured.PATCH("/reservations/:id/cancel", reservationHandler.Cancel)
			secured.DELETE("/reservations/:id", reservationHandler.Delete)

			secured.POST("/comments", commentHandler.Create)
			secured.PATCH("/comments/:id", commentHandler.Update)

			secured.GET("/me/barbershop", barbershopHandler.GetMeBarbershop)
			secured.PATCH("/me/barbershop", barbershopHandler.UpdateMeBarbershop)

			secured.GET("/me/schedule", scheduleHandler.Get)
			secured.PUT("/me/schedule", scheduleHandler.Replace)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
