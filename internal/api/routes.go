package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"clinicdesk/internal/api/handlers"
	apimiddleware "clinicdesk/internal/api/middleware"
	"clinicdesk/internal/api/validation"
	"clinicdesk/internal/api/ws"
	"clinicdesk/internal/config"
	clinicredis "clinicdesk/internal/redis"
)

type procedureKind int

const (
	// query procedures answer GET with query parameters and POST with a JSON body.
	query procedureKind = iota
	// mutation procedures answer POST only and sit behind staff auth when it is enabled.
	mutation
)

type procedure struct {
	name    string
	kind    procedureKind
	handler echo.HandlerFunc
}

// SetupRoutes mounts every procedure under /rpc/<name>. rdb may be nil, which disables rate limiting.
func SetupRoutes(e *echo.Echo, db *sqlx.DB, rdb *redis.Client, hub *ws.Hub, cfg *config.Config, logger *slog.Logger) {
	e.Validator = validation.NewValidator()

	readyChecks := []handlers.ReadyCheck{
		{Name: "postgres", Check: func(ctx context.Context) error { return db.PingContext(ctx) }},
	}
	if rdb != nil {
		readyChecks = append(readyChecks, handlers.ReadyCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return clinicredis.Ping(ctx, rdb) },
		})
	}
	healthHandler := handlers.NewHealthHandler(readyChecks...)

	e.GET("/health", healthHandler.Healthcheck)
	e.GET("/readyz", healthHandler.Ready)

	rpc := e.Group("/rpc")
	if rdb != nil {
		limiter := clinicredis.NewRateLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window, "clinicdesk:rl")
		rpc.Use(apimiddleware.RateLimit(limiter, logger))
	}

	var mutationMiddleware []echo.MiddlewareFunc
	if cfg.Auth.Enabled {
		mutationMiddleware = append(mutationMiddleware,
			apimiddleware.RequireStaff(cfg.Auth.JWTKey),
			apimiddleware.ExtractStaffFromJWT(),
		)
	}

	subscribeHandler := handlers.NewSubscribeHandler(hub)
	rpc.GET("/subscribe", subscribeHandler.Subscribe)

	for _, p := range procedures(db, hub, healthHandler, logger) {
		switch p.kind {
		case query:
			rpc.Match([]string{http.MethodGet, http.MethodPost}, "/"+p.name, p.handler)
		case mutation:
			rpc.POST("/"+p.name, p.handler, mutationMiddleware...)
		}
	}
}

func procedures(db *sqlx.DB, hub *ws.Hub, health *handlers.HealthHandler, logger *slog.Logger) []procedure {
	customerHandler := handlers.NewCustomerHandler(db, hub, logger)
	faqHandler := handlers.NewFAQHandler(db, hub, logger)
	templateHandler := handlers.NewMessageTemplateHandler(db, hub, logger)
	appointmentHandler := handlers.NewAppointmentHandler(db, hub, logger)

	return []procedure{
		{"healthcheck", query, health.Healthcheck},

		{"createCustomer", mutation, customerHandler.CreateCustomer},
		{"getCustomers", query, customerHandler.GetCustomers},
		{"getCustomerById", query, customerHandler.GetCustomerByID},
		{"updateCustomer", mutation, customerHandler.UpdateCustomer},
		{"deleteCustomer", mutation, customerHandler.DeleteCustomer},

		{"createFaq", mutation, faqHandler.CreateFAQ},
		{"getFaqs", query, faqHandler.GetFAQs},
		{"getFaqById", query, faqHandler.GetFAQByID},
		{"updateFaq", mutation, faqHandler.UpdateFAQ},
		{"deleteFaq", mutation, faqHandler.DeleteFAQ},

		{"createMessageTemplate", mutation, templateHandler.CreateMessageTemplate},
		{"getMessageTemplates", query, templateHandler.GetMessageTemplates},
		{"getMessageTemplateById", query, templateHandler.GetMessageTemplateByID},
		{"updateMessageTemplate", mutation, templateHandler.UpdateMessageTemplate},
		{"deleteMessageTemplate", mutation, templateHandler.DeleteMessageTemplate},

		{"createAppointment", mutation, appointmentHandler.CreateAppointment},
		{"getAppointments", query, appointmentHandler.GetAppointments},
		{"getAppointmentById", query, appointmentHandler.GetAppointmentByID},
		{"getAppointmentsByCustomer", query, appointmentHandler.GetAppointmentsByCustomer},
		{"updateAppointment", mutation, appointmentHandler.UpdateAppointment},
		{"deleteAppointment", mutation, appointmentHandler.DeleteAppointment},
	}
}
