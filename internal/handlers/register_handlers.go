package handlers

import (
	"fmt"

	"github.com/SscSPs/healthcare_assistant_app/cmd/docs"
	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	portssvc "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/services"
	"github.com/SscSPs/healthcare_assistant_app/internal/dto"
	"github.com/SscSPs/healthcare_assistant_app/internal/middleware"
	"github.com/SscSPs/healthcare_assistant_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidations(v); err != nil {
			return fmt.Errorf("failed to register validations: %w", err)
		}
	}

	authLimiter, err := middleware.NewMemoryLimiter(cfg.AuthRateLimit)
	if err != nil {
		return err
	}
	chatLimiter, err := middleware.NewMemoryLimiter(cfg.ChatRateLimit)
	if err != nil {
		return err
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, middleware.RateLimit(authLimiter), services)

	if err := setupAPIV1Routes(r, cfg, services, middleware.RateLimit(chatLimiter)); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	chatLimit gin.HandlerFunc,
) error {
	loc, err := domain.LoadLocation(cfg.DefaultTimezone)
	if err != nil {
		return err
	}

	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerSessionRoutes(v1, chatLimit, services.Session, services.Assistant)
	registerAppointmentRoutes(v1, services.Appointment, cfg.Doctors)
	registerReminderRoutes(v1, services.Reminder, loc)
	registerProfileRoutes(v1, services.Profile, cfg.MaxPictureBytes)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
