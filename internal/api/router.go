package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stayloop/booking-api/internal/api/handler"
	"github.com/stayloop/booking-api/internal/api/middleware"
	"github.com/stayloop/booking-api/internal/core/ports"
	"github.com/stayloop/booking-api/internal/core/service"
	"github.com/stayloop/booking-api/internal/infrastructure/config"
	mongodb "github.com/stayloop/booking-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, store service.PhotoStore, provider ports.PaymentProvider, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("booking"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.ClientURL},
		AllowCredentials: true,
	}))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	placeRepo := mongodb.NewPlaceRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	placeService := service.NewPlaceService(placeRepo, log)
	bookingService := service.NewBookingService(bookingRepo, placeRepo, log)
	mediaService := service.NewMediaService(store, nil, log)
	paymentService := service.NewPaymentService(provider, cfg.ClientURL, log)

	authHandler := handler.NewAuthHandler(authService)
	placeHandler := handler.NewPlaceHandler(placeService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	mediaHandler := handler.NewMediaHandler(mediaService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	session := middleware.Session(authService)

	// --- Auth & session routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/profile", authHandler.Profile)
	e.POST("/logout", authHandler.Logout)

	// --- Media ---
	e.POST("/upload-by-link", mediaHandler.UploadByLink)
	e.POST("/upload", mediaHandler.UploadFiles)
	e.Static("/uploads", cfg.UploadDir)

	// --- Places ---
	e.POST("/places", placeHandler.Create, session)
	e.GET("/user-places", placeHandler.ListOwned, session)
	e.GET("/places/:id", placeHandler.Get)
	e.PUT("/places", placeHandler.Update, session)
	e.GET("/places", placeHandler.ListAll)

	// --- Bookings ---
	e.POST("/bookings", bookingHandler.Create, session)
	e.GET("/bookings", bookingHandler.List, session)

	// --- Payments ---
	e.POST("/create-payment-session", paymentHandler.CreateSession)

	// --- Health & metrics ---
	e.GET("/test", healthHandler.Test)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
