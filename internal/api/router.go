package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/storelane/commerce-api/docs"
	"github.com/storelane/commerce-api/internal/api/handler"
	"github.com/storelane/commerce-api/internal/api/middleware"
	"github.com/storelane/commerce-api/internal/core/ports"
)

// Deps carries everything the router needs; services are constructed by the
// caller so the transport layer stays wiring-free.
type Deps struct {
	Registration ports.RegistrationService
	Auth         ports.AuthService
	Orders       ports.OrderService
	Chat         ports.ChatService

	Mongo     *mongo.Database
	Redis     *redis.Client // nil when the memory staging store is in use
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Registration, deps.Auth)
	productHandler := handler.NewProductHandler(deps.Orders)
	orderHandler := handler.NewOrderHandler(deps.Orders)
	chatHandler := handler.NewChatHandler(deps.Chat)
	profileHandler := handler.NewProfileHandler(deps.Auth, deps.Orders)

	// --- Public routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/verify_otp", authHandler.VerifyOTP)
	e.POST("/api/login", authHandler.Login)
	e.GET("/api/products", productHandler.List)

	// --- Protected routes ---
	authed := e.Group("/api", middleware.Auth(deps.JWTSecret))
	authed.POST("/order", orderHandler.Create)
	authed.GET("/order/:id", orderHandler.Get)
	authed.POST("/chat", chatHandler.Chat)
	authed.GET("/profile", profileHandler.Get)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
