package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quicknote/notes-api/internal/api/handler"
	"github.com/quicknote/notes-api/internal/api/middleware"
	"github.com/quicknote/notes-api/internal/core/service"
	"github.com/quicknote/notes-api/internal/core/token"
	"github.com/quicknote/notes-api/internal/infrastructure/config"
	mongodb "github.com/quicknote/notes-api/internal/infrastructure/db/mongo"
	redisdb "github.com/quicknote/notes-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("notes"))

	// --- Dependencies ---
	issuer := token.NewIssuer(cfg.JWTSecret, token.DefaultTTL)

	accountRepo := mongodb.NewAccountRepository(db)
	authService := service.NewAuthService(accountRepo, issuer, cfg.BcryptCost, log)
	authHandler := handler.NewAuthHandler(authService)

	noteRepo := mongodb.NewNoteRepository(db)
	idemStore := redisdb.NewIdempotencyStore(rdb)
	noteService := service.NewNoteService(noteRepo, idemStore, log)
	noteHandler := handler.NewNoteHandler(noteService)

	registerRoutes(e, authHandler, noteHandler, middleware.Auth(issuer))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// registerRoutes mounts the user and note route groups. The auth gate wraps
// the whole notes group; individual note handlers never decide whether a
// caller is authenticated.
func registerRoutes(e *echo.Echo, authHandler *handler.AuthHandler, noteHandler *handler.NoteHandler, authGate echo.MiddlewareFunc) {
	user := e.Group("/api/user")
	user.POST("/signup", authHandler.Signup)
	user.POST("/login", authHandler.Login)

	notes := e.Group("/api/notes", authGate)
	notes.GET("", noteHandler.List)
	notes.POST("", noteHandler.Create)
	notes.GET("/search", noteHandler.Search)
	notes.PUT("/:id", noteHandler.Update)
	notes.DELETE("/:id", noteHandler.Delete)
}
