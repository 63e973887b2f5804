package router

import (
	"github.com/gin-gonic/gin"

	"github.com/noteshare/noteshare-server/internal/api/http/handler"
	"github.com/noteshare/noteshare-server/internal/api/http/middleware"
	"github.com/noteshare/noteshare-server/internal/logger"
)

// Router wires handlers and middleware into a gin engine.
type Router struct {
	authHandler    *handler.Auth
	noteHandler    *handler.Note
	authMiddleware *middleware.Authenticate
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authHandler *handler.Auth,
	noteHandler *handler.Note,
	authMiddleware *middleware.Authenticate,
	logger *logger.Logger,
) *Router {
	return &Router{
		authHandler:    authHandler,
		noteHandler:    noteHandler,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

// Register builds the engine with logging and session resolution applied
// to every route. Authorization stays in the handlers.
func (r *Router) Register() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.NewLogging(r.logger).Handle)
	engine.Use(r.authMiddleware.Handle)

	api := engine.Group("/api")
	{
		api.POST("/session", r.authHandler.Login)
		api.DELETE("/session", r.authHandler.Logout)
		api.GET("/session", r.authHandler.Current)

		api.GET("/classes/:classNumber/notes", r.noteHandler.List)
		api.POST("/notes", r.noteHandler.Upload)
	}

	return engine
}
