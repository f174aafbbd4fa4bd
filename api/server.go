package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Server serves HTTP requests for the LSMC pricer service.
type Server struct {
	apiKey string
	logger zerolog.Logger
	router *gin.Engine
}

// NewServer creates a new HTTP server and sets up routing. Requests must
// carry apiKey as a bearer token.
func NewServer(apiKey string, logger zerolog.Logger) *Server {
	server := &Server{apiKey: apiKey, logger: logger}
	server.setupRouter()
	return server
}

func (server *Server) setupRouter() {
	router := gin.Default()

	authRoutes := router.Group("/v1").Use(server.authentication)
	authRoutes.POST("/pricer", server.pricer)
	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
