package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	contractx "github.com/premierbarber/barber-crew/agent/contract"
)

// Config holds the HTTP listener settings.
type Config struct {
	Addr  string `split_words:"true" default:":8080"`
	Debug bool   `split_words:"true" default:"false"`
}

// RequestHandler runs one customer request end to end and returns the
// final reply text. Degraded replies are still plain text, never errors.
type RequestHandler interface {
	Run(ctx context.Context, req contractx.Request) string
}

type Server struct {
	cfg     Config
	crew    RequestHandler
	router  *gin.Engine
	handler *requestHandler
}

type requestHandler struct {
	crew RequestHandler
}

type requestBody struct {
	CustomerName string            `json:"customer_name"`
	Request      string            `json:"request" binding:"required"`
	Details      map[string]string `json:"details"`
}

type requestResponse struct {
	RequestID string `json:"request_id"`
	Result    string `json:"result"`
}

func New(cfg Config, crew RequestHandler) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:     cfg,
		crew:    crew,
		handler: &requestHandler{crew: crew},
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	v1.POST("/requests", s.handler.handleRequest)

	return r
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Run() error {
	log.Info().Str("addr", s.cfg.Addr).Msg("http server listening")
	return s.router.Run(s.cfg.Addr)
}

func (h *requestHandler) handleRequest(c *gin.Context) {
	var body requestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	requestID := uuid.NewString()
	req := contractx.Request{
		CustomerName: strings.TrimSpace(body.CustomerName),
		Text:         body.Request,
		Details:      body.Details,
	}

	log.Info().
		Str("request_id", requestID).
		Str("customer_name", req.CustomerName).
		Msg("handling customer request")

	result := h.crew.Run(c.Request.Context(), req)

	c.JSON(http.StatusOK, requestResponse{
		RequestID: requestID,
		Result:    result,
	})
}
