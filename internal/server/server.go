// Package server is the HTTP boundary: it accepts transaction payloads,
// runs the top-level payload validation gate and hands the body to the
// ingestion core.
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TransactionService is what the HTTP layer needs from the ingestion
// core.
type TransactionService interface {
	Persist(ctx context.Context, payload []byte) error
}

type Server struct {
	svc    TransactionService
	gate   PayloadValidator
	router *gin.Engine
}

func NewServer(svc TransactionService) *Server {
	router := gin.Default()

	s := &Server{svc: svc, router: router}
	router.POST("/api/transactions", s.handleCreate)
	return s
}

// Run starts the HTTP server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router exposes the handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
