package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ohler55/ojg/oj"

	"txnconsumer/pkg/logger"
)

func (s *Server) handleCreate(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read request body"})
		return
	}

	doc, err := oj.Parse(payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON request"})
		return
	}

	if err := s.gate.Validate(doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.svc.Persist(c.Request.Context(), payload); err != nil {
		logger.Errorf("persist failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist transaction"})
		return
	}

	c.String(http.StatusCreated, "Transaction Created Successfully")
}
