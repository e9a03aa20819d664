package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/algolens/algolens/api/schemas"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "algolens"})
}

// handleAnalyze runs the full pipeline. Only transport-level problems
// (malformed JSON, failed validation) produce a non-200 response; the
// analysis core itself is total and cannot fail.
func (s *Server) handleAnalyze(c *gin.Context) {
	var req schemas.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	resp := s.analyzer.Analyze(c.Request.Context(), req)
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handlePatterns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"patterns": s.analyzer.Patterns()})
}

// bindErrorMessage flattens validator errors into a single readable line;
// everything else is reported as a malformed request body.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, len(verrs))
		for i, fe := range verrs {
			msgs[i] = fmt.Sprintf("field %q failed validation rule %q", fe.Field(), fe.Tag())
		}
		return strings.Join(msgs, "; ")
	}
	return "malformed request body"
}
