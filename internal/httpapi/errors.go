package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/domain"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// writeError is the only place where errors become HTTP statuses. Anything
// that is not a domain error is logged and answered with a generic 500.
func (s *Server) writeError(c *gin.Context, err error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		if status, ok := statusByKind[domainErr.Kind]; ok {
			c.JSON(status, errorResponse{Error: domainErr.Message})
			return
		}
	}

	s.log.Error("request failed",
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.String("route", c.FullPath()),
		zap.Error(err))

	c.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
}

var statusByKind = map[domain.ErrorKind]int{
	domain.KindValidation:   http.StatusBadRequest,
	domain.KindNotFound:     http.StatusNotFound,
	domain.KindIllegalState: http.StatusUnprocessableEntity,
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: message})
}
