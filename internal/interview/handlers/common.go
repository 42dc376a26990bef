package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	e "github.com/nkove/interviewd/internal/interview/errors"
)

// writeError translates module errors to HTTP statuses. Business-rule
// rejections map to 409 so clients can distinguish them from bad input
// and missing resources.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, e.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, e.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, e.ErrDuplicateID),
		errors.Is(err, e.ErrInactiveEntity),
		errors.Is(err, e.ErrInactiveInterview),
		errors.Is(err, e.ErrIncompatibleCharacter),
		errors.Is(err, e.ErrInvalidTransition):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// pathID parses the :id path parameter, replying 400 on malformed ids.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
