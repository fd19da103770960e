package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/photostrip-backend/internal/pkg/httputil"
)

// uuidParam parses a path parameter, answering 400 when it is malformed.
func uuidParam(c *gin.Context, name, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid "+what+" id")
		return uuid.Nil, false
	}
	return id, true
}
