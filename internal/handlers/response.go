package handler

import (
	"net/http"
	"strconv"

	"invoice-manager-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// parseID reads an integer id path parameter, answering 400 itself when the
// value is not a positive integer.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// respondError maps a domain error to its HTTP status. Anything that is not a
// DomainError is an infrastructure failure and surfaces as a 500.
func respondError(c *gin.Context, err error) {
	de, ok := err.(*domain.DomainError)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch de.Code {
	case domain.CodeValidation, domain.CodeReferenceNotFound:
		status = http.StatusBadRequest
	case domain.CodeNotFound:
		status = http.StatusNotFound
	case domain.CodeConflict:
		status = http.StatusConflict
	}

	body := gin.H{"error": de.Message, "code": de.Code}
	if len(de.Fields) > 0 {
		body["fields"] = de.Fields
	}
	c.JSON(status, body)
}
