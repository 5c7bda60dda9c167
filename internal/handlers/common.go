package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"quiz-catalog-backend/internal/models"
	"quiz-catalog-backend/internal/validation"

	"github.com/gin-gonic/gin"
)

// Type aliases so swag can resolve models in annotations.
type Category = models.Category
type Question = models.Question

type ErrorResponse struct {
	Error  string                 `json:"error" example:"something went wrong"`
	Errors validation.FieldErrors `json:"errors,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message" example:"not found"`
}

// bindJSON decodes the request body into dst and writes the 400 response
// itself on failure: malformed JSON is "invalid json", a type mismatch on a
// known field is "invalid data". Returns false if the response was written.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  "invalid data",
			Errors: validation.FieldErrors{field: {fmt.Sprintf("must be of type %s", typeErr.Type)}},
		})
		return false
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
	return false
}

// listParams reads the optional limit/offset query parameters, falling back
// to the defaults (10, 0) on anything unparseable.
func listParams(c *gin.Context) (limit, offset int) {
	limit = 10
	offset = 0
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}
