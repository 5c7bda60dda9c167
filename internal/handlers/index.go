package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Route struct {
	Href    string   `json:"href"`
	Methods []string `json:"methods"`
}

// Index godoc
// @Summary      API route index
// @Tags         index
// @Produce      json
// @Success      200 {array} Route
// @Router       / [get]
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, []Route{
		{Href: "/categories", Methods: []string{"GET", "POST"}},
		{Href: "/categories/:slug", Methods: []string{"GET", "PATCH", "DELETE"}},
		{Href: "/questions", Methods: []string{"GET", "POST"}},
		{Href: "/questions/:cat_id", Methods: []string{"GET"}},
		{Href: "/question/:question_id", Methods: []string{"GET", "PATCH", "DELETE"}},
	})
}
