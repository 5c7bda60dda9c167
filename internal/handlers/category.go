package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"quiz-catalog-backend/internal/services"
	"quiz-catalog-backend/internal/validation"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categories *services.CategoryService
}

func NewCategoryHandler(categories *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// ListCategories godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Param        limit query int false "Page size" default(10)
// @Param        offset query int false "Page offset" default(0)
// @Success      200 {array} Category
// @Failure      500 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	limit, offset := listParams(c)

	categories, err := h.categories.List(limit, offset)
	if err != nil {
		log.Printf("list categories: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request body validation.CategoryInput true "Category data"
// @Success      201 {object} Category
// @Failure      400 {object} ErrorResponse
// @Router       /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req validation.CategoryInput
	if !bindJSON(c, &req) {
		return
	}

	if fes := validation.Category(req); fes != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid data", Errors: fes})
		return
	}

	cat, err := h.categories.Create(req.Title)
	if errors.Is(err, services.ErrDuplicate) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("Category with name %q already exists", req.Title),
		})
		return
	}
	if err != nil {
		log.Printf("create category: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, cat)
}

// GetCategory godoc
// @Summary      Get a category by slug
// @Tags         categories
// @Produce      json
// @Param        slug path string true "Category slug"
// @Success      200 {object} Category
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} MessageResponse
// @Router       /categories/{slug} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	slug := c.Param("slug")

	if fes := validation.Slug(slug); fes != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid search", Errors: fes})
		return
	}

	cat, err := h.categories.GetBySlug(slug)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, MessageResponse{Message: "not found"})
		return
	}
	if err != nil {
		log.Printf("get category %q: %v", slug, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, cat)
}

// UpdateCategory godoc
// @Summary      Rename a category
// @Description  Updates the title and re-derives the slug.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        slug path string true "Current category slug"
// @Param        request body validation.CategoryInput true "Category data"
// @Success      200 {object} Category
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} MessageResponse
// @Router       /categories/{slug} [patch]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	prevSlug := c.Param("slug")

	if fes := validation.Slug(prevSlug); fes != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid search", Errors: fes})
		return
	}

	var req validation.CategoryInput
	if !bindJSON(c, &req) {
		return
	}

	if fes := validation.Category(req); fes != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid data", Errors: fes})
		return
	}

	cat, err := h.categories.Update(req.Title, prevSlug)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, MessageResponse{Message: "Category not found"})
		return
	}
	if errors.Is(err, services.ErrDuplicate) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("Category with name %q already exists", req.Title),
		})
		return
	}
	if err != nil {
		log.Printf("update category %q: %v", prevSlug, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, cat)
}

// DeleteCategory godoc
// @Summary      Delete a category
// @Description  Removes the category, its questions and their answers.
// @Tags         categories
// @Param        slug path string true "Category slug"
// @Success      204
// @Failure      404 {object} MessageResponse
// @Router       /categories/{slug} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	slug := c.Param("slug")

	err := h.categories.Delete(slug)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, MessageResponse{Message: "Category not found"})
		return
	}
	if err != nil {
		log.Printf("delete category %q: %v", slug, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}
