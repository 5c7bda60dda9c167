package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quiz-catalog-backend/internal/models"
	"quiz-catalog-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Question{}, &models.Answer{}))

	categoryService := services.NewCategoryService(db)
	questionService := services.NewQuestionService(db)
	categoryHandler := NewCategoryHandler(categoryService)
	questionHandler := NewQuestionHandler(questionService, categoryService)

	r := gin.New()
	r.GET("/", Index)
	r.GET("/categories", categoryHandler.ListCategories)
	r.POST("/categories", categoryHandler.CreateCategory)
	r.GET("/categories/:slug", categoryHandler.GetCategory)
	r.PATCH("/categories/:slug", categoryHandler.UpdateCategory)
	r.DELETE("/categories/:slug", categoryHandler.DeleteCategory)
	r.GET("/questions", questionHandler.ListQuestions)
	r.POST("/questions", questionHandler.CreateQuestion)
	r.GET("/questions/:cat_id", questionHandler.ListQuestionsByCategory)
	r.GET("/question/:question_id", questionHandler.GetQuestion)
	r.PATCH("/question/:question_id", questionHandler.UpdateQuestion)
	r.DELETE("/question/:question_id", questionHandler.DeleteQuestion)
	return r, db
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIndexRoute(t *testing.T) {
	r, _ := setupRouter(t)

	w := do(t, r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var routes []Route
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &routes))
	assert.NotEmpty(t, routes)
	assert.Equal(t, "/categories", routes[0].Href)
}

func TestCreateCategoryEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	w := do(t, r, http.MethodPost, "/categories", `{"title":"Science Facts"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var cat models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cat))
	assert.NotZero(t, cat.ID)
	assert.Equal(t, "Science Facts", cat.Title)
	assert.Equal(t, "science-facts", cat.Slug)

	// Same title again collides on the derived slug.
	w = do(t, r, http.MethodPost, "/categories", `{"title":"Science Facts"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "already exists")
}

func TestCreateCategoryInvalidJSON(t *testing.T) {
	r, _ := setupRouter(t)

	w := do(t, r, http.MethodPost, "/categories", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid json", resp.Error)
}

func TestCreateCategoryInvalidData(t *testing.T) {
	r, db := setupRouter(t)

	w := do(t, r, http.MethodPost, "/categories", `{"title":"ab"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid data", resp.Error)
	assert.NotEmpty(t, resp.Errors["title"])

	// No write happened.
	var count int64
	db.Model(&models.Category{}).Count(&count)
	assert.Zero(t, count)
}

func TestListCategories(t *testing.T) {
	r, _ := setupRouter(t)

	do(t, r, http.MethodPost, "/categories", `{"title":"Science Facts"}`)
	do(t, r, http.MethodPost, "/categories", `{"title":"History"}`)

	w := do(t, r, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, w.Code)

	var cats []models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cats))
	assert.Len(t, cats, 2)
}

func TestGetCategory(t *testing.T) {
	r, _ := setupRouter(t)

	do(t, r, http.MethodPost, "/categories", `{"title":"Science Facts"}`)

	w := do(t, r, http.MethodGet, "/categories/science-facts", "")
	require.Equal(t, http.StatusOK, w.Code)

	var cat models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cat))
	assert.Equal(t, "Science Facts", cat.Title)

	w = do(t, r, http.MethodGet, "/categories/unknown-slug", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Slug below the minimum length is rejected before lookup.
	w = do(t, r, http.MethodGet, "/categories/ab", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCategory(t *testing.T) {
	r, _ := setupRouter(t)

	do(t, r, http.MethodPost, "/categories", `{"title":"Old Name"}`)

	w := do(t, r, http.MethodPatch, "/categories/old-name", `{"title":"New Name"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var cat models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cat))
	assert.Equal(t, "New Name", cat.Title)
	assert.Equal(t, "new-name", cat.Slug)

	w = do(t, r, http.MethodPatch, "/categories/unknown-slug", `{"title":"New Name"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodPatch, "/categories/new-name", `{"title":"ab"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteCategory(t *testing.T) {
	r, _ := setupRouter(t)

	do(t, r, http.MethodPost, "/categories", `{"title":"Doomed"}`)

	w := do(t, r, http.MethodDelete, "/categories/doomed", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(t, r, http.MethodDelete, "/categories/unknown-slug", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
