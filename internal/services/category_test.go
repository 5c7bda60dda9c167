package services

import (
	"fmt"
	"testing"

	"quiz-catalog-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Named in-memory database so gorm's pooled connections all see the
	// same store for the duration of the test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Question{}, &models.Answer{}))
	return db
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Science Facts", "science-facts"},
		{"HTML", "html"},
		{"Web  Programming Basics", "web--programming-basics"},
		{"lowercase", "lowercase"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title))
	}
}

func TestCategoryCreate(t *testing.T) {
	s := NewCategoryService(setupTestDB(t))

	cat, err := s.Create("Science Facts")
	require.NoError(t, err)
	assert.NotZero(t, cat.ID)
	assert.Equal(t, "Science Facts", cat.Title)
	assert.Equal(t, "science-facts", cat.Slug)
}

func TestCategoryCreateDuplicateSlug(t *testing.T) {
	s := NewCategoryService(setupTestDB(t))

	first, err := s.Create("Science Facts")
	require.NoError(t, err)

	_, err = s.Create("Science Facts")
	assert.ErrorIs(t, err, ErrDuplicate)

	// First category untouched by the failed create.
	got, err := s.GetBySlug("science-facts")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "Science Facts", got.Title)
}

func TestCategoryGetBySlug(t *testing.T) {
	s := NewCategoryService(setupTestDB(t))

	_, err := s.Create("History")
	require.NoError(t, err)

	cat, err := s.GetBySlug("history")
	require.NoError(t, err)
	assert.Equal(t, "History", cat.Title)

	_, err = s.GetBySlug("unknown-slug")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryGetByID(t *testing.T) {
	s := NewCategoryService(setupTestDB(t))

	created, err := s.Create("History")
	require.NoError(t, err)

	cat, err := s.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "history", cat.Slug)

	_, err = s.GetByID(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryUpdate(t *testing.T) {
	s := NewCategoryService(setupTestDB(t))

	created, err := s.Create("Old Name")
	require.NoError(t, err)

	updated, err := s.Update("New Name", "old-name")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "New Name", updated.Title)
	assert.Equal(t, "new-name", updated.Slug)

	_, err = s.GetBySlug("old-name")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryUpdateMissing(t *testing.T) {
	s := NewCategoryService(setupTestDB(t))

	_, err := s.Update("Whatever Title", "unknown-slug")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryUpdateDuplicateSlug(t *testing.T) {
	s := NewCategoryService(setupTestDB(t))

	_, err := s.Create("First")
	require.NoError(t, err)
	_, err = s.Create("Second")
	require.NoError(t, err)

	_, err = s.Update("First", "second")
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCategoryDelete(t *testing.T) {
	s := NewCategoryService(setupTestDB(t))

	_, err := s.Create("Doomed")
	require.NoError(t, err)

	require.NoError(t, s.Delete("doomed"))

	_, err = s.GetBySlug("doomed")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete("doomed"), ErrNotFound)
}

func TestCategoryDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	cats := NewCategoryService(db)
	questions := NewQuestionService(db)

	cat, err := cats.Create("Science Facts")
	require.NoError(t, err)

	q, err := questions.Create(QuestionInput{
		Text:  "What is HTML?",
		CatID: cat.ID,
		Answers: []AnswerInput{
			{Text: "A markup language", Correct: true},
			{Text: "A language", Correct: false},
		},
	})
	require.NoError(t, err)

	require.NoError(t, cats.Delete("science-facts"))

	_, err = questions.GetByID(q.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var answers int64
	db.Model(&models.Answer{}).Where("q_id = ?", q.ID).Count(&answers)
	assert.Zero(t, answers)
}

func TestCategoryListPagination(t *testing.T) {
	s := NewCategoryService(setupTestDB(t))

	for _, title := range []string{"Aaa Cat", "Bbb Cat", "Ccc Cat"} {
		_, err := s.Create(title)
		require.NoError(t, err)
	}

	page, err := s.List(2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := s.List(10, 2)
	require.NoError(t, err)
	assert.Len(t, rest, 1)
	assert.Equal(t, "ccc-cat", rest[0].Slug)
}
