package services

import (
	"errors"
	"strings"

	"quiz-catalog-backend/internal/models"

	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// Slugify derives the URL identifier from a category title: lower-cased,
// spaces replaced with hyphens. Uniqueness is left to the slug index.
func Slugify(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "-")
}

func (s *CategoryService) List(limit, offset int) ([]models.Category, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	var categories []models.Category
	err := s.db.Order("id ASC").Limit(limit).Offset(offset).Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) GetBySlug(slug string) (*models.Category, error) {
	var cat models.Category
	err := s.db.Where("slug = ?", slug).First(&cat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *CategoryService) GetByID(id uint) (*models.Category, error) {
	var cat models.Category
	err := s.db.First(&cat, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *CategoryService) Create(title string) (*models.Category, error) {
	cat := models.Category{
		Title: title,
		Slug:  Slugify(title),
	}
	err := s.db.Create(&cat).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// Update renames the category found under prevSlug and re-derives its slug
// from the new title.
func (s *CategoryService) Update(title, prevSlug string) (*models.Category, error) {
	var cat models.Category
	if err := s.db.Where("slug = ?", prevSlug).First(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	cat.Title = title
	cat.Slug = Slugify(title)
	err := s.db.Save(&cat).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// Delete removes the category and everything under it: the category's
// questions and their answers go in the same transaction.
func (s *CategoryService) Delete(slug string) error {
	var cat models.Category
	if err := s.db.Where("slug = ?", slug).First(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	tx := s.db.Begin()
	if err := tx.Where("q_id IN (SELECT id FROM questions WHERE cat_id = ?)", cat.ID).Delete(&models.Answer{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("cat_id = ?", cat.ID).Delete(&models.Question{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&cat).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
