package services

import (
	"errors"

	"quiz-catalog-backend/internal/models"
	"quiz-catalog-backend/internal/sanitize"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type AnswerInput struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

type QuestionInput struct {
	Text    string        `json:"text"`
	CatID   uint          `json:"cat_id"`
	Answers []AnswerInput `json:"answers"`
}

func (s *QuestionService) List(limit, offset int) ([]models.Question, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	var questions []models.Question
	err := s.db.Preload("Answers").Order("id ASC").Limit(limit).Offset(offset).Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuestionService) ListByCategory(catID uint, limit, offset int) ([]models.Question, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	var questions []models.Question
	err := s.db.Where("cat_id = ?", catID).
		Preload("Answers").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuestionService) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	err := s.db.Preload("Answers").First(&question, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// Create inserts the question and its answers in one transaction. All free
// text is sanitized before it reaches the database.
func (s *QuestionService) Create(input QuestionInput) (*models.Question, error) {
	question := models.Question{
		Text:  sanitize.Text(input.Text),
		CatID: input.CatID,
	}

	tx := s.db.Begin()
	if err := tx.Create(&question).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	for _, a := range input.Answers {
		answer := models.Answer{
			Text:    sanitize.Text(a.Text),
			Correct: a.Correct,
			QID:     question.ID,
		}
		if err := tx.Create(&answer).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	s.db.Preload("Answers").First(&question, question.ID)
	return &question, nil
}

// Update replaces the question's text and category and swaps the whole answer
// set: delete all existing answers, insert the new ones. Tolerates a changed
// answer count across an edit; the transaction keeps the zero-answer window
// invisible.
func (s *QuestionService) Update(id uint, input QuestionInput) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	question.Text = sanitize.Text(input.Text)
	question.CatID = input.CatID

	tx := s.db.Begin()
	if err := tx.Save(&question).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Where("q_id = ?", id).Delete(&models.Answer{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	for _, a := range input.Answers {
		answer := models.Answer{
			Text:    sanitize.Text(a.Text),
			Correct: a.Correct,
			QID:     id,
		}
		if err := tx.Create(&answer).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	question.Answers = nil
	s.db.Preload("Answers").First(&question, id)
	return &question, nil
}

// Delete removes the question and its answers in one transaction.
func (s *QuestionService) Delete(id uint) error {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	tx := s.db.Begin()
	if err := tx.Where("q_id = ?", id).Delete(&models.Answer{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&question).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
