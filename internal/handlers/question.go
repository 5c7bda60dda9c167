package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"quiz-catalog-backend/internal/services"
	"quiz-catalog-backend/internal/validation"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questions  *services.QuestionService
	categories *services.CategoryService
}

func NewQuestionHandler(questions *services.QuestionService, categories *services.CategoryService) *QuestionHandler {
	return &QuestionHandler{questions: questions, categories: categories}
}

func toQuestionInput(req validation.QuestionInput) services.QuestionInput {
	input := services.QuestionInput{
		Text:  req.Text,
		CatID: *req.CatID,
	}
	for _, a := range req.Answers {
		input.Answers = append(input.Answers, services.AnswerInput{
			Text:    a.Text,
			Correct: *a.Correct,
		})
	}
	return input
}

// ListQuestions godoc
// @Summary      List questions with their answers
// @Tags         questions
// @Produce      json
// @Param        limit query int false "Page size" default(10)
// @Param        offset query int false "Page offset" default(0)
// @Success      200 {array} Question
// @Failure      500 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	limit, offset := listParams(c)

	questions, err := h.questions.List(limit, offset)
	if err != nil {
		log.Printf("list questions: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, questions)
}

// CreateQuestion godoc
// @Summary      Create a question with its answers
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body validation.QuestionInput true "Question data"
// @Success      201 {object} Question
// @Failure      400 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req validation.QuestionInput
	if !bindJSON(c, &req) {
		return
	}

	if fes := validation.Question(req); fes != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid data", Errors: fes})
		return
	}

	if _, err := h.categories.GetByID(*req.CatID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusBadRequest, MessageResponse{Message: "Category not found in database"})
			return
		}
		log.Printf("check category %d: %v", *req.CatID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	question, err := h.questions.Create(toQuestionInput(req))
	if err != nil {
		log.Printf("create question: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, question)
}

// ListQuestionsByCategory godoc
// @Summary      List questions in a category
// @Tags         questions
// @Produce      json
// @Param        cat_id path int true "Category ID"
// @Param        limit query int false "Page size" default(10)
// @Param        offset query int false "Page offset" default(0)
// @Success      200 {array} Question
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} MessageResponse
// @Router       /questions/{cat_id} [get]
func (h *QuestionHandler) ListQuestionsByCategory(c *gin.Context) {
	catID, err := strconv.ParseUint(c.Param("cat_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid category ID, must be a number"})
		return
	}

	if _, err := h.categories.GetByID(uint(catID)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, MessageResponse{Message: "Category not found in database"})
			return
		}
		log.Printf("check category %d: %v", catID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	limit, offset := listParams(c)
	questions, err := h.questions.ListByCategory(uint(catID), limit, offset)
	if err != nil {
		log.Printf("list questions for category %d: %v", catID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, questions)
}

// GetQuestion godoc
// @Summary      Get a question by id
// @Tags         questions
// @Produce      json
// @Param        question_id path int true "Question ID"
// @Success      200 {object} Question
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} MessageResponse
// @Router       /question/{question_id} [get]
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("question_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid question ID, must be a number"})
		return
	}

	question, err := h.questions.GetByID(uint(id))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, MessageResponse{Message: "not found"})
		return
	}
	if err != nil {
		log.Printf("get question %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, question)
}

// UpdateQuestion godoc
// @Summary      Update a question
// @Description  Replaces the question's text, category and entire answer set.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        question_id path int true "Question ID"
// @Param        request body validation.QuestionInput true "Question data"
// @Success      200 {object} Question
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} MessageResponse
// @Router       /question/{question_id} [patch]
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("question_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid question ID, must be a number"})
		return
	}

	var req validation.QuestionInput
	if !bindJSON(c, &req) {
		return
	}

	if fes := validation.Question(req); fes != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid data", Errors: fes})
		return
	}

	if _, err := h.categories.GetByID(*req.CatID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, MessageResponse{Message: "Category not found in database"})
			return
		}
		log.Printf("check category %d: %v", *req.CatID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	question, err := h.questions.Update(uint(id), toQuestionInput(req))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, MessageResponse{Message: "Question not found"})
		return
	}
	if err != nil {
		log.Printf("update question %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary      Delete a question and its answers
// @Tags         questions
// @Param        question_id path int true "Question ID"
// @Success      204
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} MessageResponse
// @Router       /question/{question_id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("question_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid question ID, must be a number"})
		return
	}

	err = h.questions.Delete(uint(id))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, MessageResponse{Message: "Question not found"})
		return
	}
	if err != nil {
		log.Printf("delete question %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}
