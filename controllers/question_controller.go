package controllers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/cppla/quoramock/models"
	"github.com/cppla/quoramock/store"
	"github.com/cppla/quoramock/utils"
)

const (
	maxTitleLength    = 255
	maxCategoryLength = 64
)

// QuestionController manages CRUD operations for questions.
type QuestionController struct {
	questions *store.QuestionStore
}

// NewQuestionController creates a new QuestionController instance.
func NewQuestionController(gw *store.Gateway) *QuestionController {
	return &QuestionController{questions: store.NewQuestionStore(gw)}
}

type questionRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
}

// bindQuestion decodes and validates a question body, answering 400 itself on failure.
func bindQuestion(ctx *gin.Context) (questionRequest, bool) {
	var req questionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40010, "Invalid request data")
		return req, false
	}

	// Values are stored exactly as sent; markup-only or blank values count as missing.
	if !utils.HasText(req.Title) || !utils.HasText(req.Description) || !utils.HasText(req.Category) {
		utils.Error(ctx, http.StatusBadRequest, 40011, "title, description and category are required")
		return req, false
	}
	if utf8.RuneCountInString(req.Title) > maxTitleLength {
		utils.Error(ctx, http.StatusBadRequest, 40012, "Title must be 255 characters or less")
		return req, false
	}
	if utf8.RuneCountInString(req.Category) > maxCategoryLength {
		utils.Error(ctx, http.StatusBadRequest, 40013, "Category must be 64 characters or less")
		return req, false
	}
	return req, true
}

func questionFilter(ctx *gin.Context) store.QuestionFilter {
	return store.QuestionFilter{
		Title:    strings.TrimSpace(ctx.Query("title")),
		Category: strings.TrimSpace(ctx.Query("category")),
	}
}

// CreateQuestion inserts a new question.
func (q *QuestionController) CreateQuestion(ctx *gin.Context) {
	req, ok := bindQuestion(ctx)
	if !ok {
		return
	}

	question := models.Question{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}
	if err := q.questions.Create(ctx.Request.Context(), &question); err != nil {
		storageFailure(ctx, err, questionNotFound, 50010, "failed to create question")
		return
	}

	utils.Created(ctx, gin.H{"question": question})
}

// ListQuestions returns every question, optionally filtered by title and category.
func (q *QuestionController) ListQuestions(ctx *gin.Context) {
	q.list(ctx, questionFilter(ctx))
}

// SearchQuestions is ListQuestions with at least one filter required.
func (q *QuestionController) SearchQuestions(ctx *gin.Context) {
	filter := questionFilter(ctx)
	if filter.Empty() {
		utils.Error(ctx, http.StatusBadRequest, 40014, "title or category query parameter is required")
		return
	}
	q.list(ctx, filter)
}

func (q *QuestionController) list(ctx *gin.Context, filter store.QuestionFilter) {
	questions, err := q.questions.List(ctx.Request.Context(), filter)
	if err != nil {
		storageFailure(ctx, err, questionNotFound, 50011, "failed to list questions")
		return
	}
	utils.Success(ctx, gin.H{"items": questions})
}

// GetQuestion returns a single question.
func (q *QuestionController) GetQuestion(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusNotFound, questionNotFound.code, questionNotFound.message)
		return
	}

	question, err := q.questions.Get(ctx.Request.Context(), id)
	if err != nil {
		storageFailure(ctx, err, questionNotFound, 50012, "failed to load question")
		return
	}
	utils.Success(ctx, gin.H{"question": question})
}

// UpdateQuestion fully replaces the editable fields of a question.
func (q *QuestionController) UpdateQuestion(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusNotFound, questionNotFound.code, questionNotFound.message)
		return
	}
	req, ok := bindQuestion(ctx)
	if !ok {
		return
	}

	question, err := q.questions.Update(ctx.Request.Context(), id, req.Title, req.Description, req.Category)
	if err != nil {
		storageFailure(ctx, err, questionNotFound, 50013, "failed to update question")
		return
	}
	utils.Success(ctx, gin.H{"question": question})
}

// DeleteQuestion removes a question together with its answers and votes.
func (q *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusNotFound, questionNotFound.code, questionNotFound.message)
		return
	}

	if err := q.questions.Delete(ctx.Request.Context(), id); err != nil {
		storageFailure(ctx, err, questionNotFound, 50014, "failed to delete question")
		return
	}
	utils.Success(ctx, gin.H{"message": "Question deleted successfully"})
}
