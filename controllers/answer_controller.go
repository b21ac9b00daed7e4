package controllers

import (
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/cppla/quoramock/models"
	"github.com/cppla/quoramock/store"
	"github.com/cppla/quoramock/utils"
)

// AnswerController manages the answers nested under a question.
type AnswerController struct {
	questions *store.QuestionStore
	answers   *store.AnswerStore
}

// NewAnswerController creates a new AnswerController instance.
func NewAnswerController(gw *store.Gateway) *AnswerController {
	return &AnswerController{
		questions: store.NewQuestionStore(gw),
		answers:   store.NewAnswerStore(gw),
	}
}

// CreateAnswer attaches an answer to an existing question.
func (a *AnswerController) CreateAnswer(ctx *gin.Context) {
	questionID, ok := parseID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusNotFound, questionNotFound.code, questionNotFound.message)
		return
	}

	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "Invalid request data")
		return
	}
	if utf8.RuneCountInString(req.Content) > models.MaxAnswerLength {
		utils.Error(ctx, http.StatusBadRequest, 40021, "Answer must be 300 characters or less")
		return
	}
	if !utils.HasText(req.Content) {
		utils.Error(ctx, http.StatusBadRequest, 40022, "content is required")
		return
	}

	exists, err := a.questions.Exists(ctx.Request.Context(), questionID)
	if err != nil {
		storageFailure(ctx, err, questionNotFound, 50020, "failed to load question")
		return
	}
	if !exists {
		utils.Error(ctx, http.StatusNotFound, questionNotFound.code, questionNotFound.message)
		return
	}

	answer := models.Answer{QuestionID: questionID, Content: req.Content}
	// The question may vanish between the check and the insert; the foreign key reports it as not found.
	if err := a.answers.Create(ctx.Request.Context(), &answer); err != nil {
		storageFailure(ctx, err, questionNotFound, 50021, "failed to create answer")
		return
	}
	utils.Created(ctx, gin.H{"answer": answer})
}

// ListAnswers returns the answers of a question, oldest first.
func (a *AnswerController) ListAnswers(ctx *gin.Context) {
	questionID, ok := parseID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusNotFound, questionNotFound.code, questionNotFound.message)
		return
	}

	exists, err := a.questions.Exists(ctx.Request.Context(), questionID)
	if err != nil {
		storageFailure(ctx, err, questionNotFound, 50022, "failed to load question")
		return
	}
	if !exists {
		utils.Error(ctx, http.StatusNotFound, questionNotFound.code, questionNotFound.message)
		return
	}

	answers, err := a.answers.ListByQuestion(ctx.Request.Context(), questionID)
	if err != nil {
		storageFailure(ctx, err, questionNotFound, 50023, "failed to list answers")
		return
	}
	utils.Success(ctx, gin.H{"items": answers})
}

// DeleteAnswers removes every answer of a question.
func (a *AnswerController) DeleteAnswers(ctx *gin.Context) {
	questionID, ok := parseID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusNotFound, 40420, "No answers found for this question")
		return
	}

	deleted, err := a.answers.DeleteByQuestion(ctx.Request.Context(), questionID)
	if err != nil {
		storageFailure(ctx, err, questionNotFound, 50024, "failed to delete answers")
		return
	}
	if deleted == 0 {
		utils.Error(ctx, http.StatusNotFound, 40420, "No answers found for this question")
		return
	}
	utils.Success(ctx, gin.H{"message": "Answers deleted successfully", "deleted": deleted})
}
