package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cppla/quoramock/models"
	"github.com/cppla/quoramock/store"
	"github.com/cppla/quoramock/utils"
)

// VoteController records up and down votes on questions and answers.
type VoteController struct {
	questions *store.QuestionStore
	answers   *store.AnswerStore
	votes     *store.VoteStore
}

// NewVoteController creates a new VoteController instance.
func NewVoteController(gw *store.Gateway) *VoteController {
	return &VoteController{
		questions: store.NewQuestionStore(gw),
		answers:   store.NewAnswerStore(gw),
		votes:     store.NewVoteStore(gw),
	}
}

// voteTarget describes the parent a vote is cast on.
type voteTarget struct {
	notFound notFoundReply
	exists   func(ctx context.Context, id uint) (bool, error)
	cast     func(ctx context.Context, id uint, vote int) (interface{}, error)
}

// VoteQuestion records a vote on a question.
func (v *VoteController) VoteQuestion(ctx *gin.Context) {
	v.castVote(ctx, voteTarget{
		notFound: questionNotFound,
		exists:   v.questions.Exists,
		cast: func(c context.Context, id uint, vote int) (interface{}, error) {
			return v.votes.CastQuestionVote(c, id, vote)
		},
	})
}

// VoteAnswer records a vote on an answer.
func (v *VoteController) VoteAnswer(ctx *gin.Context) {
	v.castVote(ctx, voteTarget{
		notFound: answerNotFound,
		exists:   v.answers.Exists,
		cast: func(c context.Context, id uint, vote int) (interface{}, error) {
			return v.votes.CastAnswerVote(c, id, vote)
		},
	})
}

func (v *VoteController) castVote(ctx *gin.Context, target voteTarget) {
	id, ok := parseID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusNotFound, target.notFound.code, target.notFound.message)
		return
	}

	var req struct {
		Vote *int `json:"vote" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40030, "Invalid request data")
		return
	}
	if !models.ValidVote(*req.Vote) {
		utils.Error(ctx, http.StatusBadRequest, 40031, "Invalid vote value")
		return
	}

	exists, err := target.exists(ctx.Request.Context(), id)
	if err != nil {
		storageFailure(ctx, err, target.notFound, 50030, "failed to load vote target")
		return
	}
	if !exists {
		utils.Error(ctx, http.StatusNotFound, target.notFound.code, target.notFound.message)
		return
	}

	vote, err := target.cast(ctx.Request.Context(), id, *req.Vote)
	if err != nil {
		storageFailure(ctx, err, target.notFound, 50031, "failed to record vote")
		return
	}
	utils.Success(ctx, gin.H{"vote": vote})
}
