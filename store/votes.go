package store

import (
	"context"

	"github.com/cppla/quoramock/models"
)

// VoteStore appends votes; votes are never read back, updated or deleted.
type VoteStore struct {
	gw *Gateway
}

// NewVoteStore creates a VoteStore on top of gw.
func NewVoteStore(gw *Gateway) *VoteStore {
	return &VoteStore{gw: gw}
}

// CastQuestionVote records a vote on a question.
func (s *VoteStore) CastQuestionVote(ctx context.Context, questionID uint, vote int) (*models.QuestionVote, error) {
	v := models.QuestionVote{QuestionID: questionID, Vote: vote}
	if err := s.gw.DB(ctx).Create(&v).Error; err != nil {
		return nil, wrap("cast question vote", err)
	}
	return &v, nil
}

// CastAnswerVote records a vote on an answer.
func (s *VoteStore) CastAnswerVote(ctx context.Context, answerID uint, vote int) (*models.AnswerVote, error) {
	v := models.AnswerVote{AnswerID: answerID, Vote: vote}
	if err := s.gw.DB(ctx).Create(&v).Error; err != nil {
		return nil, wrap("cast answer vote", err)
	}
	return &v, nil
}
