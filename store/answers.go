package store

import (
	"context"

	"github.com/cppla/quoramock/models"
)

// AnswerStore runs the statements behind the nested answer routes.
type AnswerStore struct {
	gw *Gateway
}

// NewAnswerStore creates an AnswerStore on top of gw.
func NewAnswerStore(gw *Gateway) *AnswerStore {
	return &AnswerStore{gw: gw}
}

// Create inserts an answer. A missing parent question yields ErrNotFound.
func (s *AnswerStore) Create(ctx context.Context, a *models.Answer) error {
	return wrap("create answer", s.gw.DB(ctx).Create(a).Error)
}

// ListByQuestion returns every answer of a question, oldest first.
func (s *AnswerStore) ListByQuestion(ctx context.Context, questionID uint) ([]models.Answer, error) {
	answers := make([]models.Answer, 0)
	if err := s.gw.DB(ctx).Where("question_id = ?", questionID).Order("id ASC").Find(&answers).Error; err != nil {
		return nil, wrap("list answers", err)
	}
	return answers, nil
}

// DeleteByQuestion removes every answer of a question and returns how many rows went.
func (s *AnswerStore) DeleteByQuestion(ctx context.Context, questionID uint) (int64, error) {
	res := s.gw.DB(ctx).Where("question_id = ?", questionID).Delete(&models.Answer{})
	if res.Error != nil {
		return 0, wrap("delete answers", res.Error)
	}
	return res.RowsAffected, nil
}

// Exists reports whether the answer row is present.
func (s *AnswerStore) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := s.gw.DB(ctx).Model(&models.Answer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, wrap("check answer", err)
	}
	return count > 0, nil
}
