package store

import (
	"context"
	"strings"
	"time"

	"github.com/cppla/quoramock/config"
	"github.com/cppla/quoramock/models"
)

// QuestionFilter narrows List. Empty fields are ignored; set fields are AND-ed.
type QuestionFilter struct {
	Title    string
	Category string
}

// Empty reports whether no filter is set.
func (f QuestionFilter) Empty() bool {
	return f.Title == "" && f.Category == ""
}

// QuestionStore runs the statements behind the question routes.
type QuestionStore struct {
	gw *Gateway
}

// NewQuestionStore creates a QuestionStore on top of gw.
func NewQuestionStore(gw *Gateway) *QuestionStore {
	return &QuestionStore{gw: gw}
}

// Create inserts q and fills its generated id and timestamps.
func (s *QuestionStore) Create(ctx context.Context, q *models.Question) error {
	return wrap("create question", s.gw.DB(ctx).Create(q).Error)
}

// List returns questions matching f as case-insensitive substrings, ordered by id.
func (s *QuestionStore) List(ctx context.Context, f QuestionFilter) ([]models.Question, error) {
	query := s.gw.DB(ctx).Model(&models.Question{}).Order("id ASC")
	if f.Title != "" {
		query = query.Where(containsClause(s.gw.Driver(), "title"), containsPattern(f.Title))
	}
	if f.Category != "" {
		query = query.Where(containsClause(s.gw.Driver(), "category"), containsPattern(f.Category))
	}

	questions := make([]models.Question, 0)
	if err := query.Find(&questions).Error; err != nil {
		return nil, wrap("list questions", err)
	}
	return questions, nil
}

// Get loads a single question.
func (s *QuestionStore) Get(ctx context.Context, id uint) (*models.Question, error) {
	var q models.Question
	if err := s.gw.DB(ctx).First(&q, id).Error; err != nil {
		return nil, wrap("get question", err)
	}
	return &q, nil
}

// Exists reports whether the question row is present.
func (s *QuestionStore) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := s.gw.DB(ctx).Model(&models.Question{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, wrap("check question", err)
	}
	return count > 0, nil
}

// Update replaces title, description and category of an existing question.
func (s *QuestionStore) Update(ctx context.Context, id uint, title, description, category string) (*models.Question, error) {
	res := s.gw.DB(ctx).Model(&models.Question{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":       title,
		"description": description,
		"category":    category,
		"updated_at":  time.Now(),
	})
	if res.Error != nil {
		return nil, wrap("update question", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, wrap("update question", ErrNotFound)
	}
	return s.Get(ctx, id)
}

// Delete removes a question; its answers and votes go with it through ON DELETE CASCADE.
func (s *QuestionStore) Delete(ctx context.Context, id uint) error {
	res := s.gw.DB(ctx).Delete(&models.Question{}, id)
	if res.Error != nil {
		return wrap("delete question", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("delete question", ErrNotFound)
	}
	return nil
}

// likeEscape is the LIKE escape character. A backslash would need driver-specific quoting on mysql.
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

// containsPattern turns v into a LIKE pattern matching v literally anywhere in the column.
func containsPattern(v string) string {
	return "%" + likeEscaper.Replace(v) + "%"
}

// containsClause is a case-insensitive substring match on column. Postgres folds case with
// ILIKE under the database collation; mysql and sqlite compare LOWER() of both sides, and
// sqlite's LOWER only folds ASCII letters.
func containsClause(driver, column string) string {
	if driver == config.DriverPostgres {
		return column + " ILIKE ? ESCAPE '" + likeEscape + "'"
	}
	return "LOWER(" + column + ") LIKE LOWER(?) ESCAPE '" + likeEscape + "'"
}
