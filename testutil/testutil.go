// Package testutil provides an in-memory store and fixtures for package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cppla/quoramock/config"
	"github.com/cppla/quoramock/models"
	"github.com/cppla/quoramock/store"
)

// memoryDSN keeps one shared in-memory database per connection with foreign keys enforced.
const memoryDSN = "file::memory:?_pragma=foreign_keys(1)"

// NewGateway opens a migrated in-memory sqlite gateway that is closed when t ends.
// The pool holds exactly one connection so every statement sees the same database.
func NewGateway(t testing.TB) *store.Gateway {
	t.Helper()

	gw, err := store.Open(config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		URL:          memoryDSN,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = gw.Close() })

	require.NoError(t, gw.Migrate())
	return gw
}

// CreateQuestion inserts a question directly through the store.
func CreateQuestion(t testing.TB, gw *store.Gateway, title, description, category string) models.Question {
	t.Helper()

	q := models.Question{Title: title, Description: description, Category: category}
	require.NoError(t, store.NewQuestionStore(gw).Create(context.Background(), &q))
	return q
}

// CreateAnswer inserts an answer under questionID.
func CreateAnswer(t testing.TB, gw *store.Gateway, questionID uint, content string) models.Answer {
	t.Helper()

	a := models.Answer{QuestionID: questionID, Content: content}
	require.NoError(t, store.NewAnswerStore(gw).Create(context.Background(), &a))
	return a
}

// Count returns the number of rows in model's table.
func Count(t testing.TB, gw *store.Gateway, model interface{}) int64 {
	t.Helper()

	var n int64
	require.NoError(t, gw.DB(context.Background()).Model(model).Count(&n).Error)
	return n
}
