package store_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppla/quoramock/models"
	"github.com/cppla/quoramock/store"
	"github.com/cppla/quoramock/testutil"
)

func TestQuestionStore_CreateAndGet(t *testing.T) {
	gw := testutil.NewGateway(t)
	qs := store.NewQuestionStore(gw)
	ctx := context.Background()

	q := models.Question{Title: "What is a goroutine?", Description: "Explain briefly.", Category: "Go"}
	require.NoError(t, qs.Create(ctx, &q))
	require.NotZero(t, q.ID)

	got, err := qs.Get(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, q.Title, got.Title)
	assert.Equal(t, q.Description, got.Description)
	assert.Equal(t, q.Category, got.Category)

	_, err = qs.Get(ctx, q.ID+100)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestQuestionStore_ListFilters(t *testing.T) {
	gw := testutil.NewGateway(t)
	qs := store.NewQuestionStore(gw)
	ctx := context.Background()

	first := testutil.CreateQuestion(t, gw, "Rust ownership", "Borrowing rules", "Lang")
	second := testutil.CreateQuestion(t, gw, "Go modules", "Versioning", "Tooling")
	third := testutil.CreateQuestion(t, gw, "Trusting rustc", "Compiler flags", "Tooling")
	discount := testutil.CreateQuestion(t, gw, "50% off", "Pricing", "Shop")
	snake := testutil.CreateQuestion(t, gw, "snake_case names", "Style", "Shop")

	tests := []struct {
		name   string
		filter store.QuestionFilter
		want   []uint
	}{
		{name: "no filter returns all", filter: store.QuestionFilter{}, want: []uint{first.ID, second.ID, third.ID, discount.ID, snake.ID}},
		{name: "title is case-insensitive substring", filter: store.QuestionFilter{Title: "RUST"}, want: []uint{first.ID, third.ID}},
		{name: "category alone", filter: store.QuestionFilter{Category: "tool"}, want: []uint{second.ID, third.ID}},
		{name: "filters are AND-ed", filter: store.QuestionFilter{Title: "rust", Category: "lang"}, want: []uint{first.ID}},
		{name: "no match", filter: store.QuestionFilter{Title: "haskell"}, want: []uint{}},
		{name: "percent is literal", filter: store.QuestionFilter{Title: "%"}, want: []uint{discount.ID}},
		{name: "percent inside value", filter: store.QuestionFilter{Title: "50%"}, want: []uint{discount.ID}},
		{name: "underscore is literal", filter: store.QuestionFilter{Title: "_"}, want: []uint{snake.ID}},
		{name: "escape character is literal", filter: store.QuestionFilter{Title: "!"}, want: []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := qs.List(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]uint, 0, len(got))
			for _, q := range got {
				ids = append(ids, q.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestQuestionStore_UpdateAndDelete(t *testing.T) {
	gw := testutil.NewGateway(t)
	qs := store.NewQuestionStore(gw)
	ctx := context.Background()

	q := testutil.CreateQuestion(t, gw, "Old title", "Old body", "Misc")

	updated, err := qs.Update(ctx, q.ID, "New title", "New body", "Go")
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "New body", updated.Description)
	assert.Equal(t, "Go", updated.Category)

	// Writing identical values still counts as a match.
	_, err = qs.Update(ctx, q.ID, "New title", "New body", "Go")
	require.NoError(t, err)

	_, err = qs.Update(ctx, q.ID+1, "x", "y", "z")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, qs.Delete(ctx, q.ID))
	assert.ErrorIs(t, qs.Delete(ctx, q.ID), store.ErrNotFound)

	exists, err := qs.Exists(ctx, q.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAnswerStore(t *testing.T) {
	gw := testutil.NewGateway(t)
	as := store.NewAnswerStore(gw)
	ctx := context.Background()

	q := testutil.CreateQuestion(t, gw, "Why channels?", "Communication", "Go")
	other := testutil.CreateQuestion(t, gw, "Why mutexes?", "Sharing", "Go")
	a1 := testutil.CreateAnswer(t, gw, q.ID, "To share memory by communicating.")
	a2 := testutil.CreateAnswer(t, gw, q.ID, "Backpressure.")
	testutil.CreateAnswer(t, gw, other.ID, "Untouched.")

	list, err := as.ListByQuestion(ctx, q.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a1.ID, list[0].ID)
	assert.Equal(t, a2.ID, list[1].ID)

	exists, err := as.Exists(ctx, a1.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	n, err := as.DeleteByQuestion(ctx, q.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = as.DeleteByQuestion(ctx, q.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.EqualValues(t, 1, testutil.Count(t, gw, &models.Answer{}))
}

func TestVoteStore(t *testing.T) {
	gw := testutil.NewGateway(t)
	vs := store.NewVoteStore(gw)
	ctx := context.Background()

	q := testutil.CreateQuestion(t, gw, "Tabs or spaces?", "gofmt decides", "Style")
	a := testutil.CreateAnswer(t, gw, q.ID, "Tabs.")

	qv, err := vs.CastQuestionVote(ctx, q.ID, models.Upvote)
	require.NoError(t, err)
	assert.NotZero(t, qv.ID)
	assert.Equal(t, 1, qv.Vote)

	av, err := vs.CastAnswerVote(ctx, a.ID, models.Downvote)
	require.NoError(t, err)
	assert.Equal(t, -1, av.Vote)

	_, err = vs.CastAnswerVote(ctx, a.ID, models.Upvote)
	require.NoError(t, err)

	assert.EqualValues(t, 1, testutil.Count(t, gw, &models.QuestionVote{}))
	assert.EqualValues(t, 2, testutil.Count(t, gw, &models.AnswerVote{}))
}

func TestQuestionStore_ConcurrentCreateDistinctIDs(t *testing.T) {
	gw := testutil.NewGateway(t)
	qs := store.NewQuestionStore(gw)

	const workers = 20
	ids := make(chan uint, workers)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q := models.Question{Title: fmt.Sprintf("Question %d", i), Description: "body", Category: "load"}
			if err := qs.Create(context.Background(), &q); err != nil {
				errs <- err
				return
			}
			ids <- q.ID
		}(i)
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		t.Fatalf("create failed: %v", err)
	}
	seen := make(map[uint]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}

func TestGateway_PingAndStats(t *testing.T) {
	gw := testutil.NewGateway(t)

	require.NoError(t, gw.Ping(context.Background()))
	assert.Equal(t, 1, gw.Stats().MaxOpenConnections)
	assert.Equal(t, "sqlite", gw.Driver())
}

func TestErrNotFoundIsWrapped(t *testing.T) {
	gw := testutil.NewGateway(t)

	_, err := store.NewQuestionStore(gw).Get(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrNotFound))
	assert.Contains(t, err.Error(), "get question")
}
