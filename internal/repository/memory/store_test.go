package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

func TestSeededStore(t *testing.T) {
	ctx := context.Background()
	s := NewSeededStore()

	questions, err := s.Questions().List(ctx)
	require.NoError(t, err)
	assert.Len(t, questions, 18)
	for i := 1; i < len(questions); i++ {
		assert.Less(t, questions[i-1].ID, questions[i].ID)
	}

	categories, err := s.Categories().List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 6)
	assert.Equal(t, "Art", categories[0].Type)
	assert.Equal(t, "Sports", categories[5].Type)
}

func TestQuestionRepository_CreateDeleteNeverReusesIDs(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.AddCategory(domain.Category{ID: 1, Type: "Science"})
	repo := s.Questions()

	first := &domain.Question{Question: "q1", Answer: "a1", Category: 1, Difficulty: 1}
	second := &domain.Question{Question: "q2", Answer: "a2", Category: 1, Difficulty: 2}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	require.NoError(t, repo.Delete(ctx, second.ID))
	_, err := repo.GetByID(ctx, second.ID)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, second.ID), domain.ErrQuestionNotFound)

	third := &domain.Question{Question: "q3", Answer: "a3", Category: 1, Difficulty: 3}
	require.NoError(t, repo.Create(ctx, third))
	assert.Equal(t, int64(3), third.ID)

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, *first, *got)
}

func TestQuestionRepository_CreateUnknownCategory(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	q := &domain.Question{Question: "q", Answer: "a", Category: 100, Difficulty: 1}
	require.NoError(t, s.Questions().Create(ctx, q))
	assert.Equal(t, int64(1), q.ID)

	got, err := s.Questions().ListByCategory(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, []domain.Question{*q}, got)
}

func TestQuestionRepository_SearchIgnoresCase(t *testing.T) {
	ctx := context.Background()
	s := NewSeededStore()

	found, err := s.Questions().Search(ctx, "PENICILLIN")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Alexander Fleming", found[0].Answer)

	found, err = s.Questions().Search(ctx, "no such text")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestQuestionRepository_ListByCategory(t *testing.T) {
	ctx := context.Background()
	s := NewSeededStore()

	art, err := s.Questions().ListByCategory(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, art, 4)
	for _, q := range art {
		assert.Equal(t, int64(2), q.Category)
	}

	none, err := s.Questions().ListByCategory(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCategoryRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	s := NewSeededStore()

	c, err := s.Categories().GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Geography", c.Type)

	_, err = s.Categories().GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestRepositoriesHonourCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewSeededStore()

	_, err := s.Questions().List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.Categories().List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
