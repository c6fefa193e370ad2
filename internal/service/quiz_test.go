package service

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

func questionsWithIDs(ids ...int64) []domain.Question {
	out := make([]domain.Question, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Question{ID: id, Question: "q", Answer: "a", Category: 1, Difficulty: 1})
	}
	return out
}

func TestSelectUnseenEmptyCandidates(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	_, ok, err := SelectUnseen(rng, nil, nil)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestSelectUnseenNeverReturnsPrevious(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	candidates := questionsWithIDs(1, 2, 3, 4, 5, 6)
	previous := []int64{1, 3, 5, 42}

	for i := 0; i < 200; i++ {
		q, ok, err := SelectUnseen(rng, candidates, previous)
		require.NoError(t, err)
		require.True(t, ok)
		assert.False(t, slices.Contains(previous, q.ID), "returned previous question %d", q.ID)
	}
}

func TestSelectUnseenExhausted(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	candidates := questionsWithIDs(1, 2, 3)

	q, ok, err := SelectUnseen(rng, candidates, []int64{3, 2, 1, 2})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, q)
}

func TestSelectUnseenLastRemaining(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	candidates := questionsWithIDs(10, 20, 30)

	q, ok, err := SelectUnseen(rng, candidates, []int64{10, 30})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(20), q.ID)
}

func TestSelectUnseenCoversEveryUnseenQuestion(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	candidates := questionsWithIDs(1, 2, 3, 4)

	seen := map[int64]bool{}
	for i := 0; i < 400; i++ {
		q, ok, err := SelectUnseen(rng, candidates, []int64{2})
		require.NoError(t, err)
		require.True(t, ok)
		seen[q.ID] = true
	}
	assert.Equal(t, map[int64]bool{1: true, 3: true, 4: true}, seen)
}

func TestQuizSelectorDeterministicWithSeed(t *testing.T) {
	candidates := questionsWithIDs(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	a := NewQuizSelector(99)
	b := NewQuizSelector(99)

	for i := 0; i < 20; i++ {
		qa, _, err := a.Select(candidates, nil)
		require.NoError(t, err)
		qb, _, err := b.Select(candidates, nil)
		require.NoError(t, err)
		assert.Equal(t, qa.ID, qb.ID)
	}
}

func TestQuizSelectorRandomSeed(t *testing.T) {
	s := NewQuizSelector(0)
	q, ok, err := s.Select(questionsWithIDs(5), nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(5), q.ID)
}
