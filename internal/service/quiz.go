package service

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// SelectUnseen picks a question from candidates whose ID is not in
// previous, uniformly at random using rng. It fails with ErrInvalidInput
// when there are no candidates and reports ok == false once every
// candidate has already been shown.
func SelectUnseen(rng *rand.Rand, candidates []domain.Question, previous []int64) (question domain.Question, ok bool, err error) {
	if len(candidates) == 0 {
		return domain.Question{}, false, fmt.Errorf("%w: %w", ErrInvalidInput, ErrNoCandidates)
	}

	shown := make(map[int64]struct{}, len(previous))
	for _, id := range previous {
		shown[id] = struct{}{}
	}

	unseen := make([]domain.Question, 0, len(candidates))
	for _, q := range candidates {
		if _, seen := shown[q.ID]; !seen {
			unseen = append(unseen, q)
		}
	}
	if len(unseen) == 0 {
		return domain.Question{}, false, nil
	}

	return unseen[rng.IntN(len(unseen))], true, nil
}

// QuizSelector owns the random source used for quiz draws. rand.Rand is
// not safe for concurrent use so draws are serialized.
type QuizSelector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewQuizSelector creates a selector. A zero seed picks a random one.
func NewQuizSelector(seed uint64) *QuizSelector {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &QuizSelector{
		rng: rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

// Select draws one unseen question, see SelectUnseen
func (s *QuizSelector) Select(candidates []domain.Question, previous []int64) (domain.Question, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SelectUnseen(s.rng, candidates, previous)
}
