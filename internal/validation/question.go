package validation

import (
	"fmt"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// Length limits for question and answer text
const (
	MaxQuestionLength = 500
	MaxAnswerLength   = 200
)

// NormalizeQuestion normalizes the free text fields of a question in place
func NormalizeQuestion(q *domain.Question) {
	q.Question = NormalizeText(q.Question)
	q.Answer = NormalizeText(q.Answer)
}

// ValidateQuestion validates a question's data
func ValidateQuestion(q *domain.Question) error {
	if q.Question == "" {
		return fmt.Errorf("question text cannot be empty")
	}
	if q.Answer == "" {
		return fmt.Errorf("question answer cannot be empty")
	}
	if len(q.Question) > MaxQuestionLength {
		return fmt.Errorf("question text cannot be longer than %d characters", MaxQuestionLength)
	}
	if len(q.Answer) > MaxAnswerLength {
		return fmt.Errorf("answer cannot be longer than %d characters", MaxAnswerLength)
	}
	if q.Category < 1 {
		return fmt.Errorf("category must be a positive identifier")
	}
	if q.Difficulty < domain.MinDifficulty || q.Difficulty > domain.MaxDifficulty {
		return fmt.Errorf("difficulty must be between %d and %d", domain.MinDifficulty, domain.MaxDifficulty)
	}
	return nil
}
