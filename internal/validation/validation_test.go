package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"   ", ""},
		{"  Name of   Eloka's\tCountry ", "Name of Eloka's Country"},
		{"line\nbreak", "line break"},
		{"bell\x07char", "bell char"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeText(tt.in), "input %q", tt.in)
	}
}

func TestValidateQuestion(t *testing.T) {
	valid := func() domain.Question {
		return domain.Question{Question: "Name of Eloka's Country", Answer: "Nigeria", Category: 5, Difficulty: 1}
	}

	q := valid()
	assert.NoError(t, ValidateQuestion(&q))

	tests := []struct {
		name   string
		mutate func(*domain.Question)
	}{
		{"missing question", func(q *domain.Question) { q.Question = "" }},
		{"missing answer", func(q *domain.Question) { q.Answer = "" }},
		{"long question", func(q *domain.Question) { q.Question = strings.Repeat("x", MaxQuestionLength+1) }},
		{"long answer", func(q *domain.Question) { q.Answer = strings.Repeat("x", MaxAnswerLength+1) }},
		{"zero category", func(q *domain.Question) { q.Category = 0 }},
		{"difficulty too low", func(q *domain.Question) { q.Difficulty = 0 }},
		{"difficulty too high", func(q *domain.Question) { q.Difficulty = 6 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid()
			tt.mutate(&q)
			assert.Error(t, ValidateQuestion(&q))
		})
	}
}

func TestNormalizeQuestionRejectsBlankText(t *testing.T) {
	q := domain.Question{Question: "  \t ", Answer: " Nigeria ", Category: 5, Difficulty: 1}
	NormalizeQuestion(&q)

	assert.Equal(t, "Nigeria", q.Answer)
	assert.Error(t, ValidateQuestion(&q))
}
