package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt is an integer that may arrive as a JSON number or as a numeric
// string, as in {"difficulty": "1"}
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}

	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}
	*f = FlexInt(n)
	return nil
}

// QuizCategory selects the category a quiz draws from. Clients send it as
// {"id": 1}, {"id": "1", "type": "Science"}, 1 or "1". Zero, or an object
// without an id, means all categories.
type QuizCategory struct {
	ID int64
}

// UnmarshalJSON implements json.Unmarshaler
func (q *QuizCategory) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	var id FlexInt
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			ID *FlexInt `json:"id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return fmt.Errorf("invalid quiz_category: %w", err)
		}
		if obj.ID != nil {
			id = *obj.ID
		}
	} else if err := id.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid quiz_category: %w", err)
	}

	if id < 0 {
		return fmt.Errorf("invalid quiz_category: negative id %d", id)
	}
	q.ID = int64(id)
	return nil
}

// questionsRequest is the body of POST /questions. The presence of
// searchTerm turns the request into a search.
type questionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   FlexInt `json:"category"`
	Difficulty FlexInt `json:"difficulty"`
}

// CreateQuestionRequest represents the request to create a new question
type CreateQuestionRequest struct {
	Question   string  `json:"question" validate:"required"`
	Answer     string  `json:"answer" validate:"required"`
	Category   FlexInt `json:"category" validate:"required,min=1"`
	Difficulty FlexInt `json:"difficulty" validate:"required,min=1,max=5"`
}

// QuizRequest represents the request for the next quiz question
type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category"`
	PreviousQuestions []int64       `json:"previous_questions"`
}
