package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want FlexInt
	}{
		{`5`, 5},
		{`"5"`, 5},
		{`" 12 "`, 12},
		{`null`, 0},
	}

	for _, tt := range tests {
		var got FlexInt
		require.NoError(t, json.Unmarshal([]byte(tt.in), &got), tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{`"five"`, `1.5`, `true`, `{}`} {
		var got FlexInt
		assert.Error(t, json.Unmarshal([]byte(bad), &got), bad)
	}
}

func TestQuizCategoryUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{`{"id": 1}`, 1},
		{`{"id": "3", "type": "Geography"}`, 3},
		{`{"type": "click", "id": 0}`, 0},
		{`{}`, 0},
		{`4`, 4},
		{`"6"`, 6},
		{`0`, 0},
	}

	for _, tt := range tests {
		var got QuizCategory
		require.NoError(t, json.Unmarshal([]byte(tt.in), &got), tt.in)
		assert.Equal(t, tt.want, got.ID, tt.in)
	}

	for _, bad := range []string{`"science"`, `{"id": "x"}`, `-1`, `{"id": -2}`, `[1]`} {
		var got QuizCategory
		assert.Error(t, json.Unmarshal([]byte(bad), &got), bad)
	}
}

func TestQuizRequestDistinguishesMissingFields(t *testing.T) {
	var req QuizRequest
	require.NoError(t, json.Unmarshal([]byte(`{"previous_questions": []}`), &req))
	assert.Nil(t, req.QuizCategory)
	assert.NotNil(t, req.PreviousQuestions)

	req = QuizRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"quiz_category": {"id": 0}}`), &req))
	require.NotNil(t, req.QuizCategory)
	assert.Nil(t, req.PreviousQuestions)
}
