package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-3", 1},
		{"1", 1},
		{"7", 7},
		{"2.5", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePage(tt.raw), "raw %q", tt.raw)
	}
}

func TestPaginateLength(t *testing.T) {
	for _, l := range []int{0, 1, 9, 10, 11, 25, 30} {
		items := make([]int, l)
		for i := range items {
			items[i] = i
		}

		for page := 1; page <= 5; page++ {
			want := min(QuestionsPerPage, max(0, l-(page-1)*QuestionsPerPage))
			got := Paginate(items, page)
			assert.Len(t, got, want, "len %d page %d", l, page)
			if want > 0 {
				assert.Equal(t, (page-1)*QuestionsPerPage, got[0])
			}
		}
	}
}

func TestPaginateEdgeCases(t *testing.T) {
	items := []string{"a", "b", "c"}

	empty := Paginate([]string{}, 1)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	assert.Equal(t, items, Paginate(items, 0))
	assert.Equal(t, items, Paginate(items, -4))
	assert.Empty(t, Paginate(items, 500))
}

func TestPaginateDoesNotAliasTail(t *testing.T) {
	items := make([]int, 15)
	page := Paginate(items, 1)

	page = append(page, 99)
	assert.Equal(t, 0, items[10])
	assert.Len(t, page, 11)
}

func TestPaginateHugePages(t *testing.T) {
	items := make([]int, 15)
	for i := range items {
		items[i] = i
	}

	// (page-1)*10 wraps to a small positive offset for this page
	assert.Empty(t, Paginate(items, 5534023222112865486))
	assert.Empty(t, Paginate(items, math.MaxInt))
	assert.Empty(t, Paginate(items, math.MaxInt/QuestionsPerPage+1))
	assert.Empty(t, Paginate(items, math.MaxInt/QuestionsPerPage+2))
	assert.Empty(t, Paginate(items, 3))
	assert.Equal(t, items[10:], Paginate(items, 2))

	for _, page := range []int{math.MaxInt - 1, math.MaxInt} {
		assert.Empty(t, Paginate(make([]int, 0), page))
	}
}

func TestParsePageHuge(t *testing.T) {
	assert.Equal(t, 5534023222112865486, ParsePage("5534023222112865486"))
	assert.Equal(t, 1, ParsePage("99999999999999999999999"))
}
