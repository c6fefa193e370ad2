package service

import "strconv"

// QuestionsPerPage is the fixed page size of every paginated listing
const QuestionsPerPage = 10

// ParsePage reads a 1-indexed page number. Absent, non-numeric and
// non-positive values all mean the first page.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate returns the items on the given page. A page past the end is
// empty, not an error; callers decide what an empty page means.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		page = 1
	}

	// Compare page numbers rather than offsets so huge pages cannot overflow
	if len(items) == 0 || page-1 > (len(items)-1)/QuestionsPerPage {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	end := min(start+QuestionsPerPage, len(items))

	return items[start:end:end]
}
