// Package memory keeps questions and categories in process memory. It
// backs the test suites and the STORE_DRIVER=memory development mode.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// Store holds the data shared by the memory repositories
type Store struct {
	mu         sync.RWMutex
	questions  []domain.Question
	categories map[int64]domain.Category
	lastID     int64
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		categories: make(map[int64]domain.Category),
	}
}

// NewSeededStore creates a store filled with the default data set
func NewSeededStore() *Store {
	s := NewStore()
	s.initInMemoryData()
	return s
}

// AddCategory registers a category, replacing any with the same ID
func (s *Store) AddCategory(category domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[category.ID] = category
}

// Questions returns the question repository view of the store
func (s *Store) Questions() *QuestionRepository {
	return &QuestionRepository{store: s}
}

// Categories returns the category repository view of the store
func (s *Store) Categories() *CategoryRepository {
	return &CategoryRepository{store: s}
}

// QuestionRepository implements domain.QuestionRepository in memory
type QuestionRepository struct {
	store *Store
}

// List retrieves all questions ordered by ID
func (r *QuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	return r.filter(ctx, func(domain.Question) bool { return true })
}

// ListByCategory retrieves the questions of one category ordered by ID
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Question, error) {
	return r.filter(ctx, func(q domain.Question) bool { return q.Category == categoryID })
}

// Search retrieves questions whose text contains term, ignoring case
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]domain.Question, error) {
	term = strings.ToLower(term)
	return r.filter(ctx, func(q domain.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	})
}

// GetByID retrieves a question by its ID
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i, ok := r.store.indexOf(id)
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	q := r.store.questions[i]
	return &q, nil
}

// Create inserts a new question and sets its ID. The category is not
// checked against the known categories.
func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.lastID++
	question.ID = r.store.lastID
	r.store.questions = append(r.store.questions, *question)
	return nil
}

// Delete deletes a question
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i, ok := r.store.indexOf(id)
	if !ok {
		return domain.ErrQuestionNotFound
	}
	r.store.questions = slices.Delete(r.store.questions, i, i+1)
	return nil
}

func (r *QuestionRepository) filter(ctx context.Context, keep func(domain.Question) bool) ([]domain.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []domain.Question
	for _, q := range r.store.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out, nil
}

// indexOf finds a question by ID. Questions are appended with increasing
// IDs so the slice stays sorted. Callers hold the lock.
func (s *Store) indexOf(id int64) (int, bool) {
	return slices.BinarySearchFunc(s.questions, id, func(q domain.Question, id int64) int {
		switch {
		case q.ID < id:
			return -1
		case q.ID > id:
			return 1
		}
		return 0
	})
}

// CategoryRepository implements domain.CategoryRepository in memory
type CategoryRepository struct {
	store *Store
}

// List retrieves all categories ordered by type
func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	categories := make([]domain.Category, 0, len(r.store.categories))
	for _, c := range r.store.categories {
		categories = append(categories, c)
	}
	slices.SortFunc(categories, func(a, b domain.Category) int {
		return strings.Compare(a.Type, b.Type)
	})
	return categories, nil
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &c, nil
}
