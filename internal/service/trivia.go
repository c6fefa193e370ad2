package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/validation"
)

// AllCategories selects questions from every category in a quiz
const AllCategories int64 = 0

// QuestionPage is one page of a question listing
type QuestionPage struct {
	Questions []domain.Question
	Total     int
}

// CategoryPage is one page of the questions of a single category
type CategoryPage struct {
	QuestionPage
	Category domain.Category
}

// TriviaService implements the trivia use cases on top of the repositories
type TriviaService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	selector   *QuizSelector
	logger     *slog.Logger
}

// NewTriviaService creates a new trivia service
func NewTriviaService(questions domain.QuestionRepository, categories domain.CategoryRepository, selector *QuizSelector, logger *slog.Logger) *TriviaService {
	return &TriviaService{
		questions:  questions,
		categories: categories,
		selector:   selector,
		logger:     logger,
	}
}

// Categories returns all categories ordered by type
func (s *TriviaService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// ListQuestions returns one page of all questions ordered by ID
func (s *TriviaService) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	all, err := s.questions.List(ctx)
	if err != nil {
		return QuestionPage{}, err
	}
	return QuestionPage{Questions: Paginate(all, page), Total: len(all)}, nil
}

// SearchQuestions returns one page of the questions whose text contains
// term, ignoring case. Total counts every match, not just the page.
func (s *TriviaService) SearchQuestions(ctx context.Context, term string, page int) (QuestionPage, error) {
	found, err := s.questions.Search(ctx, strings.TrimSpace(term))
	if err != nil {
		return QuestionPage{}, err
	}
	return QuestionPage{Questions: Paginate(found, page), Total: len(found)}, nil
}

// CreateQuestion validates and stores a new question, setting its ID
func (s *TriviaService) CreateQuestion(ctx context.Context, q *domain.Question) error {
	validation.NormalizeQuestion(q)
	if err := validation.ValidateQuestion(q); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := s.questions.Create(ctx, q); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "question created", "question_id", q.ID, "category", q.Category)
	return nil
}

// DeleteQuestion removes a question. Failures to look the question up are
// wrapped with ErrLookupFailed so they can be told apart from a failed
// delete.
func (s *TriviaService) DeleteQuestion(ctx context.Context, id int64) error {
	if _, err := s.questions.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}

	if err := s.questions.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "question deleted", "question_id", id)
	return nil
}

// QuestionsByCategory returns one page of the questions in a category.
// Total counts the questions of that category only.
func (s *TriviaService) QuestionsByCategory(ctx context.Context, categoryID int64, page int) (CategoryPage, error) {
	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		return CategoryPage{}, err
	}

	questions, err := s.questions.ListByCategory(ctx, category.ID)
	if err != nil {
		return CategoryPage{}, err
	}

	return CategoryPage{
		QuestionPage: QuestionPage{Questions: Paginate(questions, page), Total: len(questions)},
		Category:     *category,
	}, nil
}

// NextQuizQuestion picks a question not in previous from the given
// category, or from all questions when categoryID is AllCategories.
// ok is false once every candidate has been shown.
func (s *TriviaService) NextQuizQuestion(ctx context.Context, categoryID int64, previous []int64) (question domain.Question, ok bool, err error) {
	var candidates []domain.Question
	if categoryID == AllCategories {
		candidates, err = s.questions.List(ctx)
	} else {
		if _, err = s.categories.GetByID(ctx, categoryID); err != nil {
			if errors.Is(err, domain.ErrCategoryNotFound) {
				return domain.Question{}, false, err
			}
			return domain.Question{}, false, fmt.Errorf("%w: %w", ErrLookupFailed, err)
		}
		candidates, err = s.questions.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return domain.Question{}, false, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}

	question, ok, err = s.selector.Select(candidates, previous)
	if err != nil {
		return domain.Question{}, false, err
	}
	if !ok {
		s.logger.DebugContext(ctx, "quiz exhausted", "category", categoryID, "previous", len(previous))
	}
	return question, ok, nil
}
