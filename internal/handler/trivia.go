package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// TriviaHandler handles the question, category and quiz routes
type TriviaHandler struct {
	trivia *service.TriviaService
}

// NewTriviaHandler creates a new trivia handler
func NewTriviaHandler(trivia *service.TriviaService) *TriviaHandler {
	return &TriviaHandler{
		trivia: trivia,
	}
}

// Register registers the trivia routes
func (h *TriviaHandler) Register(e *echo.Echo) {
	e.GET("/categories", h.GetCategories)
	e.GET("/categories/:id/questions", h.GetCategoryQuestions)
	e.GET("/questions", h.GetQuestions)
	e.POST("/questions", h.CreateOrSearchQuestions)
	e.DELETE("/questions/:id", h.DeleteQuestion)
	e.POST("/quizzes", h.PlayQuiz)
}

// CategoriesResponse lists categories as an id to type mapping
type CategoriesResponse struct {
	Success    bool             `json:"success"`
	Categories map[int64]string `json:"categories"`
}

// QuestionsResponse is one page of questions
type QuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory *string           `json:"current_category"`
	Categories      map[int64]string  `json:"categories,omitempty"`
}

// QuizResponse carries the next quiz question, absent once the quiz is
// exhausted
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *domain.Question `json:"question,omitempty"`
}

// GetCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Failure 422 {object} ErrorResponse
// @Router /categories [get]
func (h *TriviaHandler) GetCategories(c echo.Context) error {
	categories, err := h.trivia.Categories(c.Request().Context())
	if err != nil {
		return httpError(http.StatusUnprocessableEntity, err)
	}

	return c.JSON(http.StatusOK, CategoriesResponse{
		Success:    true,
		Categories: domain.CategoryMap(categories),
	})
}

// GetQuestions godoc
// @Summary List questions
// @Description One page of all questions ordered by id, with every category
// @Tags questions
// @Produce json
// @Param page query int false "Page number"
// @Success 200 {object} QuestionsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /questions [get]
func (h *TriviaHandler) GetQuestions(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := h.trivia.ListQuestions(ctx, service.ParsePage(c.QueryParam("page")))
	if err != nil {
		return httpError(http.StatusUnprocessableEntity, err)
	}
	if len(page.Questions) == 0 {
		return httpError(http.StatusNotFound, nil)
	}

	categories, err := h.trivia.Categories(ctx)
	if err != nil {
		return httpError(http.StatusUnprocessableEntity, err)
	}

	return c.JSON(http.StatusOK, QuestionsResponse{
		Success:        true,
		Questions:      page.Questions,
		TotalQuestions: page.Total,
		Categories:     domain.CategoryMap(categories),
	})
}

// CreateOrSearchQuestions godoc
// @Summary Create or search questions
// @Description With a non-blank searchTerm, returns a page of questions containing it, ignoring case. Otherwise creates a question.
// @Tags questions
// @Accept json
// @Produce json
// @Param page query int false "Page number of search results"
// @Success 200 {object} QuestionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /questions [post]
func (h *TriviaHandler) CreateOrSearchQuestions(c echo.Context) error {
	var req questionsRequest
	if err := c.Bind(&req); err != nil {
		return httpError(http.StatusBadRequest, err)
	}

	// A blank searchTerm is treated as absent
	if req.SearchTerm != nil && strings.TrimSpace(*req.SearchTerm) != "" {
		return h.searchQuestions(c, *req.SearchTerm)
	}

	create := CreateQuestionRequest{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}
	if err := c.Validate(&create); err != nil {
		return httpError(http.StatusBadRequest, err)
	}

	question := &domain.Question{
		Question:   create.Question,
		Answer:     create.Answer,
		Category:   int64(create.Category),
		Difficulty: int(create.Difficulty),
	}
	if err := h.trivia.CreateQuestion(c.Request().Context(), question); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return httpError(http.StatusBadRequest, err)
		}
		return httpError(http.StatusUnprocessableEntity, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"created": question.ID,
	})
}

func (h *TriviaHandler) searchQuestions(c echo.Context, term string) error {
	page, err := h.trivia.SearchQuestions(c.Request().Context(), term, service.ParsePage(c.QueryParam("page")))
	if err != nil {
		return httpError(http.StatusNotFound, err)
	}

	return c.JSON(http.StatusOK, QuestionsResponse{
		Success:        true,
		Questions:      page.Questions,
		TotalQuestions: page.Total,
	})
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /questions/{id} [delete]
func (h *TriviaHandler) DeleteQuestion(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.trivia.DeleteQuestion(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrLookupFailed):
			return httpError(http.StatusInternalServerError, err)
		default:
			// Missing questions are reported as unprocessable too
			return httpError(http.StatusUnprocessableEntity, err)
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"deleted": id,
	})
}

// GetCategoryQuestions godoc
// @Summary List the questions of a category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Param page query int false "Page number"
// @Success 200 {object} QuestionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /categories/{id}/questions [get]
func (h *TriviaHandler) GetCategoryQuestions(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	page, err := h.trivia.QuestionsByCategory(c.Request().Context(), id, service.ParsePage(c.QueryParam("page")))
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return httpError(http.StatusNotFound, err)
		}
		return httpError(http.StatusUnprocessableEntity, err)
	}

	return c.JSON(http.StatusOK, QuestionsResponse{
		Success:         true,
		Questions:       page.Questions,
		TotalQuestions:  page.Total,
		CurrentCategory: &page.Category.Type,
	})
}

// PlayQuiz godoc
// @Summary Next quiz question
// @Description Picks a random question not in previous_questions. The response has no question once every candidate was shown.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body QuizRequest true "Quiz state"
// @Success 200 {object} QuizResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /quizzes [post]
func (h *TriviaHandler) PlayQuiz(c echo.Context) error {
	var req QuizRequest
	if err := c.Bind(&req); err != nil {
		return httpError(http.StatusBadRequest, err)
	}
	if req.QuizCategory == nil || req.PreviousQuestions == nil {
		return httpError(http.StatusBadRequest, nil)
	}

	question, ok, err := h.trivia.NextQuizQuestion(c.Request().Context(), req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCategoryNotFound):
			return httpError(http.StatusNotFound, err)
		case errors.Is(err, service.ErrNoCandidates):
			return httpError(http.StatusUnprocessableEntity, err)
		default:
			return httpError(http.StatusInternalServerError, err)
		}
	}

	resp := QuizResponse{Success: true}
	if ok {
		resp.Question = &question
	}
	return c.JSON(http.StatusOK, resp)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, httpError(http.StatusBadRequest, err)
	}
	return id, nil
}
