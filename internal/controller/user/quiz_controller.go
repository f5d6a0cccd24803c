package user

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/lshigami/lingoquiz/internal/domain"
	"github.com/lshigami/lingoquiz/internal/dto"
	"github.com/lshigami/lingoquiz/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	engine   service.QuizEngine
	catalog  service.QuizCatalogService
	recorder service.AttemptRecorderService
	coach    service.StudyCoachService
}

func NewQuizController(engine service.QuizEngine, catalog service.QuizCatalogService, recorder service.AttemptRecorderService, coach service.StudyCoachService) *QuizController {
	return &QuizController{engine: engine, catalog: catalog, recorder: recorder, coach: coach}
}

func (c *QuizController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/quizzes", c.ListQuizzes)

	users := api.Group("/users/:user_id")
	users.POST("/quizzes/:quiz_id/start", c.StartQuiz)
	users.POST("/quizzes/:quiz_id/retake", c.RetakeQuiz)
	users.GET("/session/question", c.CurrentQuestion)
	users.POST("/session/answers", c.SubmitAnswer)
	users.GET("/review", c.Review)
	users.GET("/stats", c.Stats)
}

// ListQuizzes godoc
// @Summary List quizzes of a language
// @Description Newest first. Premium quizzes are only listed when user_id has an active premium subscription.
// @Tags Quizzes
// @Produce json
// @Param language query string true "Quiz language, e.g. korean"
// @Param user_id query int false "Chat user ID used for the premium check"
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Missing language or invalid user ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	language := ctx.Query("language")
	if language == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "language query parameter is required"})
		return
	}
	var userID *int64
	if raw := ctx.Query("user_id"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid User ID format in query"})
			return
		}
		userID = &v
	}

	quizzes, err := c.catalog.ListQuizzes(ctx.Request.Context(), language, userID)
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	resp := []dto.QuizSummaryDTO{}
	if len(quizzes) > 0 {
		if err := copier.Copy(&resp, &quizzes); err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error preparing response", Details: []string{err.Error()}})
			return
		}
	}
	ctx.JSON(http.StatusOK, resp)
}

// StartQuiz godoc
// @Summary Start a quiz
// @Description Starts a new session for the user, replacing any unfinished one, and returns the first question.
// @Tags Quiz Session
// @Produce json
// @Param user_id path int true "Chat user ID"
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.ProgressResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 403 {object} dto.ErrorResponse "Premium subscription required"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 422 {object} dto.ErrorResponse "Quiz has no questions"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{user_id}/quizzes/{quiz_id}/start [post]
func (c *QuizController) StartQuiz(ctx *gin.Context) {
	c.start(ctx, c.engine.Start)
}

// RetakeQuiz godoc
// @Summary Retake a quiz
// @Description Starts the quiz again from the first question with a fresh score.
// @Tags Quiz Session
// @Produce json
// @Param user_id path int true "Chat user ID"
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.ProgressResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 403 {object} dto.ErrorResponse "Premium subscription required"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 422 {object} dto.ErrorResponse "Quiz has no questions"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{user_id}/quizzes/{quiz_id}/retake [post]
func (c *QuizController) RetakeQuiz(ctx *gin.Context) {
	c.start(ctx, c.engine.Retake)
}

func (c *QuizController) start(ctx *gin.Context, verb func(reqCtx context.Context, userID int64, quizID uint) (*domain.Progress, error)) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Quiz ID format"})
		return
	}
	progress, err := verb(ctx.Request.Context(), userID, uint(quizID))
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toProgressDTO(progress, nil))
}

// CurrentQuestion godoc
// @Summary Show the awaited question
// @Tags Quiz Session
// @Produce json
// @Param user_id path int true "Chat user ID"
// @Success 200 {object} dto.ProgressResponseDTO
// @Failure 404 {object} dto.ErrorResponse "No active quiz session"
// @Router /users/{user_id}/session/question [get]
func (c *QuizController) CurrentQuestion(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	progress, err := c.engine.CurrentQuestion(ctx.Request.Context(), userID)
	if err != nil {
		c.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toProgressDTO(progress, nil))
}

// SubmitAnswer godoc
// @Summary Answer the awaited question
// @Description Answers for any other question index are ignored and reported with stale=true.
// @Description After the last question the response carries the result. If the attempt could not be saved, recorded is false and a warning is set.
// @Tags Quiz Session
// @Accept json
// @Produce json
// @Param user_id path int true "Chat user ID"
// @Param answer body dto.SubmitAnswerRequest true "Question index and chosen label"
// @Success 200 {object} dto.ProgressResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "No active quiz session"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{user_id}/session/answers [post]
func (c *QuizController) SubmitAnswer(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswer: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	progress, err := c.engine.SubmitAnswer(ctx.Request.Context(), userID, *req.QuestionIndex, req.Label)
	if err != nil && !(errors.Is(err, domain.ErrPersistenceFailure) && progress != nil) {
		c.writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toProgressDTO(progress, err))
}

// Review godoc
// @Summary Review answers
// @Description Answers of the active session, or of the last finished attempt. With advice=true a short study note for the missed questions is added when available.
// @Tags Quiz Session
// @Produce json
// @Param user_id path int true "Chat user ID"
// @Param advice query bool false "Include study advice"
// @Success 200 {object} dto.ReviewResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Nothing to review"
// @Router /users/{user_id}/review [get]
func (c *QuizController) Review(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	review, err := c.engine.Review(ctx.Request.Context(), userID)
	if err != nil {
		c.writeError(ctx, err)
		return
	}

	resp := dto.ReviewResponseDTO{
		SessionID: review.SessionID,
		QuizID:    review.QuizID,
		QuizTitle: review.QuizTitle,
		Language:  review.Language,
		Finished:  review.Finished,
		Answers:   make([]dto.AnswerRecordDTO, 0, len(review.Answers)),
	}
	for i, a := range review.Answers {
		var rec dto.AnswerRecordDTO
		if err := copier.Copy(&rec, &a); err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error preparing response", Details: []string{err.Error()}})
			return
		}
		rec.Number = i + 1
		resp.Answers = append(resp.Answers, rec)
	}

	if want, _ := strconv.ParseBool(ctx.Query("advice")); want {
		advice, err := c.coach.Advise(ctx.Request.Context(), review)
		if err != nil {
			// Advice is optional; the review is still served.
			log.Warn().Err(err).Int64("userID", userID).Msg("Review: study advice unavailable")
		}
		resp.Advice = advice
	}
	ctx.JSON(http.StatusOK, resp)
}

// Stats godoc
// @Summary Lifetime quiz statistics
// @Tags Quiz Statistics
// @Produce json
// @Param user_id path int true "Chat user ID"
// @Success 200 {object} dto.UserStatsDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid User ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{user_id}/stats [get]
func (c *QuizController) Stats(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}
	stats, err := c.recorder.UserStats(ctx.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Int64("userID", userID).Msg("Stats: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quiz statistics", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

func parseUserID(ctx *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(ctx.Param("user_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid User ID format"})
		return 0, false
	}
	return userID, true
}

func (c *QuizController) writeError(ctx *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, domain.ErrQuizNotFound):
		status, code = http.StatusNotFound, "quiz_not_found"
	case errors.Is(err, domain.ErrNoQuestions):
		status, code = http.StatusUnprocessableEntity, "no_questions"
	case errors.Is(err, domain.ErrPremiumRequired):
		status, code = http.StatusForbidden, "premium_required"
	case errors.Is(err, domain.ErrSessionNotFound):
		status, code = http.StatusNotFound, "session_not_found"
	}
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Request failed")
		ctx.JSON(status, dto.ErrorResponse{Message: "Internal server error", Code: code, Details: []string{err.Error()}})
		return
	}
	ctx.JSON(status, dto.ErrorResponse{Message: err.Error(), Code: code})
}
