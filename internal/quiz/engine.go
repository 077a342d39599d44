package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/letsssgooo/quizApp/internal/domain/models"
)

// Engine реализует QuizEngine.
type Engine struct {
	repo       Repository
	transcript TranscriptWriter
	rnd        *rand.Rand
	now        func() time.Time
}

// NewEngine создаёт новый QuizEngine.
func NewEngine(repo Repository, transcript TranscriptWriter) *Engine {
	return &Engine{
		repo:       repo,
		transcript: transcript,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
		now:        time.Now,
	}
}

// Start создаёт сессию по категории. Для "mixed" (без учета регистра) берется до
// MixedQuestionsLimit случайных вопросов из всех категорий. Неизвестная категория ничего не меняет.
func (e *Engine) Start(ctx context.Context, login, category string) (*Session, error) {
	if strings.EqualFold(category, models.MixedCategory) {
		category = models.MixedCategory
	}

	session := &Session{
		ID:        uuid.NewString(),
		Login:     login,
		Category:  category,
		State:     StateSelectingCategory,
		StartedAt: e.now(),
	}

	questions, err := e.selectQuestions(category)
	if err != nil {
		return nil, err
	}

	if err = e.transcript.ResetTranscript(ctx); err != nil {
		return nil, fmt.Errorf("failed to reset transcript: %w", err)
	}

	if err = session.Begin(questions); err != nil {
		return nil, err
	}

	slog.Debug("quiz started",
		"session_id", session.ID,
		"login", login,
		"category", category,
		"questions", len(questions),
	)

	return session, nil
}

func (e *Engine) selectQuestions(category string) ([]models.Question, error) {
	if category == models.MixedCategory {
		return shuffleWithLimit(e.rnd, e.repo.AllQuestions(), models.MixedQuestionsLimit), nil
	}

	questions, err := e.repo.Questions(category)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidCategory, category, err)
	}

	return questions, nil
}

// Submit принимает ответ на текущий вопрос и дописывает его разбор.
func (e *Engine) Submit(ctx context.Context, s *Session, answer string) (Verdict, error) {
	verdict, err := s.Answer(answer)
	if err != nil {
		return Verdict{}, err
	}

	if err = e.transcript.AppendTranscript(ctx, verdict.Entry); err != nil {
		return verdict, fmt.Errorf("failed to write transcript: %w", err)
	}

	slog.Debug("answer submitted",
		"session_id", s.ID,
		"question", verdict.QuestionIdx,
		"correct", verdict.Entry.IsCorrect,
	)

	return verdict, nil
}

// Finish подсчитывает итог и добавляет результат в репозиторий.
func (e *Engine) Finish(ctx context.Context, s *Session) (Summary, error) {
	if s.State != StateScoring {
		return Summary{}, fmt.Errorf("%w, state %q", ErrSessionNotComplete, s.State)
	}

	result := models.QuizResult{
		UserLogin: s.Login,
		Score:     s.CorrectCount,
		Date:      e.now().Truncate(time.Second),
		Category:  s.Category,
	}

	summary := Summary{
		Correct: s.CorrectCount,
		Total:   s.Total(),
		Result:  result,
	}

	// результат уже добавлен в память, даже если сохранение не удалось
	err := e.repo.AppendResult(ctx, result)
	s.State = StateFinished
	if err != nil {
		return summary, err
	}

	slog.Debug("quiz finished", "session_id", s.ID, "score", s.CorrectCount, "total", s.Total())

	return summary, nil
}
