package quiz

import (
	"context"
	"errors"
	"time"

	"github.com/letsssgooo/quizApp/internal/domain/models"
)

// Session представляет одно прохождение квиза.
type Session struct {
	ID           string
	Login        string
	Category     string
	Questions    []models.Question
	State        SessionState
	Current      int
	CorrectCount int
	Transcript   []models.TranscriptEntry
	StartedAt    time.Time
}

// SessionState - состояние прохождения квиза.
type SessionState string

const (
	StateSelectingCategory SessionState = "selecting_category"
	StateAskingQuestion    SessionState = "asking_question"
	StateScoring           SessionState = "scoring"
	StateFinished          SessionState = "finished"
)

// Verdict - итог ответа на один вопрос.
type Verdict struct {
	QuestionIdx int
	Entry       models.TranscriptEntry
	Next        SessionState
}

// Summary - итог всего квиза.
type Summary struct {
	Correct int
	Total   int
	Result  models.QuizResult
}

// Repository определяет источник вопросов и приемник результатов.
type Repository interface {
	// Questions возвращает вопросы категории.
	Questions(name string) ([]models.Question, error)

	// AllQuestions возвращает вопросы всех категорий.
	AllQuestions() []models.Question

	// AppendResult сохраняет результат квиза.
	AppendResult(ctx context.Context, result models.QuizResult) error
}

// TranscriptWriter определяет хранилище разбора последнего квиза.
type TranscriptWriter interface {
	// ResetTranscript очищает разбор.
	ResetTranscript(ctx context.Context) error

	// AppendTranscript дописывает разбор вопроса.
	AppendTranscript(ctx context.Context, entry models.TranscriptEntry) error
}

// QuizEngine определяет основной интерфейс прохождения квизов.
type QuizEngine interface { //nolint:revive
	// Start выбирает вопросы категории (или смешанные) и начинает сессию.
	Start(ctx context.Context, login, category string) (*Session, error)

	// Submit принимает ответ на текущий вопрос и пишет его разбор.
	Submit(ctx context.Context, s *Session, answer string) (Verdict, error)

	// Finish подсчитывает итог и сохраняет результат.
	Finish(ctx context.Context, s *Session) (Summary, error)
}

// Ошибки квиза
var (
	ErrInvalidCategory    = errors.New("invalid category")
	ErrSessionFinished    = errors.New("no question to answer")
	ErrSessionNotComplete = errors.New("quiz has unanswered questions")
)
