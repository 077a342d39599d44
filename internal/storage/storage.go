package storage

import (
	"context"

	"github.com/letsssgooo/quizApp/internal/domain/models"
)

// Storage определяет интерфейс для хранения пользователей, квизов, результатов
// и разбора последнего квиза. Save-методы полностью перезаписывают хранилище.
type Storage interface {
	// LoadUsers возвращает всех пользователей. Отсутствие данных - не ошибка.
	LoadUsers(ctx context.Context) ([]models.User, error)

	// SaveUsers перезаписывает пользователей.
	SaveUsers(ctx context.Context, users []models.User) error

	// LoadQuizzes возвращает категории с вопросами в порядке хранения.
	LoadQuizzes(ctx context.Context) ([]models.Category, error)

	// SaveQuizzes перезаписывает категории.
	SaveQuizzes(ctx context.Context, categories []models.Category) error

	// LoadResults возвращает результаты в порядке добавления.
	LoadResults(ctx context.Context) ([]models.QuizResult, error)

	// SaveResults перезаписывает результаты.
	SaveResults(ctx context.Context, results []models.QuizResult) error

	// ResetTranscript очищает разбор последнего квиза.
	ResetTranscript(ctx context.Context) error

	// AppendTranscript дописывает разбор одного вопроса.
	AppendTranscript(ctx context.Context, entry models.TranscriptEntry) error

	// ReadTranscript возвращает разбор последнего квиза. Пустая строка, если его нет.
	ReadTranscript(ctx context.Context) (string, error)
}
