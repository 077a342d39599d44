package storage

import (
	"context"
	"strings"

	"github.com/letsssgooo/quizApp/internal/domain/models"
	"github.com/letsssgooo/quizApp/internal/storage/codec"
)

// MemoryStorage реализует Storage в памяти. Хранит копии, а не переданные срезы.
type MemoryStorage struct {
	users      []models.User
	categories []models.Category
	results    []models.QuizResult
	transcript strings.Builder

	saves map[string]int
}

// NewMemoryStorage создаёт новый MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:      make([]models.User, 0),
		categories: make([]models.Category, 0),
		results:    make([]models.QuizResult, 0),
		saves:      make(map[string]int),
	}
}

// SaveCount возвращает число вызовов Save-метода коллекции: "users", "quizzes" или "results".
func (s *MemoryStorage) SaveCount(collection string) int {
	return s.saves[collection]
}

// LoadUsers возвращает копию пользователей.
func (s *MemoryStorage) LoadUsers(ctx context.Context) ([]models.User, error) {
	return append(make([]models.User, 0, len(s.users)), s.users...), ctx.Err()
}

// SaveUsers сохраняет копию пользователей.
func (s *MemoryStorage) SaveUsers(ctx context.Context, users []models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.users = append(make([]models.User, 0, len(users)), users...)
	s.saves["users"]++

	return nil
}

// LoadQuizzes возвращает копию категорий.
func (s *MemoryStorage) LoadQuizzes(ctx context.Context) ([]models.Category, error) {
	return cloneCategories(s.categories), ctx.Err()
}

// SaveQuizzes сохраняет копию категорий.
func (s *MemoryStorage) SaveQuizzes(ctx context.Context, categories []models.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.categories = cloneCategories(categories)
	s.saves["quizzes"]++

	return nil
}

// LoadResults возвращает копию результатов.
func (s *MemoryStorage) LoadResults(ctx context.Context) ([]models.QuizResult, error) {
	return append(make([]models.QuizResult, 0, len(s.results)), s.results...), ctx.Err()
}

// SaveResults сохраняет копию результатов.
func (s *MemoryStorage) SaveResults(ctx context.Context, results []models.QuizResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.results = append(make([]models.QuizResult, 0, len(results)), results...)
	s.saves["results"]++

	return nil
}

// ResetTranscript очищает разбор.
func (s *MemoryStorage) ResetTranscript(ctx context.Context) error {
	s.transcript.Reset()
	return ctx.Err()
}

// AppendTranscript дописывает разбор вопроса в том же формате, что и файл.
func (s *MemoryStorage) AppendTranscript(ctx context.Context, entry models.TranscriptEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.transcript.Write(codec.EncodeTranscriptEntry(entry))

	return nil
}

// ReadTranscript возвращает накопленный разбор.
func (s *MemoryStorage) ReadTranscript(ctx context.Context) (string, error) {
	return s.transcript.String(), ctx.Err()
}

func cloneCategories(categories []models.Category) []models.Category {
	cloned := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		questions := make([]models.Question, 0, len(c.Questions))
		for _, q := range c.Questions {
			questions = append(questions, q.Clone())
		}

		cloned = append(cloned, models.Category{Name: c.Name, Questions: questions})
	}

	return cloned
}
