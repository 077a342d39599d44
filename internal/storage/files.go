package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/google/renameio/v2"

	"github.com/letsssgooo/quizApp/internal/domain/models"
	"github.com/letsssgooo/quizApp/internal/storage/codec"
)

const filePerm = 0o644

// Paths содержит пути к файлам хранилища.
type Paths struct {
	Users      string
	Quizzes    string
	Results    string
	Transcript string
}

// FileStorage реализует Storage в текстовых файлах.
type FileStorage struct {
	paths Paths
}

// NewFileStorage создаёт новый FileStorage.
func NewFileStorage(paths Paths) *FileStorage {
	return &FileStorage{paths: paths}
}

// LoadUsers читает файл пользователей.
func (s *FileStorage) LoadUsers(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	err := s.read(ctx, s.paths.Users, func(r io.Reader) error {
		var err error
		users, err = codec.DecodeUsers(r)
		return err
	})

	return users, err
}

// SaveUsers перезаписывает файл пользователей.
func (s *FileStorage) SaveUsers(ctx context.Context, users []models.User) error {
	return s.write(ctx, s.paths.Users, codec.EncodeUsers(users))
}

// LoadQuizzes читает файл квизов.
func (s *FileStorage) LoadQuizzes(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	err := s.read(ctx, s.paths.Quizzes, func(r io.Reader) error {
		var err error
		categories, err = codec.DecodeQuizzes(r)
		return err
	})

	return categories, err
}

// SaveQuizzes перезаписывает файл квизов.
func (s *FileStorage) SaveQuizzes(ctx context.Context, categories []models.Category) error {
	return s.write(ctx, s.paths.Quizzes, codec.EncodeQuizzes(categories))
}

// LoadResults читает файл результатов.
func (s *FileStorage) LoadResults(ctx context.Context) ([]models.QuizResult, error) {
	results := make([]models.QuizResult, 0)
	err := s.read(ctx, s.paths.Results, func(r io.Reader) error {
		var err error
		results, err = codec.DecodeResults(r)
		return err
	})

	return results, err
}

// SaveResults перезаписывает файл результатов.
func (s *FileStorage) SaveResults(ctx context.Context, results []models.QuizResult) error {
	return s.write(ctx, s.paths.Results, codec.EncodeResults(results))
}

// ResetTranscript обрезает файл разбора до нуля.
func (s *FileStorage) ResetTranscript(ctx context.Context) error {
	return s.write(ctx, s.paths.Transcript, nil)
}

// AppendTranscript дописывает разбор вопроса в конец файла.
func (s *FileStorage) AppendTranscript(ctx context.Context, entry models.TranscriptEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.paths.Transcript, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("failed to open transcript %s: %w", s.paths.Transcript, err)
	}

	if _, err = f.Write(codec.EncodeTranscriptEntry(entry)); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append transcript %s: %w", s.paths.Transcript, err)
	}

	return f.Close()
}

// ReadTranscript читает файл разбора целиком.
func (s *FileStorage) ReadTranscript(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(s.paths.Transcript)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read transcript %s: %w", s.paths.Transcript, err)
	}

	return string(data), nil
}

// read открывает файл и передает его decode. Отсутствующий файл пропускается.
func (s *FileStorage) read(ctx context.Context, path string, decode func(r io.Reader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	defer func() {
		_ = f.Close()
	}()

	if err = decode(f); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	return nil
}

// write атомарно заменяет содержимое файла.
func (s *FileStorage) write(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := renameio.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
