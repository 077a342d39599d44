package auth

import (
	"context"
	"errors"
	"time"

	"github.com/letsssgooo/quizApp/internal/domain/models"
)

// UserStore определяет операции над пользователями, нужные авторизации.
type UserStore interface {
	// Register добавляет пользователя.
	Register(ctx context.Context, login, password string, dateOfBirth time.Time) error

	// Authenticate проверяет логин и пароль.
	Authenticate(login, password string) (models.User, error)

	// User возвращает пользователя по логину.
	User(login string) (models.User, error)

	// ChangePassword меняет пароль.
	ChangePassword(ctx context.Context, login, password string) error

	// ChangeDateOfBirth меняет дату рождения.
	ChangeDateOfBirth(ctx context.Context, login string, dateOfBirth time.Time) error
}

// Ошибки авторизации
var (
	ErrValidation        = errors.New("validation error")
	ErrInvalidDateFormat = errors.New("invalid date format")
)
