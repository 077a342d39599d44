package auth

import (
	"context"
	"errors"

	"github.com/letsssgooo/quizApp/internal/domain/models"
)

// Auth переводит введенные строки в операции над пользователями.
type Auth struct {
	users UserStore
}

// New создаёт новый Auth.
func New(users UserStore) *Auth {
	return &Auth{users: users}
}

// LoginTaken сообщает, занят ли логин.
func (a *Auth) LoginTaken(login string) bool {
	_, err := a.users.User(login)
	return err == nil
}

// Register регистрирует пользователя с датой рождения в текстовом виде.
// При неверной дате пользователь не создается.
func (a *Auth) Register(ctx context.Context, login, password, dateOfBirth string) error {
	dob, err := ParseDateOfBirth(dateOfBirth)
	if err != nil {
		return err
	}

	return a.users.Register(ctx, login, password, dob)
}

// Login возвращает пользователя при совпадении логина и пароля.
func (a *Auth) Login(login, password string) (models.User, error) {
	return a.users.Authenticate(login, password)
}

// Profile возвращает данные пользователя.
func (a *Auth) Profile(login string) (models.User, error) {
	return a.users.User(login)
}

// ChangePassword меняет пароль пользователя.
func (a *Auth) ChangePassword(ctx context.Context, login, password string) error {
	return a.users.ChangePassword(ctx, login, password)
}

// ChangeDateOfBirth меняет дату рождения. При неверной дате ничего не меняется.
func (a *Auth) ChangeDateOfBirth(ctx context.Context, login, dateOfBirth string) error {
	dob, err := ParseDateOfBirth(dateOfBirth)
	if err != nil {
		return err
	}

	return a.users.ChangeDateOfBirth(ctx, login, dob)
}

// IsInvalidDate сообщает, что ошибка вызвана неверной датой.
func IsInvalidDate(err error) bool {
	return errors.Is(err, ErrInvalidDateFormat)
}
