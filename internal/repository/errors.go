package repository

import "errors"

// Ошибки репозитория
var (
	ErrDuplicateLogin     = errors.New("login already exists")
	ErrDuplicateCategory  = errors.New("category already exists")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrQuestionCount      = errors.New("wrong number of questions")
)
