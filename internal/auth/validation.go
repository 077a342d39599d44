package auth

import (
	"fmt"
	"time"

	"github.com/letsssgooo/quizApp/internal/storage/codec"
)

// ParseDateOfBirth валидирует введенную дату рождения.
func ParseDateOfBirth(message string) (time.Time, error) {
	dateOfBirth, err := codec.ParseDate(message)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w, %w: %v", ErrValidation, ErrInvalidDateFormat, err)
	}

	return dateOfBirth, nil
}
