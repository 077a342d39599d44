package codec

import (
	"fmt"
	"io"
	"strings"

	"github.com/letsssgooo/quizApp/internal/domain/models"
)

// EncodeUsers сериализует пользователей в формат login,password,yyyy-MM-dd.
func EncodeUsers(users []models.User) []byte {
	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, EncodeUserLine(u))
	}

	return writeLines(lines)
}

// EncodeUserLine сериализует одного пользователя без перевода строки.
func EncodeUserLine(u models.User) string {
	return strings.Join([]string{u.Login, u.Password, u.DateOfBirth.Format(DateLayout)}, fieldSeparator)
}

// DecodeUsers читает пользователей, пропуская некорректные строки.
// Повторный логин заменяет прежнюю запись, сохраняя ее позицию.
func DecodeUsers(r io.Reader) ([]models.User, error) {
	users := make([]models.User, 0)
	index := make(map[string]int)

	err := scanLines(r, func(lineNo int, line string) {
		u, err := DecodeUserLine(line)
		if err != nil {
			skipLine("user", lineNo, err)
			return
		}

		if i, ok := index[u.Login]; ok {
			users[i] = u
			return
		}

		index[u.Login] = len(users)
		users = append(users, u)
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// DecodeUserLine разбирает строку пользователя: ровно три поля и корректная дата.
func DecodeUserLine(line string) (models.User, error) {
	parts := strings.Split(line, fieldSeparator)
	if len(parts) != 3 {
		return models.User{}, fmt.Errorf("%w, need 3 fields, got %d", ErrMalformedLine, len(parts))
	}

	dateOfBirth, err := ParseDate(parts[2])
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}

	return models.User{
		Login:       parts[0],
		Password:    parts[1],
		DateOfBirth: dateOfBirth,
	}, nil
}
