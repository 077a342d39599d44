package codec

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/letsssgooo/quizApp/internal/domain/models"
)

// EncodeResults сериализует результаты в формат login,score,yyyy-MM-dd HH:mm:ss,category.
func EncodeResults(results []models.QuizResult) []byte {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, EncodeResultLine(r))
	}

	return writeLines(lines)
}

// EncodeResultLine сериализует один результат без перевода строки.
func EncodeResultLine(r models.QuizResult) string {
	return strings.Join([]string{
		r.UserLogin,
		strconv.Itoa(r.Score),
		r.Date.Format(DateTimeLayout),
		r.Category,
	}, fieldSeparator)
}

// DecodeResults читает результаты в порядке файла, пропуская некорректные строки.
func DecodeResults(r io.Reader) ([]models.QuizResult, error) {
	results := make([]models.QuizResult, 0)

	err := scanLines(r, func(lineNo int, line string) {
		result, err := DecodeResultLine(line)
		if err != nil {
			skipLine("result", lineNo, err)
			return
		}

		results = append(results, result)
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// DecodeResultLine разбирает строку результата: четыре поля, целый счет и корректная дата.
func DecodeResultLine(line string) (models.QuizResult, error) {
	parts := strings.Split(line, fieldSeparator)
	if len(parts) != 4 {
		return models.QuizResult{}, fmt.Errorf("%w, need 4 fields, got %d", ErrMalformedLine, len(parts))
	}

	score, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return models.QuizResult{}, fmt.Errorf("%w, invalid score %q", ErrMalformedLine, parts[1])
	}

	date, err := ParseDate(parts[2])
	if err != nil {
		return models.QuizResult{}, fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}

	return models.QuizResult{
		UserLogin: parts[0],
		Score:     score,
		Date:      date,
		Category:  parts[3],
	}, nil
}
