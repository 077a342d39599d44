package codec

import (
	"fmt"
	"io"
	"strings"

	"github.com/letsssgooo/quizApp/internal/domain/models"
)

// EncodeQuizzes сериализует банк вопросов: строка "Category:<name>", затем
// по строке text|options|correct на каждый вопрос.
func EncodeQuizzes(categories []models.Category) []byte {
	lines := make([]string, 0)
	for _, c := range categories {
		lines = append(lines, CategoryPrefix+c.Name)
		for _, q := range c.Questions {
			lines = append(lines, EncodeQuestionLine(q))
		}
	}

	return writeLines(lines)
}

// EncodeQuestionLine сериализует вопрос без перевода строки.
func EncodeQuestionLine(q models.Question) string {
	return strings.Join([]string{q.Text, JoinList(q.Options), JoinList(q.CorrectAnswers)}, questionSeparator)
}

// DecodeQuizzes читает банк вопросов.
// Строки до первой категории и строки меньше чем из трех частей пропускаются.
// Категория без вопросов тоже регистрируется. Повторное имя категории
// заменяет вопросы прежнего блока, сохраняя его позицию.
func DecodeQuizzes(r io.Reader) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	index := make(map[string]int)

	var current *models.Category

	flush := func() {
		if current == nil {
			return
		}

		if i, ok := index[current.Name]; ok {
			categories[i].Questions = current.Questions
		} else {
			index[current.Name] = len(categories)
			categories = append(categories, *current)
		}

		current = nil
	}

	err := scanLines(r, func(lineNo int, line string) {
		if strings.HasPrefix(line, CategoryPrefix) {
			flush()
			current = &models.Category{
				Name:      strings.TrimSpace(line[len(CategoryPrefix):]),
				Questions: make([]models.Question, 0),
			}
			return
		}

		if current == nil {
			skipLine("question", lineNo, fmt.Errorf("%w, question outside of category", ErrMalformedLine))
			return
		}

		q, err := DecodeQuestionLine(line)
		if err != nil {
			skipLine("question", lineNo, err)
			return
		}

		current.Questions = append(current.Questions, q)
	})
	if err != nil {
		return nil, err
	}

	flush()

	return categories, nil
}

// DecodeQuestionLine разбирает строку вопроса. Части после третьей игнорируются.
func DecodeQuestionLine(line string) (models.Question, error) {
	parts := strings.Split(line, questionSeparator)
	if len(parts) < 3 {
		return models.Question{}, fmt.Errorf("%w, need at least 3 parts, got %d", ErrMalformedLine, len(parts))
	}

	return models.Question{
		Text:           parts[0],
		Options:        SplitList(parts[1]),
		CorrectAnswers: SplitList(parts[2]),
	}, nil
}
