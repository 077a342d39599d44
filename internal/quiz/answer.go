package quiz

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/letsssgooo/quizApp/internal/domain/models"
)

const answerSeparator = ";"

// ParseAnswer переводит ответ вида "1;3" в тексты вариантов.
// Нечисловые номера и номера вне [1, len(Options)] молча отбрасываются,
// повторы сохраняются.
func ParseAnswer(q models.Question, answer string) []string {
	tokens := strings.Split(answer, answerSeparator)
	selected := make([]string, 0, len(tokens))

	for _, token := range tokens {
		idx, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil || idx < 1 || idx > len(q.Options) {
			continue
		}

		selected = append(selected, q.Options[idx-1])
	}

	return selected
}

// IsCorrect сравнивает выбранные варианты с правильными без учета порядка.
// Сравниваются отсортированные списки целиком, поэтому повтор варианта делает ответ неверным.
func IsCorrect(q models.Question, selected []string) bool {
	got := slices.Clone(selected)
	want := slices.Clone(q.CorrectAnswers)

	sort.Strings(got)
	sort.Strings(want)

	return slices.Equal(got, want)
}
