package codec

import (
	"fmt"
	"strings"

	"github.com/letsssgooo/quizApp/internal/domain/models"
)

const (
	transcriptRule     = "----------------------------------------"
	transcriptListJoin = ", "

	// VerdictCorrect и VerdictIncorrect - итог вопроса в разборе.
	VerdictCorrect   = "Correct"
	VerdictIncorrect = "Incorrect"
)

// EncodeTranscriptEntry сериализует разбор одного вопроса вместе с разделителем.
func EncodeTranscriptEntry(e models.TranscriptEntry) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n", e.Question.Text)
	for i, option := range e.Question.Options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, option)
	}

	fmt.Fprintf(&b, "Your answers: %s\n", strings.Join(e.Selected, transcriptListJoin))
	fmt.Fprintf(&b, "Correct answers: %s\n", strings.Join(e.Question.CorrectAnswers, transcriptListJoin))
	fmt.Fprintf(&b, "Result: %s\n", Verdict(e.IsCorrect))
	b.WriteString(transcriptRule)
	b.WriteByte('\n')

	return []byte(b.String())
}

// Verdict возвращает текстовый итог для ответа.
func Verdict(isCorrect bool) string {
	if isCorrect {
		return VerdictCorrect
	}

	return VerdictIncorrect
}
