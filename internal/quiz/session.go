package quiz

import (
	"fmt"

	"github.com/letsssgooo/quizApp/internal/domain/models"
)

// Begin переводит сессию из выбора категории к первому вопросу.
// Пустой список вопросов сразу ведет к подсчету.
func (s *Session) Begin(questions []models.Question) error {
	if s.State != StateSelectingCategory {
		return fmt.Errorf("cannot begin quiz in state %q", s.State)
	}

	s.Questions = questions
	s.Current = 0
	s.CorrectCount = 0
	s.Transcript = make([]models.TranscriptEntry, 0, len(questions))

	s.State = StateAskingQuestion
	if len(questions) == 0 {
		s.State = StateScoring
	}

	return nil
}

// CurrentQuestion возвращает текущий вопрос и его индекс.
func (s *Session) CurrentQuestion() (models.Question, int, bool) {
	if s.State != StateAskingQuestion {
		return models.Question{}, -1, false
	}

	return s.Questions[s.Current], s.Current, true
}

// Answer оценивает ответ на текущий вопрос и переходит к следующему
// или к подсчету после последнего. Ввод-вывод не выполняется.
func (s *Session) Answer(answer string) (Verdict, error) {
	q, idx, ok := s.CurrentQuestion()
	if !ok {
		return Verdict{}, fmt.Errorf("%w, state %q", ErrSessionFinished, s.State)
	}

	selected := ParseAnswer(q, answer)
	entry := models.TranscriptEntry{
		Question:  q,
		Selected:  selected,
		IsCorrect: IsCorrect(q, selected),
	}

	if entry.IsCorrect {
		s.CorrectCount++
	}

	s.Transcript = append(s.Transcript, entry)
	s.Current++

	if s.Current >= len(s.Questions) {
		s.State = StateScoring
	}

	return Verdict{
		QuestionIdx: idx,
		Entry:       entry,
		Next:        s.State,
	}, nil
}

// Total возвращает количество вопросов сессии.
func (s *Session) Total() int {
	return len(s.Questions)
}
