package quiz

import (
	"math/rand"

	"github.com/letsssgooo/quizApp/internal/domain/models"
)

// shuffleWithLimit перемешивает копию вопросов и возвращает первые limit.
// Если вопросов меньше limit, возвращаются все.
func shuffleWithLimit(rnd *rand.Rand, questions []models.Question, limit int) []models.Question {
	shuffled := make([]models.Question, len(questions))
	copy(shuffled, questions)

	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if limit <= 0 || limit > len(shuffled) {
		limit = len(shuffled)
	}

	return shuffled[:limit]
}
