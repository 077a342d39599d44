package models

import (
	"time"
)

// Файл с моделями предметной области, которые доступны извне.
// Кодек читает и пишет их в текстовые файлы, репозиторий хранит их в памяти,
// движок квиза работает с вопросами и создает результаты.

// MixedCategory - псевдокатегория, для которой вопросы выбираются из всех категорий.
const MixedCategory = "mixed"

// QuestionsPerCategory - количество вопросов в новой категории.
const QuestionsPerCategory = 20

// MixedQuestionsLimit - максимум вопросов в смешанном квизе.
const MixedQuestionsLimit = 20

// TopResultsLimit - размер глобальной таблицы лучших результатов.
const TopResultsLimit = 20

// User определяет модель пользователя. Login неизменяем и уникален.
type User struct {
	Login       string
	Password    string
	DateOfBirth time.Time
}

// Question определяет вопрос с несколькими вариантами ответа.
// CorrectAnswers содержит тексты вариантов, а не их номера.
type Question struct {
	Text           string
	Options        []string
	CorrectAnswers []string
}

// Category определяет именованный список вопросов.
type Category struct {
	Name      string
	Questions []Question
}

// QuizResult определяет результат прохождения квиза. После создания не меняется.
type QuizResult struct {
	UserLogin string
	Score     int
	Date      time.Time
	Category  string
}

// Clone возвращает глубокую копию вопроса.
func (q Question) Clone() Question {
	return Question{
		Text:           q.Text,
		Options:        append([]string(nil), q.Options...),
		CorrectAnswers: append([]string(nil), q.CorrectAnswers...),
	}
}

// TranscriptEntry - запись разбора одного вопроса последнего квиза.
// Selected содержит тексты выбранных вариантов в порядке ввода.
type TranscriptEntry struct {
	Question  Question
	Selected  []string
	IsCorrect bool
}
