package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letsssgooo/quizApp/internal/auth"
	"github.com/letsssgooo/quizApp/internal/domain/models"
	"github.com/letsssgooo/quizApp/internal/quiz"
	"github.com/letsssgooo/quizApp/internal/repository"
	"github.com/letsssgooo/quizApp/internal/storage"
)

type testApp struct {
	repo *repository.Repository
	st   *storage.MemoryStorage
	out  *bytes.Buffer
}

func runApp(t *testing.T, st *storage.MemoryStorage, lines ...string) *testApp {
	t.Helper()

	color.NoColor = true

	ctx := context.Background()
	repo := repository.New(st)
	require.NoError(t, repo.LoadAll(ctx))

	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")

	app := NewApp(in, out, repo, auth.New(repo), quiz.NewEngine(repo, st), st)
	require.NoError(t, app.Run(ctx))

	return &testApp{repo: repo, st: st, out: out}
}

// authoringInput возвращает ввод для создания категории: вопрос i имеет
// варианты a;b;c и правильные ответы a;b.
func authoringInput(category string) []string {
	lines := []string{"3", "1", category}
	for i := 0; i < models.QuestionsPerCategory; i++ {
		lines = append(lines, "question", "a;b;c", "a;b")
	}

	return append(lines, "3")
}

func TestApp_RegisterLoginAndQuiz(t *testing.T) {
	st := storage.NewMemoryStorage()

	lines := []string{"2", "alice", "secret", "1999-03-14"}
	lines = append(lines, authoringInput("Letters")...)
	lines = append(lines, "1", "alice", "secret", "1", "Letters")
	for i := 0; i < models.QuestionsPerCategory; i++ {
		if i%2 == 0 {
			lines = append(lines, "2;1")
		} else {
			lines = append(lines, "1;1")
		}
	}
	lines = append(lines, "2", "3", "6", "7", "4")

	app := runApp(t, st, lines...)
	output := app.out.String()

	assert.Contains(t, output, msgRegistered)
	assert.Contains(t, output, msgQuizCreated)
	assert.Contains(t, output, msgLoginSuccess)
	assert.Contains(t, output, "Вы ответили правильно на 10 из 20 вопросов.")
	assert.Contains(t, output, "Result: Incorrect")
	assert.Contains(t, output, msgGoodbye)

	results := app.repo.ResultsFor("alice")
	require.Len(t, results, 1)
	assert.Equal(t, 10, results[0].Score)
	assert.Equal(t, "Letters", results[0].Category)

	saved, err := st.LoadResults(context.Background())
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

func TestApp_DuplicateRegistration(t *testing.T) {
	st := storage.NewMemoryStorage()

	app := runApp(t, st,
		"2", "alice", "first", "1999-03-14",
		"2", "alice",
		"1", "alice", "first", "7",
		"4",
	)

	assert.Contains(t, app.out.String(), msgLoginTaken)
	assert.Contains(t, app.out.String(), msgLoginSuccess)
}

func TestApp_InvalidDateAndCredentials(t *testing.T) {
	st := storage.NewMemoryStorage()

	app := runApp(t, st,
		"2", "bob", "pw", "not-a-date",
		"1", "bob", "pw",
		"9",
		"4",
	)

	output := app.out.String()
	assert.Contains(t, output, msgInvalidDate)
	assert.Contains(t, output, msgInvalidCredentials)
	assert.Contains(t, output, msgInvalidOption)
	assert.Equal(t, 1, st.SaveCount("users"))
}

func TestApp_InvalidCategoryAbortsQuiz(t *testing.T) {
	st := storage.NewMemoryStorage()

	app := runApp(t, st,
		"2", "alice", "secret", "1999-03-14",
		"1", "alice", "secret", "1", "History", "6", "7",
		"4",
	)

	output := app.out.String()
	assert.Contains(t, output, msgInvalidCategory)
	assert.Contains(t, output, msgNoTranscript)
	assert.Empty(t, app.repo.ResultsFor("alice"))
}

func TestApp_SettingsAndProfile(t *testing.T) {
	st := storage.NewMemoryStorage()

	app := runApp(t, st,
		"2", "alice", "secret", "1999-03-14",
		"1", "alice", "secret",
		"5", "1", "changed",
		"5", "2", "not-a-date",
		"5", "2", "1985-07-01",
		"4",
		"7",
		"4",
	)

	output := app.out.String()
	assert.Contains(t, output, msgPasswordUpdated)
	assert.Contains(t, output, msgInvalidDate)
	assert.Contains(t, output, msgDateUpdated)
	assert.Contains(t, output, "Дата рождения: 1985-07-01")

	_, err := auth.New(app.repo).Login("alice", "changed")
	assert.NoError(t, err)
}

func TestApp_EditQuizKeepsBlankFields(t *testing.T) {
	st := storage.NewMemoryStorage()

	lines := authoringInput("Letters")
	lines = append(lines, "3", "2", "Letters", "renamed", "", "x;y")
	for i := 1; i < models.QuestionsPerCategory; i++ {
		lines = append(lines, "", " ", "")
	}
	lines = append(lines, "3", "4")

	app := runApp(t, st, lines...)
	assert.Contains(t, app.out.String(), msgQuizUpdated)

	questions, err := app.repo.Questions("Letters")
	require.NoError(t, err)
	require.Len(t, questions, models.QuestionsPerCategory)
	assert.Equal(t, "renamed", questions[0].Text)
	assert.Equal(t, []string{"a", "b", "c"}, questions[0].Options)
	assert.Equal(t, []string{"x", "y"}, questions[0].CorrectAnswers)
	assert.Equal(t, "question", questions[1].Text)
}

func TestApp_EndOfInputSavesEverything(t *testing.T) {
	st := storage.NewMemoryStorage()

	app := runApp(t, st, "2", "alice", "secret", "1999-03-14", "1", "alice", "secret")

	assert.Contains(t, app.out.String(), msgGoodbye)
	assert.Equal(t, 1, st.SaveCount("quizzes"))
	assert.Equal(t, 1, st.SaveCount("results"))
	assert.Equal(t, 2, st.SaveCount("users"))
}
