package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"github.com/letsssgooo/quizApp/internal/auth"
	"github.com/letsssgooo/quizApp/internal/domain/models"
	"github.com/letsssgooo/quizApp/internal/quiz"
	"github.com/letsssgooo/quizApp/internal/repository"
	"github.com/letsssgooo/quizApp/internal/storage/codec"
)

// Store определяет операции репозитория, которые нужны меню.
type Store interface {
	Categories() []string
	CreateCategory(ctx context.Context, name string, questions []models.Question) error
	EditCategory(ctx context.Context, name string, edits []repository.QuestionEdit) error
	Questions(name string) ([]models.Question, error)
	ResultsFor(login string) []models.QuizResult
	Top(limit int) []models.QuizResult
	SaveAll(ctx context.Context) error
}

// TranscriptReader читает разбор последнего квиза.
type TranscriptReader interface {
	ReadTranscript(ctx context.Context) (string, error)
}

// App реализует текстовое меню поверх репозитория и движка квиза.
type App struct {
	in         *bufio.Scanner
	out        io.Writer
	store      Store
	auth       *auth.Auth
	engine     quiz.QuizEngine
	transcript TranscriptReader
}

// NewApp создаёт новое меню.
func NewApp(
	in io.Reader,
	out io.Writer,
	store Store,
	a *auth.Auth,
	engine quiz.QuizEngine,
	transcript TranscriptReader,
) *App {
	return &App{
		in:         bufio.NewScanner(in),
		out:        out,
		store:      store,
		auth:       a,
		engine:     engine,
		transcript: transcript,
	}
}

// Run крутит главное меню до выбора выхода или конца ввода,
// затем сохраняет все коллекции.
func (a *App) Run(ctx context.Context) error {
	a.println(msgWelcome)

	for {
		a.println(msgMainMenu)

		option, ok := a.prompt(msgSelectOption)
		if !ok {
			return a.exit(ctx)
		}

		switch strings.TrimSpace(option) {
		case "1":
			if !a.login(ctx) {
				return a.exit(ctx)
			}
		case "2":
			a.register(ctx)
		case "3":
			if !a.manageQuizzes(ctx) {
				return a.exit(ctx)
			}
		case "4":
			return a.exit(ctx)
		default:
			a.println(msgInvalidOption)
		}
	}
}

func (a *App) exit(ctx context.Context) error {
	a.println(msgGoodbye)

	if err := a.store.SaveAll(ctx); err != nil {
		return fmt.Errorf("failed to save on exit: %w", err)
	}

	return nil
}

// login возвращает false, если ввод закончился.
func (a *App) login(ctx context.Context) bool {
	login, ok := a.prompt(msgEnterLogin)
	if !ok {
		return false
	}

	password, ok := a.prompt(msgEnterPassword)
	if !ok {
		return false
	}

	user, err := a.auth.Login(login, password)
	if err != nil {
		a.println(msgInvalidCredentials)
		return true
	}

	a.println(msgLoginSuccess)

	return a.userMenu(ctx, user.Login)
}

func (a *App) register(ctx context.Context) {
	login, ok := a.prompt(msgEnterLogin)
	if !ok {
		return
	}

	if a.auth.LoginTaken(login) {
		a.println(msgLoginTaken)
		return
	}

	password, ok := a.prompt(msgEnterPassword)
	if !ok {
		return
	}

	dob, ok := a.prompt(msgEnterDateOfBirth)
	if !ok {
		return
	}

	err := a.auth.Register(ctx, login, password, dob)
	switch {
	case auth.IsInvalidDate(err):
		a.println(msgInvalidDate)
	case errors.Is(err, repository.ErrDuplicateLogin):
		a.println(msgLoginTaken)
	case err != nil:
		a.fail(err)
	default:
		a.println(msgRegistered)
	}
}

func (a *App) manageQuizzes(ctx context.Context) bool {
	for {
		a.println(msgManageMenu)

		option, ok := a.prompt(msgSelectOption)
		if !ok {
			return false
		}

		switch strings.TrimSpace(option) {
		case "1":
			if !a.createQuiz(ctx) {
				return false
			}
		case "2":
			if !a.editQuiz(ctx) {
				return false
			}
		case "3":
			return true
		default:
			a.println(msgInvalidOption)
		}
	}
}

func (a *App) hasCategory(name string) bool {
	for _, c := range a.store.Categories() {
		if c == name {
			return true
		}
	}

	return false
}

func (a *App) createQuiz(ctx context.Context) bool {
	category, ok := a.prompt(msgEnterCategory)
	if !ok {
		return false
	}

	if a.hasCategory(category) {
		a.println(msgCategoryExists)
		return true
	}

	questions := make([]models.Question, 0, models.QuestionsPerCategory)
	for i := 0; i < models.QuestionsPerCategory; i++ {
		a.printf("\nВопрос %d:\n", i+1)

		text, ok := a.prompt(msgEnterQuestionText)
		if !ok {
			return false
		}

		options, ok := a.prompt(msgEnterOptions)
		if !ok {
			return false
		}

		correct, ok := a.prompt(msgEnterCorrect)
		if !ok {
			return false
		}

		questions = append(questions, models.Question{
			Text:           text,
			Options:        codec.SplitList(options),
			CorrectAnswers: codec.SplitList(correct),
		})
	}

	err := a.store.CreateCategory(ctx, category, questions)
	switch {
	case errors.Is(err, repository.ErrDuplicateCategory):
		a.println(msgCategoryExists)
	case err != nil:
		a.fail(err)
	default:
		a.println(msgQuizCreated)
	}

	return true
}

func (a *App) editQuiz(ctx context.Context) bool {
	category, ok := a.prompt(msgEnterCategory)
	if !ok {
		return false
	}

	questions, err := a.store.Questions(category)
	if err != nil {
		a.println(msgCategoryMissing)
		return true
	}

	edits := make([]repository.QuestionEdit, 0, len(questions))
	for i, q := range questions {
		a.printf("\nВопрос %d: %s\n", i+1, q.Text)

		var edit repository.QuestionEdit

		if edit.Text, ok = a.prompt(msgEditText); !ok {
			return false
		}

		if edit.Options, ok = a.prompt(msgEditOptions); !ok {
			return false
		}

		if edit.CorrectAnswers, ok = a.prompt(msgEditCorrect); !ok {
			return false
		}

		edits = append(edits, edit)
	}

	if err = a.store.EditCategory(ctx, category, edits); err != nil {
		a.fail(err)
		return true
	}

	a.println(msgQuizUpdated)

	return true
}

func (a *App) userMenu(ctx context.Context, login string) bool {
	for {
		a.println(msgUserMenu)

		option, ok := a.prompt(msgSelectOption)
		if !ok {
			return false
		}

		switch strings.TrimSpace(option) {
		case "1":
			if !a.takeQuiz(ctx, login) {
				return false
			}
		case "2":
			a.showOwnResults(login)
		case "3":
			a.showTopResults()
		case "4":
			a.showProfile(login)
		case "5":
			if !a.changeSettings(ctx, login) {
				return false
			}
		case "6":
			a.showTranscript(ctx)
		case "7":
			return true
		default:
			a.println(msgInvalidOption)
		}
	}
}

func (a *App) takeQuiz(ctx context.Context, login string) bool {
	a.println(msgAvailableCategories)
	for _, c := range a.store.Categories() {
		a.println(c)
	}

	category, ok := a.prompt(msgChooseCategory)
	if !ok {
		return false
	}

	session, err := a.engine.Start(ctx, login, category)
	if errors.Is(err, quiz.ErrInvalidCategory) {
		a.println(msgInvalidCategory)
		return true
	}
	if err != nil {
		a.fail(err)
		return true
	}

	log := slog.With("session_id", session.ID)

	for {
		q, _, asking := session.CurrentQuestion()
		if !asking {
			break
		}

		a.printf("\n%s\n", q.Text)
		for i, option := range q.Options {
			a.printf("%d. %s\n", i+1, option)
		}

		answer, ok := a.prompt(msgEnterAnswers)
		if !ok {
			return false
		}

		verdict, err := a.engine.Submit(ctx, session, answer)
		if err != nil {
			log.Warn("failed to record answer", "err", err)
		}

		if verdict.Entry.IsCorrect {
			a.println(color.GreenString(msgCorrect))
		} else {
			a.println(color.RedString(msgIncorrect))
		}
	}

	summary, err := a.engine.Finish(ctx, session)
	if err != nil {
		log.Error("failed to save result", "err", err)
		a.fail(err)
	}

	a.printf(msgQuizSummary, summary.Correct, summary.Total)

	return true
}

func (a *App) showOwnResults(login string) {
	results := a.store.ResultsFor(login)
	if len(results) == 0 {
		a.println(msgNoResults)
		return
	}

	a.println(msgYourResults)
	for _, r := range results {
		a.printf("Дата: %s, Категория: %s, Счет: %d\n", r.Date.Format(codec.DateTimeLayout), r.Category, r.Score)
	}
}

func (a *App) showTopResults() {
	results := a.store.Top(models.TopResultsLimit)
	if len(results) == 0 {
		a.println(msgNoResults)
		return
	}

	a.println(msgTopResults)
	for i, r := range results {
		a.printf("%d. Пользователь: %s, Счет: %d, Категория: %s, Дата: %s\n",
			i+1, r.UserLogin, r.Score, r.Category, r.Date.Format(codec.DateTimeLayout))
	}
}

func (a *App) showProfile(login string) {
	user, err := a.auth.Profile(login)
	if err != nil {
		a.fail(err)
		return
	}

	a.printf("Логин: %s\nДата рождения: %s\n", user.Login, user.DateOfBirth.Format(codec.DateLayout))
}

func (a *App) changeSettings(ctx context.Context, login string) bool {
	a.println(msgSettingsMenu)

	option, ok := a.prompt(msgSelectOption)
	if !ok {
		return false
	}

	switch strings.TrimSpace(option) {
	case "1":
		password, ok := a.prompt(msgNewPassword)
		if !ok {
			return false
		}

		if err := a.auth.ChangePassword(ctx, login, password); err != nil {
			a.fail(err)
			return true
		}

		a.println(msgPasswordUpdated)
	case "2":
		dob, ok := a.prompt(msgEnterDateOfBirth)
		if !ok {
			return false
		}

		err := a.auth.ChangeDateOfBirth(ctx, login, dob)
		switch {
		case auth.IsInvalidDate(err):
			a.println(msgInvalidDate)
		case err != nil:
			a.fail(err)
		default:
			a.println(msgDateUpdated)
		}
	default:
		a.println(msgInvalidOption)
	}

	return true
}

func (a *App) showTranscript(ctx context.Context) {
	transcript, err := a.transcript.ReadTranscript(ctx)
	if err != nil {
		a.fail(err)
		return
	}

	if transcript == "" {
		a.println(msgNoTranscript)
		return
	}

	a.printf("%s", transcript)
}

// prompt печатает приглашение и читает строку. false - ввод закончился.
func (a *App) prompt(text string) (string, bool) {
	a.printf("%s", text)

	if !a.in.Scan() {
		return "", false
	}

	return strings.TrimSuffix(a.in.Text(), "\r"), true
}

func (a *App) fail(err error) {
	slog.Error("operation failed", "err", err)
	a.printf(msgFailure, err)
}

func (a *App) println(text string) {
	_, _ = fmt.Fprintln(a.out, text)
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
