package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/letsssgooo/quizApp/internal/domain/models"
	"github.com/letsssgooo/quizApp/internal/storage"
	"github.com/letsssgooo/quizApp/internal/storage/codec"
)

// Repository хранит пользователей, категории и результаты в памяти.
// Каждая изменяющая операция сразу сохраняет свою коллекцию в storage.
// Репозиторий не потокобезопасен: все вызовы идут из одного цикла меню.
type Repository struct {
	st storage.Storage

	users     map[string]*models.User
	userOrder []string

	quizzes       map[string][]models.Question
	categoryOrder []string

	results []models.QuizResult
}

// QuestionEdit содержит введенные пользователем новые значения полей вопроса.
// Пустое или пробельное значение оставляет поле без изменений.
type QuestionEdit struct {
	Text           string
	Options        string
	CorrectAnswers string
}

// New создаёт пустой Repository поверх st.
func New(st storage.Storage) *Repository {
	r := &Repository{st: st}
	r.reset()

	return r
}

func (r *Repository) reset() {
	r.users = make(map[string]*models.User)
	r.userOrder = make([]string, 0)
	r.quizzes = make(map[string][]models.Question)
	r.categoryOrder = make([]string, 0)
	r.results = make([]models.QuizResult, 0)
}

// LoadAll заменяет состояние содержимым storage. Повторный вызов дает то же состояние.
func (r *Repository) LoadAll(ctx context.Context) error {
	users, err := r.st.LoadUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	categories, err := r.st.LoadQuizzes(ctx)
	if err != nil {
		return fmt.Errorf("failed to load quizzes: %w", err)
	}

	results, err := r.st.LoadResults(ctx)
	if err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}

	r.reset()

	for _, u := range users {
		r.putUser(u)
	}

	for _, c := range categories {
		r.putCategory(c.Name, c.Questions)
	}

	r.results = append(r.results, results...)

	slog.Info("repository loaded",
		"users", len(r.userOrder),
		"categories", len(r.categoryOrder),
		"results", len(r.results),
	)

	return nil
}

// SaveUsers перезаписывает пользователей в storage.
func (r *Repository) SaveUsers(ctx context.Context) error {
	users := make([]models.User, 0, len(r.userOrder))
	for _, login := range r.userOrder {
		users = append(users, *r.users[login])
	}

	if err := r.st.SaveUsers(ctx, users); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}

	return nil
}

// SaveQuizzes перезаписывает категории в storage.
func (r *Repository) SaveQuizzes(ctx context.Context) error {
	categories := make([]models.Category, 0, len(r.categoryOrder))
	for _, name := range r.categoryOrder {
		categories = append(categories, models.Category{Name: name, Questions: r.quizzes[name]})
	}

	if err := r.st.SaveQuizzes(ctx, categories); err != nil {
		return fmt.Errorf("failed to save quizzes: %w", err)
	}

	return nil
}

// SaveResults перезаписывает результаты в storage.
func (r *Repository) SaveResults(ctx context.Context) error {
	if err := r.st.SaveResults(ctx, r.results); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	return nil
}

// SaveAll сохраняет все три коллекции. Вызывается при выходе.
func (r *Repository) SaveAll(ctx context.Context) error {
	if err := r.SaveUsers(ctx); err != nil {
		return err
	}

	if err := r.SaveQuizzes(ctx); err != nil {
		return err
	}

	return r.SaveResults(ctx)
}

// Register добавляет пользователя и сохраняет пользователей.
func (r *Repository) Register(ctx context.Context, login, password string, dateOfBirth time.Time) error {
	if _, ok := r.users[login]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateLogin, login)
	}

	r.putUser(models.User{Login: login, Password: password, DateOfBirth: dateOfBirth})
	slog.Info("user registered", "login", login)

	return r.SaveUsers(ctx)
}

// Authenticate возвращает пользователя при точном совпадении логина и пароля.
func (r *Repository) Authenticate(login, password string) (models.User, error) {
	u, ok := r.users[login]
	if !ok || u.Password != password {
		return models.User{}, ErrInvalidCredentials
	}

	return *u, nil
}

// User возвращает пользователя по логину.
func (r *Repository) User(login string) (models.User, error) {
	u, ok := r.users[login]
	if !ok {
		return models.User{}, fmt.Errorf("%w: %s", ErrUserNotFound, login)
	}

	return *u, nil
}

// ChangePassword меняет пароль и сохраняет пользователей.
func (r *Repository) ChangePassword(ctx context.Context, login, password string) error {
	u, ok := r.users[login]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUserNotFound, login)
	}

	u.Password = password

	return r.SaveUsers(ctx)
}

// ChangeDateOfBirth меняет дату рождения и сохраняет пользователей.
func (r *Repository) ChangeDateOfBirth(ctx context.Context, login string, dateOfBirth time.Time) error {
	u, ok := r.users[login]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUserNotFound, login)
	}

	u.DateOfBirth = dateOfBirth

	return r.SaveUsers(ctx)
}

// CreateCategory добавляет категорию ровно из QuestionsPerCategory вопросов и сохраняет квизы.
func (r *Repository) CreateCategory(ctx context.Context, name string, questions []models.Question) error {
	if _, ok := r.quizzes[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCategory, name)
	}

	if len(questions) != models.QuestionsPerCategory {
		return fmt.Errorf("%w, need %d, got %d", ErrQuestionCount, models.QuestionsPerCategory, len(questions))
	}

	r.putCategory(name, questions)
	slog.Info("category created", "category", name)

	return r.SaveQuizzes(ctx)
}

// EditCategory применяет edits к вопросам категории по порядку и сохраняет квизы.
// Количество вопросов не меняется, лишние edits игнорируются.
func (r *Repository) EditCategory(ctx context.Context, name string, edits []QuestionEdit) error {
	questions, ok := r.quizzes[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
	}

	for i := range questions {
		if i >= len(edits) {
			break
		}

		edit := edits[i]
		if strings.TrimSpace(edit.Text) != "" {
			questions[i].Text = edit.Text
		}

		if strings.TrimSpace(edit.Options) != "" {
			questions[i].Options = codec.SplitList(edit.Options)
		}

		if strings.TrimSpace(edit.CorrectAnswers) != "" {
			questions[i].CorrectAnswers = codec.SplitList(edit.CorrectAnswers)
		}
	}

	slog.Info("category edited", "category", name)

	return r.SaveQuizzes(ctx)
}

// Categories возвращает имена категорий в порядке добавления.
func (r *Repository) Categories() []string {
	return append([]string(nil), r.categoryOrder...)
}

// Questions возвращает копию вопросов категории.
func (r *Repository) Questions(name string) ([]models.Question, error) {
	questions, ok := r.quizzes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
	}

	return cloneQuestions(questions), nil
}

// AllQuestions возвращает копию вопросов всех категорий подряд.
func (r *Repository) AllQuestions() []models.Question {
	all := make([]models.Question, 0)
	for _, name := range r.categoryOrder {
		all = append(all, cloneQuestions(r.quizzes[name])...)
	}

	return all
}

// AppendResult добавляет результат в конец и сохраняет результаты.
func (r *Repository) AppendResult(ctx context.Context, result models.QuizResult) error {
	r.results = append(r.results, result)
	slog.Info("result appended", "login", result.UserLogin, "score", result.Score, "category", result.Category)

	return r.SaveResults(ctx)
}

// ResultsFor возвращает результаты пользователя в порядке добавления.
func (r *Repository) ResultsFor(login string) []models.QuizResult {
	own := make([]models.QuizResult, 0)
	for _, result := range r.results {
		if result.UserLogin == login {
			own = append(own, result)
		}
	}

	return own
}

// Top возвращает до limit лучших результатов по убыванию счета.
// При равном счете сохраняется порядок добавления.
func (r *Repository) Top(limit int) []models.QuizResult {
	top := append(make([]models.QuizResult, 0, len(r.results)), r.results...)

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Score > top[j].Score
	})

	if limit >= 0 && limit < len(top) {
		top = top[:limit]
	}

	return top
}

func (r *Repository) putUser(u models.User) {
	if existing, ok := r.users[u.Login]; ok {
		*existing = u
		return
	}

	r.users[u.Login] = &u
	r.userOrder = append(r.userOrder, u.Login)
}

func (r *Repository) putCategory(name string, questions []models.Question) {
	if _, ok := r.quizzes[name]; !ok {
		r.categoryOrder = append(r.categoryOrder, name)
	}

	r.quizzes[name] = cloneQuestions(questions)
}

func cloneQuestions(questions []models.Question) []models.Question {
	cloned := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		cloned = append(cloned, q.Clone())
	}

	return cloned
}
