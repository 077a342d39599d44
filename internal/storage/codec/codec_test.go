package codec

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letsssgooo/quizApp/internal/domain/models"
)

func assertUsersEqual(t *testing.T, expected, actual []models.User) {
	t.Helper()

	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.Equal(t, expected[i].Login, actual[i].Login)
		assert.Equal(t, expected[i].Password, actual[i].Password)
		assert.True(t, expected[i].DateOfBirth.Equal(actual[i].DateOfBirth),
			"date of birth %v != %v", expected[i].DateOfBirth, actual[i].DateOfBirth)
	}
}

func TestUsers_RoundTrip(t *testing.T) {
	users := []models.User{
		{Login: "alice", Password: "secret", DateOfBirth: time.Date(1999, 3, 14, 0, 0, 0, 0, time.Local)},
		{Login: "bob", Password: "qwerty", DateOfBirth: time.Date(2001, 12, 1, 0, 0, 0, 0, time.Local)},
	}

	data := EncodeUsers(users)
	assert.Equal(t, "alice,secret,1999-03-14\nbob,qwerty,2001-12-01\n", string(data))

	decoded, err := DecodeUsers(strings.NewReader(string(data)))
	require.NoError(t, err)
	assertUsersEqual(t, users, decoded)
}

func TestDecodeUsers_SkipsMalformedLines(t *testing.T) {
	data := strings.Join([]string{
		"alice,secret,1999-03-14",
		"broken line",
		"bob,qwerty,not-a-date",
		"carol,pass,2000-01-02,extra",
		"",
		"dave,pass,2002-07-08",
		"eve,pass,2000-13-45",
	}, "\n")

	users, err := DecodeUsers(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Login)
	assert.Equal(t, "dave", users[1].Login)
}

func TestDecodeUsers_DuplicateLoginKeepsPosition(t *testing.T) {
	data := "alice,old,1999-03-14\nbob,b,2000-01-01\nalice,new,1999-03-15\n"

	users, err := DecodeUsers(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Login)
	assert.Equal(t, "new", users[0].Password)
	assert.Equal(t, 15, users[0].DateOfBirth.Day())
	assert.Equal(t, "bob", users[1].Login)
}

func TestDecodeUsers_WindowsLineEndings(t *testing.T) {
	users, err := DecodeUsers(strings.NewReader("alice,secret,1999-03-14\r\nbob,pass,2000-01-01\r\n"))
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, 2000, users[1].DateOfBirth.Year())
}

func TestDecodeUserLine_Errors(t *testing.T) {
	testCases := []struct {
		name string
		line string
	}{
		{name: "too few fields", line: "alice,secret"},
		{name: "too many fields", line: "alice,secret,1999-03-14,x"},
		{name: "empty date", line: "alice,secret,"},
		{name: "bad date", line: "alice,secret,not-a-date"},
		{name: "unix timestamp", line: "alice,secret,1234567890"},
		{name: "bare year", line: "alice,secret,1999"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeUserLine(tc.line)
			assert.ErrorIs(t, err, ErrMalformedLine)
		})
	}
}

func TestQuizzes_RoundTrip(t *testing.T) {
	categories := []models.Category{
		{
			Name: "Geography",
			Questions: []models.Question{
				{Text: "Capital of France?", Options: []string{"Paris", "Rome", "Berlin"}, CorrectAnswers: []string{"Paris"}},
				{Text: "Rivers of Europe?", Options: []string{"Nile", "Danube", "Rhine"}, CorrectAnswers: []string{"Danube", "Rhine"}},
			},
		},
		{
			Name:      "Empty",
			Questions: []models.Question{},
		},
		{
			Name: "Math",
			Questions: []models.Question{
				{Text: "2+2?", Options: []string{"3", "4"}, CorrectAnswers: []string{"4"}},
			},
		},
	}

	data := EncodeQuizzes(categories)
	assert.Equal(t, "Category:Geography\n"+
		"Capital of France?|Paris;Rome;Berlin|Paris\n"+
		"Rivers of Europe?|Nile;Danube;Rhine|Danube;Rhine\n"+
		"Category:Empty\n"+
		"Category:Math\n"+
		"2+2?|3;4|4\n", string(data))

	decoded, err := DecodeQuizzes(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, categories, decoded)
}

func TestDecodeQuizzes_Blocks(t *testing.T) {
	data := strings.Join([]string{
		"orphan|a;b|a",
		"Category:   History  ",
		"Q1|a;b;c|a;c|ignored|tail",
		"too|short",
		"",
		"Category:Trailing",
	}, "\n")

	categories, err := DecodeQuizzes(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, categories, 2)

	assert.Equal(t, "History", categories[0].Name)
	require.Len(t, categories[0].Questions, 1)
	assert.Equal(t, models.Question{
		Text:           "Q1",
		Options:        []string{"a", "b", "c"},
		CorrectAnswers: []string{"a", "c"},
	}, categories[0].Questions[0])

	assert.Equal(t, "Trailing", categories[1].Name)
	assert.Empty(t, categories[1].Questions)
}

func TestDecodeQuizzes_DuplicateCategoryReplacesQuestions(t *testing.T) {
	data := "Category:A\nq1|x;y|x\nCategory:B\nq2|x;y|y\nCategory:A\nq3|x;y|x\n"

	categories, err := DecodeQuizzes(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "A", categories[0].Name)
	require.Len(t, categories[0].Questions, 1)
	assert.Equal(t, "q3", categories[0].Questions[0].Text)
	assert.Equal(t, "B", categories[1].Name)
}

func TestDecodeQuestionLine_NoTrimming(t *testing.T) {
	q, err := DecodeQuestionLine("Pick| a ;b | b ")
	require.NoError(t, err)
	assert.Equal(t, []string{" a ", "b "}, q.Options)
	assert.Equal(t, []string{" b "}, q.CorrectAnswers)
}

func TestResults_RoundTrip(t *testing.T) {
	results := []models.QuizResult{
		{UserLogin: "alice", Score: 17, Date: time.Date(2024, 5, 1, 10, 20, 30, 0, time.Local), Category: "Geography"},
		{UserLogin: "bob", Score: 0, Date: time.Date(2024, 5, 1, 10, 20, 31, 0, time.Local), Category: models.MixedCategory},
	}

	data := EncodeResults(results)
	assert.Equal(t, "alice,17,2024-05-01 10:20:30,Geography\nbob,0,2024-05-01 10:20:31,mixed\n", string(data))

	decoded, err := DecodeResults(strings.NewReader(string(data)))
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	for i := range results {
		assert.Equal(t, results[i].UserLogin, decoded[i].UserLogin)
		assert.Equal(t, results[i].Score, decoded[i].Score)
		assert.Equal(t, results[i].Category, decoded[i].Category)
		assert.True(t, results[i].Date.Equal(decoded[i].Date))
	}
}

func TestDecodeResults_SkipsMalformedLines(t *testing.T) {
	data := strings.Join([]string{
		"alice,5,2024-05-01 10:20:30,Math",
		"alice,five,2024-05-01 10:20:30,Math",
		"alice,5,not-a-date,Math",
		"alice,5,2024-05-01 10:20:30",
		"alice,5,1234567890,Math",
		"bob,7,2024-05-02 11:00:00,mixed",
	}, "\n")

	results, err := DecodeResults(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "alice", results[0].UserLogin)
	assert.Equal(t, "bob", results[1].UserLogin)
	assert.Equal(t, 7, results[1].Score)
}

func TestEncodeTranscriptEntry(t *testing.T) {
	entry := models.TranscriptEntry{
		Question: models.Question{
			Text:           "Rivers?",
			Options:        []string{"Nile", "Danube", "Rhine"},
			CorrectAnswers: []string{"Danube", "Rhine"},
		},
		Selected:  []string{"Rhine"},
		IsCorrect: false,
	}

	expected := "Question: Rivers?\n" +
		"1. Nile\n" +
		"2. Danube\n" +
		"3. Rhine\n" +
		"Your answers: Rhine\n" +
		"Correct answers: Danube, Rhine\n" +
		"Result: Incorrect\n" +
		transcriptRule + "\n"

	assert.Equal(t, expected, string(EncodeTranscriptEntry(entry)))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate(" 1999-03-14 ")
	require.NoError(t, err)
	assert.Equal(t, "1999-03-14", date.Format(DateLayout))

	_, err = ParseDate("")
	assert.ErrorIs(t, err, ErrInvalidDate)

	for _, raw := range []string{"not-a-date", "1234567890", "1999", "20000101"} {
		_, err = ParseDate(raw)
		assert.ErrorIs(t, err, ErrInvalidDate, raw)
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", " b", ""}, SplitList("a; b;"))
	assert.Equal(t, "a;b", JoinList([]string{"a", "b"}))
}
