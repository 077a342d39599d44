package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Форматы файлов построчные, разделители не экранируются.
// Разделитель внутри пользовательского текста ломает разбор строки.
const (
	fieldSeparator    = ","
	questionSeparator = "|"
	listSeparator     = ";"

	// CategoryPrefix начинает блок категории в файле квизов.
	CategoryPrefix = "Category:"

	// DateLayout - формат даты рождения в файле пользователей.
	DateLayout = "2006-01-02"

	// DateTimeLayout - формат даты результата, точность до секунды.
	DateTimeLayout = "2006-01-02 15:04:05"
)

// ErrMalformedLine возвращается для строки, которую нельзя разобрать.
// При загрузке такие строки пропускаются.
var ErrMalformedLine = errors.New("malformed record line")

// ErrInvalidDate возвращается, если строку не удалось разобрать как дату.
var ErrInvalidDate = errors.New("invalid date")

const maxLineSize = 1024 * 1024

// ParseDate разбирает дату в произвольном распространенном формате в локальной зоне.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w, empty string", ErrInvalidDate)
	}

	// dateparse читает строку из одних цифр как год или unix-время.
	if strings.IndexFunc(raw, func(r rune) bool { return r < '0' || r > '9' }) < 0 {
		return time.Time{}, fmt.Errorf("%w, %q: digits only", ErrInvalidDate, raw)
	}

	date, err := dateparse.ParseIn(raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w, %q: %v", ErrInvalidDate, raw, err)
	}

	return date, nil
}

// SplitList делит список вариантов по ';' без обрезки пробелов, как при чтении файла.
func SplitList(raw string) []string {
	return strings.Split(raw, listSeparator)
}

// JoinList склеивает список вариантов через ';'.
func JoinList(items []string) string {
	return strings.Join(items, listSeparator)
}

// scanLines вызывает fn для каждой строки r с номером строки (с единицы).
func scanLines(r io.Reader, fn func(lineNo int, line string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fn(lineNo, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read records: %w", err)
	}

	return nil
}

func skipLine(kind string, lineNo int, err error) {
	slog.Debug("skipping record line", "kind", kind, "line", lineNo, "err", err)
}

func writeLines(lines []string) []byte {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return []byte(b.String())
}
