package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/notaneet/rasp63/utils"
)

var ErrBadFileName = errors.New("unexpected schedule file name")

// ParseDayFileName достать дату из имени shedule-{месяц}-{день}-{год}.json
func ParseDayFileName(name string) (time.Time, error) {
	if !strings.HasPrefix(name, dayFilePrefix) || !strings.HasSuffix(name, dayFileExt) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrBadFileName, name)
	}
	tokens := strings.Split(strings.TrimSuffix(strings.TrimPrefix(name, dayFilePrefix), dayFileExt), "-")
	if len(tokens) != 3 {
		return time.Time{}, fmt.Errorf("%w: %s", ErrBadFileName, name)
	}

	var parts [3]int
	for i, token := range tokens {
		n, err := strconv.Atoi(token)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %s", ErrBadFileName, name)
		}
		parts[i] = n
	}
	month, day, year := parts[0], parts[1], parts[2]

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// time.Date нормализует 31 февраля в март, такие имена считаем кривыми
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %s", ErrBadFileName, name)
	}
	return date, nil
}

// Sweep удалить файлы дней строго раньше cutoff, вернёт пути удалённых файлов.
// Сначала разбираются все имена, поэтому при кривом имени ничего не удаляется.
func (s *Store) Sweep(cutoff time.Time) ([]string, error) {
	entries, err := os.ReadDir(s.groupDir())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.groupDir(), err)
	}

	var stale []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		date, err := ParseDayFileName(entry.Name())
		if err != nil {
			return nil, err
		}
		if utils.DateBefore(date, cutoff) {
			stale = append(stale, filepath.Join(s.groupDir(), entry.Name()))
		}
	}

	deleted := make([]string, 0, len(stale))
	for _, path := range stale {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return deleted, fmt.Errorf("remove %s: %w", path, err)
		}
		deleted = append(deleted, path)
	}
	return deleted, nil
}
