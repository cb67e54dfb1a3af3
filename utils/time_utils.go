package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout формат даты на сайте и во флагах
const DateLayout = "02.01.2006"

// ParseDate разобрать дату вида 20.10.2021
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
}

// Truncate оставить только календарную дату
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateBefore a раньше b по календарю (время суток не учитывается)
func DateBefore(a, b time.Time) bool {
	if a.Year() != b.Year() {
		return a.Year() < b.Year()
	}
	if a.Month() != b.Month() {
		return a.Month() < b.Month()
	}
	return a.Day() < b.Day()
}

// GetInterval разобрать интервал вида дд.мм.гггг[-дд.мм.гггг]
func GetInterval(str string) (f *time.Time, s *time.Time, err error) {
	if str == "" {
		return nil, nil, nil
	}
	spl := strings.Split(str, "-")
	if len(spl) > 2 {
		return nil, nil, fmt.Errorf("bad interval %q", str)
	}
	if spl[0] != "" {
		fS, err := ParseDate(spl[0], time.Local)
		if err != nil {
			return nil, nil, fmt.Errorf("bad interval %q: %w", str, err)
		}
		f = &fS
	}
	if len(spl) > 1 && spl[1] != "" {
		sS, err := ParseDate(spl[1], time.Local)
		if err != nil {
			return nil, nil, fmt.Errorf("bad interval %q: %w", str, err)
		}
		s = &sS
	}
	return f, s, nil
}

// WeekNumber номер недели семестра для даты now, неделя начала семестра первая
func WeekNumber(semesterStart, now time.Time) int {
	start := mondayOf(Truncate(semesterStart))
	current := mondayOf(Truncate(now.In(semesterStart.Location())))
	days := int(current.Sub(start).Hours()+12) / 24
	if days < 0 {
		return 1
	}
	return days/7 + 1
}

func mondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
