package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock время дня с точностью до минуты
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock разобрать строку вида 08:00
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return Clock{}, fmt.Errorf("bad clock %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return Clock{}, fmt.Errorf("bad clock %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return Clock{}, fmt.Errorf("bad clock %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("bad clock %q", s)
	}
	return Clock{Hour: h, Minute: m}, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Clock) UnmarshalText(text []byte) error {
	parsed, err := ParseClock(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Period время начала и конца пары
type Period struct {
	Begin Clock `json:"begin"`
	End   Clock `json:"end"`
}

func (p Period) String() string {
	return p.Begin.String() + "-" + p.End.String()
}

// TimeTable расписание звонков, общее для всех дней недели
type TimeTable []Period
