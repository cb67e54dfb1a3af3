package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/notaneet/rasp63/utils"
)

// Matcher фильтр по строке: либо точное совпадение, либо ~регулярка
type Matcher struct {
	MatchRaw utils.StringEnum
	Regexp   []*regexp.Regexp
}

// Compile собрать регулярки из MatchRaw, чтобы не делать это на каждом Match
func (m *Matcher) Compile() error {
	m.Regexp = m.Regexp[:0]
	for _, s := range m.MatchRaw {
		if !strings.HasPrefix(s, "~") {
			continue
		}
		re, err := regexp.Compile(s[1:])
		if err != nil {
			return fmt.Errorf("bad matcher %q: %w", s, err)
		}
		m.Regexp = append(m.Regexp, re)
	}
	return nil
}

// Empty фильтр ничего не отсекает
func (m *Matcher) Empty() bool {
	return len(m.MatchRaw) == 0
}

func (m *Matcher) Match(text string) bool {
	if m.Empty() {
		return true
	}

	for _, s := range m.MatchRaw {
		if s == text {
			return true
		}
	}
	for _, re := range m.Regexp {
		if re.MatchString(text) {
			return true
		}
	}

	return false
}
