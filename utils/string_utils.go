package utils

import (
	"regexp"
	"strings"
)

var spaceRE = regexp.MustCompile(`\s+`)

// RemoveSpaces удалить повторяющиеся пробелы и крайние пробелы
func RemoveSpaces(s string) string {
	return strings.TrimSpace(spaceRE.ReplaceAllString(s, " "))
}

// FirstWord первое слово строки (у преподавателя это фамилия)
func FirstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
