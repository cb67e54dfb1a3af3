package converter

import (
	"strings"

	"github.com/notaneet/rasp63/model"
)

var weekdays = [...]string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}

func dayTitle(day model.Day) string {
	return weekdays[day.Date.Weekday()] + " " + day.Date.Format("02.01.2006")
}

func lessonText(l model.Lesson) string {
	lines := []string{l.Subject}
	if l.Teacher != "" {
		lines = append(lines, l.Teacher)
	}
	if l.Online {
		lines = append(lines, "онлайн")
	} else if l.Place != "" {
		lines = append(lines, l.Place)
	}
	if l.Groups != "" {
		lines = append(lines, l.Groups)
	}
	if l.Comment != "" {
		lines = append(lines, l.Comment)
	}
	return strings.Join(lines, "\n")
}

// slotText все занятия пары, подгруппы разделены пустой строкой
func slotText(slot model.LessonSlot) string {
	texts := make([]string, 0, len(slot))
	for _, l := range slot {
		texts = append(texts, lessonText(l))
	}
	return strings.Join(texts, "\n\n")
}

func periodTitle(timetable model.TimeTable, i int) string {
	if i < len(timetable) {
		return timetable[i].String()
	}
	return ""
}

// periodCount сколько строк нужно под пары
func periodCount(week model.Week) int {
	n := len(week.TimeTable)
	for _, day := range week.Days {
		if len(day.Lessons) > n {
			n = len(day.Lessons)
		}
	}
	return n
}
