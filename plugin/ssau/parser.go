package ssau

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/notaneet/rasp63/model"
	"github.com/notaneet/rasp63/utils"
)

// ErrMalformedPage страница не похожа на расписание (нет нужного тега, кривая дата и т.д.)
var ErrMalformedPage = errors.New("malformed schedule page")

const (
	itemsSelector      = "div.schedule__items"
	dateSelector       = "div.schedule__head-date"
	timeSelector       = "div.schedule__time"
	itemSelector       = "div.schedule__item"
	headClass          = "schedule__head"
	lessonSelector     = "div.schedule__lesson"
	disciplineSelector = "div.schedule__discipline"
	teacherSelector    = "div.schedule__teacher"
	placeSelector      = "div.schedule__place"
	groupsSelector     = "div.schedule__groups"
	commentSelector    = "div.schedule__comment"
)

// Если в аудитории есть ON, то пара онлайн
const onlineMarker = "ON"

// Потоки пишутся только если там есть слово "группы", иначе там номер своей группы
const groupsMarker = "группы"

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedPage, fmt.Sprintf(format, args...))
}

// Parse спарсить страницу расписания на неделю.
// attachments - доп. информация о преподавателях по фамилии, может быть nil.
func Parse(markup string, attachments map[string]string) ([]model.Day, model.TimeTable, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedPage, err)
	}

	items := doc.Find(itemsSelector).First()
	if items.Length() == 0 {
		return nil, nil, malformed("no %s", itemsSelector)
	}

	dates, err := parseDates(items)
	if err != nil {
		return nil, nil, err
	}

	timetable, err := parseTimes(items)
	if err != nil {
		return nil, nil, err
	}

	lessons, err := parseLessons(items, attachments)
	if err != nil {
		return nil, nil, err
	}

	if len(dates) != model.DaysPerWeek {
		return nil, nil, malformed("expected %d dates, got %d", model.DaysPerWeek, len(dates))
	}
	if periods := len(lessons[0]); periods == 0 || periods != len(timetable) {
		return nil, nil, malformed("%d lesson rows for %d periods", periods, len(timetable))
	}

	days := make([]model.Day, model.DaysPerWeek)
	for i := range days {
		days[i] = model.Day{Date: dates[i], Lessons: lessons[i]}
	}
	return days, timetable, nil
}

// Даты в шапке, по одной на столбец (дд.мм.гггг)
func parseDates(items *goquery.Selection) (dates []time.Time, err error) {
	items.Find(dateSelector).EachWithBreak(func(i int, s *goquery.Selection) bool {
		date, _err := utils.ParseDate(s.Text(), time.Local)
		if _err != nil {
			err = malformed("date %q: %v", s.Text(), _err)
			return false
		}
		dates = append(dates, date)
		return true
	})
	return dates, err
}

// Время пар, в первом дочернем теге начало, во втором конец
func parseTimes(items *goquery.Selection) (timetable model.TimeTable, err error) {
	timetable = model.TimeTable{}
	items.Find(timeSelector).EachWithBreak(func(i int, s *goquery.Selection) bool {
		children := s.Children()
		if children.Length() < 2 {
			err = malformed("period %d has no begin/end", i+1)
			return false
		}

		begin, _err := model.ParseClock(children.Eq(0).Text())
		if _err != nil {
			err = malformed("period %d: %v", i+1, _err)
			return false
		}
		end, _err := model.ParseClock(children.Eq(1).Text())
		if _err != nil {
			err = malformed("period %d: %v", i+1, _err)
			return false
		}

		timetable = append(timetable, model.Period{Begin: begin, End: end})
		return true
	})
	return timetable, err
}

// Спарсить все пары. Клетки идут построчно: шесть подряд - одна пара во все дни недели,
// поэтому в конце строки разворачиваются в столбцы (дни).
func parseLessons(items *goquery.Selection, attachments map[string]string) ([][]model.LessonSlot, error) {
	cells := items.Find(itemSelector).Not("." + headClass)
	if cells.Length()%model.DaysPerWeek != 0 {
		return nil, malformed("%d lesson cells is not a multiple of %d", cells.Length(), model.DaysPerWeek)
	}

	var rows [][]model.LessonSlot
	var row []model.LessonSlot
	var err error
	cells.EachWithBreak(func(i int, cell *goquery.Selection) bool {
		slot, _err := parseSlot(cell, attachments)
		if _err != nil {
			err = fmt.Errorf("cell %d: %w", i, _err)
			return false
		}

		row = append(row, slot)
		if len(row) == model.DaysPerWeek {
			rows = append(rows, row)
			row = nil
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	days := make([][]model.LessonSlot, model.DaysPerWeek)
	for day := range days {
		days[day] = make([]model.LessonSlot, 0, len(rows))
	}
	for _, row := range rows {
		for day, slot := range row {
			days[day] = append(days[day], slot)
		}
	}
	return days, nil
}

// Одна клетка - одна пара, в ней может быть несколько занятий (по подгруппам)
func parseSlot(cell *goquery.Selection, attachments map[string]string) (model.LessonSlot, error) {
	slot := model.LessonSlot{}
	var err error
	cell.Find(lessonSelector).EachWithBreak(func(i int, s *goquery.Selection) bool {
		lesson, _err := parseLesson(s, attachments)
		if _err != nil {
			err = _err
			return false
		}
		slot = append(slot, lesson)
		return true
	})
	return slot, err
}

func parseLesson(s *goquery.Selection, attachments map[string]string) (model.Lesson, error) {
	discipline, err := find(s, disciplineSelector)
	if err != nil {
		return model.Lesson{}, err
	}
	teacher, err := find(s, teacherSelector)
	if err != nil {
		return model.Lesson{}, err
	}
	place, err := find(s, placeSelector)
	if err != nil {
		return model.Lesson{}, err
	}
	groups, err := find(s, groupsSelector)
	if err != nil {
		return model.Lesson{}, err
	}
	comment, err := find(s, commentSelector)
	if err != nil {
		return model.Lesson{}, err
	}

	// Тип занятия зашит в последний класс дисциплины
	classes := strings.Fields(discipline.AttrOr("class", ""))
	lessonType, err := model.LessonTypeFromClass(classes[len(classes)-1])
	if err != nil {
		return model.Lesson{}, malformed("%v", err)
	}

	lesson := model.Lesson{
		Subject: lessonType.Label(utils.RemoveSpaces(discipline.Text())),
		Type:    lessonType,
	}

	if name := utils.RemoveSpaces(teacher.Text()); name != "" {
		lesson.Teacher = name
		if info, ok := attachments[utils.FirstWord(name)]; ok {
			lesson.Attachment = info
		}
	}

	if placeText := utils.RemoveSpaces(place.Text()); strings.Contains(placeText, onlineMarker) {
		lesson.Online = true
	} else {
		lesson.Place = placeText
	}

	if groupsText := utils.RemoveSpaces(groups.Text()); strings.Contains(groupsText, groupsMarker) {
		lesson.Groups = groupsText
	}

	lesson.Comment = utils.RemoveSpaces(comment.Text())

	return lesson, nil
}

func find(s *goquery.Selection, selector string) (*goquery.Selection, error) {
	found := s.Find(selector).First()
	if found.Length() == 0 {
		return nil, malformed("no %s in lesson", selector)
	}
	return found, nil
}
