package config

import (
	"time"

	"github.com/notaneet/rasp63/model"
	"github.com/notaneet/rasp63/utils"
)

// FilterConfig фильтры для выгрузки расписания
type FilterConfig struct {
	SubjectMatcher Matcher
	TeacherMatcher Matcher
	PlaceMatcher   Matcher

	Interval string

	//Ленивая загрузка
	StartTime *time.Time
	EndTime   *time.Time
}

func (cfg *FilterConfig) Init() error {
	for _, m := range []*Matcher{&cfg.SubjectMatcher, &cfg.TeacherMatcher, &cfg.PlaceMatcher} {
		if err := m.Compile(); err != nil {
			return err
		}
	}
	if cfg.Interval != "" && cfg.StartTime == nil && cfg.EndTime == nil {
		start, end, err := utils.GetInterval(cfg.Interval)
		if err != nil {
			return err
		}
		cfg.StartTime, cfg.EndTime = start, end
	}
	return nil
}

// InInterval попадает ли дата в интервал
func (cfg *FilterConfig) InInterval(date time.Time) bool {
	if cfg.StartTime != nil && utils.DateBefore(date, *cfg.StartTime) {
		return false
	}
	if cfg.EndTime != nil && utils.DateBefore(*cfg.EndTime, date) {
		return false
	}
	return true
}

// Предмет сравнивается без иконки типа занятия
func (cfg *FilterConfig) matchLesson(lesson model.Lesson) bool {
	return cfg.SubjectMatcher.Match(lesson.Title()) &&
		cfg.TeacherMatcher.Match(lesson.Teacher) &&
		cfg.PlaceMatcher.Match(lesson.Place)
}

// Apply отфильтровать неделю. Пары остаются на своих местах, отфильтрованные занятия просто пропадают из них.
func (cfg *FilterConfig) Apply(week model.Week) model.Week {
	ret := week
	ret.Days = make([]model.Day, 0, len(week.Days))
	for _, day := range week.Days {
		if !cfg.InInterval(day.Date) {
			continue
		}
		lessons := make([]model.LessonSlot, len(day.Lessons))
		for i, slot := range day.Lessons {
			lessons[i] = model.LessonSlot{}
			for _, lesson := range slot {
				if cfg.matchLesson(lesson) {
					lessons[i] = append(lessons[i], lesson)
				}
			}
		}
		ret.Days = append(ret.Days, model.Day{Date: day.Date, Lessons: lessons})
	}
	return ret
}
