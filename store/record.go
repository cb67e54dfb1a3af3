package store

import (
	"time"

	"github.com/notaneet/rasp63/model"
)

// RecordVersion версия формата файлов. Поднимать при любом несовместимом изменении.
const RecordVersion = 1

const recordDateLayout = "2006-01-02"

type dayRecord struct {
	Version int                `json:"version"`
	Group   string             `json:"group"`
	Date    string             `json:"date"`
	Lessons []model.LessonSlot `json:"lessons"`
}

func newDayRecord(group string, date time.Time, lessons []model.LessonSlot) dayRecord {
	if lessons == nil {
		lessons = []model.LessonSlot{}
	}
	normalized := make([]model.LessonSlot, len(lessons))
	for i, slot := range lessons {
		if slot == nil {
			slot = model.LessonSlot{}
		}
		normalized[i] = slot
	}
	return dayRecord{
		Version: RecordVersion,
		Group:   group,
		Date:    date.Format(recordDateLayout),
		Lessons: normalized,
	}
}

func (r dayRecord) day(date time.Time) model.Day {
	lessons := r.Lessons
	if lessons == nil {
		lessons = []model.LessonSlot{}
	}
	return model.Day{Date: date, Lessons: lessons}
}

type timeTableRecord struct {
	Version int             `json:"version"`
	Periods model.TimeTable `json:"periods"`
}

func newTimeTableRecord(timetable model.TimeTable) timeTableRecord {
	if timetable == nil {
		timetable = model.TimeTable{}
	}
	return timeTableRecord{Version: RecordVersion, Periods: timetable}
}
