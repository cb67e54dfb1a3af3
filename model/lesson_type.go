package model

import (
	"fmt"
	"strconv"
	"strings"
)

// LessonType тип занятия, на сайте кодируется классом lesson-color-type-N
type LessonType int

const (
	LessonTypeLecture LessonType = iota + 1
	LessonTypeLaboratory
	LessonTypePractice
	LessonTypeOther
)

const lessonTypeClassPrefix = "lesson-color-type-"

var lessonTypeIcons = map[LessonType]string{
	LessonTypeLecture:    "📗",
	LessonTypeLaboratory: "📘",
	LessonTypePractice:   "📕",
	LessonTypeOther:      "📙",
}

var lessonTypeNames = map[LessonType]string{
	LessonTypeLecture:    "lecture",
	LessonTypeLaboratory: "laboratory",
	LessonTypePractice:   "practice",
	LessonTypeOther:      "other",
}

// LessonTypeFromClass получить тип занятия по CSS классу
func LessonTypeFromClass(class string) (LessonType, error) {
	if !strings.HasPrefix(class, lessonTypeClassPrefix) {
		return 0, fmt.Errorf("unknown lesson class %q", class)
	}
	n, err := strconv.Atoi(strings.TrimPrefix(class, lessonTypeClassPrefix))
	if err != nil {
		return 0, fmt.Errorf("unknown lesson class %q", class)
	}
	t := LessonType(n)
	if !t.Valid() {
		return 0, fmt.Errorf("unknown lesson class %q", class)
	}
	return t, nil
}

func (t LessonType) Valid() bool {
	_, ok := lessonTypeIcons[t]
	return ok
}

// Icon иконка, которая ставится перед названием предмета
func (t LessonType) Icon() string {
	return lessonTypeIcons[t]
}

// Label название предмета с иконкой
func (t LessonType) Label(subject string) string {
	return t.Icon() + subject
}

func (t LessonType) String() string {
	if name, ok := lessonTypeNames[t]; ok {
		return name
	}
	return "unknown"
}
