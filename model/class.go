package model

import "strings"

// Lesson модель одного занятия (одной подгруппы) в паре
type Lesson struct {
	Subject    string     `json:"lesson"`               //Название предмета с иконкой типа занятия
	Type       LessonType `json:"type"`                 //Тип занятия (лекция, лабораторная, практика, другое)
	Teacher    string     `json:"teacher,omitempty"`    //Преподаватель
	Attachment string     `json:"attachment,omitempty"` //Доп. информация о преподавателе
	Place      string     `json:"place,omitempty"`      //Корпус с аудиторией (пусто, если занятие онлайн)
	Online     bool       `json:"online,omitempty"`     //Занятие проходит дистанционно
	Groups     string     `json:"groups,omitempty"`     //Потоки групп
	Comment    string     `json:"comment,omitempty"`    //Комментарий к занятию
}

// Title название предмета без иконки
func (l Lesson) Title() string {
	if icon := l.Type.Icon(); icon != "" {
		return strings.TrimPrefix(l.Subject, icon)
	}
	return l.Subject
}

// LessonSlot все параллельные занятия одной пары. Может быть пустым.
type LessonSlot []Lesson

// Empty нет ни одного занятия
func (s LessonSlot) Empty() bool {
	return len(s) == 0
}
