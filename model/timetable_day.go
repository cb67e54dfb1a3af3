package model

import "time"

// DaysPerWeek на сайте всегда шесть учебных дней
const DaysPerWeek = 6

// Day модель одного учебного дня
type Day struct {
	Date    time.Time    `json:"date"`    //День, к которому относятся занятия
	Lessons []LessonSlot `json:"lessons"` //Пары по порядку, индекс совпадает с индексом в TimeTable
}

// Week расписание группы на неделю
type Week struct {
	GroupID   int       `json:"group_id"` //id группы на сайте
	Group     string    `json:"group"`    //Номер группы (например 2205-240502D)
	Number    int       `json:"week"`     //Номер недели
	Days      []Day     `json:"days"`
	TimeTable TimeTable `json:"timetable"`
}
