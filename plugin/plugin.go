package plugin

import "github.com/notaneet/rasp63/model"

type Plugin interface {
	GetInstitution() string
	// GetTimetable расписание на неделю из конфига
	GetTimetable() (model.Week, error)
	// GetWeek расписание на конкретную неделю
	GetWeek(week int) (model.Week, error)
}
