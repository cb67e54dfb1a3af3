package converter

import (
	"fmt"
	"strconv"

	"github.com/tealeg/xlsx/v3"

	"github.com/notaneet/rasp63/model"
)

// XLSXConverter таблица на неделю: первый столбец - время пар, дальше по столбцу на день
type XLSXConverter struct{}

func (x XLSXConverter) Write(week model.Week, out string) error {
	if out == "" {
		return fmt.Errorf("-out can not be empty")
	}

	f := xlsx.NewFile()
	sh, err := f.AddSheet(sheetName(week))
	if err != nil {
		return err
	}

	wrap := xlsx.NewStyle()
	wrap.Alignment.WrapText = true
	wrap.Alignment.Vertical = "top"
	wrap.ApplyAlignment = true

	header := sh.AddRow()
	header.AddCell().SetString("Время")
	for _, day := range week.Days {
		header.AddCell().SetString(dayTitle(day))
	}

	for period := 0; period < periodCount(week); period++ {
		row := sh.AddRow()
		row.AddCell().SetString(periodTitle(week.TimeTable, period))
		for _, day := range week.Days {
			cell := row.AddCell()
			if period < len(day.Lessons) {
				cell.SetString(slotText(day.Lessons[period]))
			}
			cell.SetStyle(wrap)
		}
	}

	return f.Save(out)
}

func sheetName(week model.Week) string {
	name := week.Group
	if week.Number > 0 {
		name += " неделя " + strconv.Itoa(week.Number)
	}
	if name == "" {
		name = "Расписание"
	}
	// в xlsx имя листа не длиннее 31 символа
	if r := []rune(name); len(r) > 31 {
		name = string(r[:31])
	}
	return name
}
