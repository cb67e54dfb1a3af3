package converter

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/notaneet/rasp63/model"
)

// TextConverter таблица в терминал (out пустой или "-") либо в текстовый файл
type TextConverter struct{}

func (c TextConverter) Write(week model.Week, out string) error {
	if out == "" {
		out = "-"
	}
	return writeOut(out, func(w io.Writer) error {
		RenderWeek(w, week)
		return nil
	})
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = true
	// заголовки как есть, без капса: "Пн 18.10.2021"
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	return t
}

func RenderWeek(w io.Writer, week model.Week) {
	t := newTable(w)
	header := table.Row{"Время"}
	for _, day := range week.Days {
		header = append(header, dayTitle(day))
	}
	t.AppendHeader(header)

	for period := 0; period < periodCount(week); period++ {
		row := table.Row{periodTitle(week.TimeTable, period)}
		for _, day := range week.Days {
			cell := ""
			if period < len(day.Lessons) {
				cell = slotText(day.Lessons[period])
			}
			row = append(row, cell)
		}
		t.AppendRow(row)
	}
	t.Render()
}

// RenderDay расписание одного дня, пустые пары пропускаются
func RenderDay(w io.Writer, day model.Day, timetable model.TimeTable) {
	t := newTable(w)
	t.SetTitle(dayTitle(day))
	t.AppendHeader(table.Row{"#", "Время", "Занятие"})
	for i, slot := range day.Lessons {
		if slot.Empty() {
			continue
		}
		t.AppendRow(table.Row{i + 1, periodTitle(timetable, i), slotText(slot)})
	}
	t.Render()
}

func RenderTimeTable(w io.Writer, timetable model.TimeTable) {
	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Начало", "Конец"})
	for i, p := range timetable {
		t.AppendRow(table.Row{i + 1, p.Begin.String(), p.End.String()})
	}
	t.Render()
}
