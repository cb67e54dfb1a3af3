package commands

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/notaneet/rasp63/converter"
	"github.com/notaneet/rasp63/model"
	"github.com/notaneet/rasp63/store"
	"github.com/notaneet/rasp63/utils"
)

var showDate string

func init() {
	showCmd.Flags().StringVar(&showDate, "date", "", "День [дд.мм.гггг], по умолчанию сегодня")
	rootCmd.AddCommand(showCmd, timetableCmd)
}

// dateOrToday дата из флага, либо сегодняшняя в часовом поясе из конфига
func dateOrToday(raw string) (time.Time, error) {
	if raw == "" {
		return utils.Truncate(time.Now().In(current.cfg.Schedule.Location)), nil
	}
	return utils.ParseDate(raw, current.cfg.Schedule.Location)
}

var showCmd = &cobra.Command{
	Use:   "show [--date <дд.мм.гггг>]",
	Short: "Показать сохранённое расписание на день.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := dateOrToday(showDate)
		if err != nil {
			return err
		}
		s, err := current.store()
		if err != nil {
			return err
		}

		day, err := s.LoadDay(date)
		if err != nil {
			return err
		}
		timetable, err := s.LoadTimeTable()
		if errors.Is(err, store.ErrNotFound) {
			timetable = model.TimeTable{}
		} else if err != nil {
			return err
		}

		converter.RenderDay(os.Stdout, day, timetable)
		return nil
	},
}

var timetableCmd = &cobra.Command{
	Use:   "timetable",
	Short: "Показать расписание звонков.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		timetable, err := store.New(current.cfg.Storage.Dir, current.cfg.Source.Group).LoadTimeTable()
		if err != nil {
			return err
		}
		converter.RenderTimeTable(os.Stdout, timetable)
		return nil
	},
}
