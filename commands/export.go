package commands

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/notaneet/rasp63/config"
	"github.com/notaneet/rasp63/converter"
	"github.com/notaneet/rasp63/model"
)

var exportFlags struct {
	output        string
	converterName string
	filter        config.FilterConfig
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportFlags.output, "output", "data.out", "Файл, куда будет записываться результат (для pgsql - строка подключения, по умолчанию DATABASE_URL)")
	f.StringVar(&exportFlags.converterName, "converter", "pjson", "Тип выходных данных: json, pjson, xlsx, text, pgsql")
	f.StringVar(&exportFlags.filter.Interval, "interval", "", "Сохранённые дни за интервал [дд.мм.гггг[-дд.мм.гггг]] вместо скачивания недели")
	f.Var(&exportFlags.filter.SubjectMatcher.MatchRaw, "subject", "Требуемые предметы, без иконки типа занятия (~regexp)")
	f.Var(&exportFlags.filter.TeacherMatcher.MatchRaw, "teacher", "Требуемые преподаватели (~regexp)")
	f.Var(&exportFlags.filter.PlaceMatcher.MatchRaw, "place", "Требуемые корпуса и аудитории (~regexp)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [--converter <name>] [--output <path>] [--interval <dates>]",
	Short: "Выгрузить расписание недели (с сайта) или сохранённых дней в файл или базу.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := exportFlags.filter
		if err := filter.Init(); err != nil {
			return err
		}

		week, err := exportSource(filter)
		if err != nil {
			return err
		}
		week = filter.Apply(week)

		out := exportFlags.output
		if exportFlags.converterName == "pgsql" && !cmd.Flags().Changed("output") {
			out = current.cfg.DatabaseURL
		}

		if err := converter.Converter(exportFlags.converterName).Write(week, out); err != nil {
			return err
		}
		current.log.Info("schedule exported",
			zap.String("converter", exportFlags.converterName),
			zap.Int("days", len(week.Days)),
		)
		return nil
	},
}

// exportSource с интервалом читаем сохранённые дни, без него качаем неделю с сайта
func exportSource(filter config.FilterConfig) (model.Week, error) {
	if filter.StartTime == nil && filter.EndTime == nil {
		plug, err := current.plugin()
		if err != nil {
			return model.Week{}, err
		}
		return plug.GetTimetable()
	}

	s, err := current.store()
	if err != nil {
		return model.Week{}, err
	}
	from, to := intervalBounds(filter.StartTime, filter.EndTime)
	days, err := s.LoadRange(from, to)
	if err != nil {
		return model.Week{}, err
	}
	timetable, err := s.LoadTimeTable()
	if err != nil {
		return model.Week{}, err
	}
	return model.Week{
		GroupID:   current.cfg.Source.GroupID,
		Group:     current.cfg.Source.Group,
		Days:      days,
		TimeTable: timetable,
	}, nil
}

// intervalBounds если задан только один конец интервала, берём неделю от него
func intervalBounds(start, end *time.Time) (from, to time.Time) {
	switch {
	case start != nil && end != nil:
		return *start, *end
	case start != nil:
		return *start, start.AddDate(0, 0, model.DaysPerWeek)
	default:
		return end.AddDate(0, 0, -model.DaysPerWeek), *end
	}
}
