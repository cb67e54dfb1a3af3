package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update [--group-id <id>] [--group <name>] [--week <n>]",
	Short: "Скачать расписание на неделю и сохранить его по дням.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		plug, err := current.plugin()
		if err != nil {
			return err
		}
		s, err := current.store()
		if err != nil {
			return err
		}

		week, err := plug.GetTimetable()
		if err != nil {
			return err
		}
		if err := s.SaveWeek(week); err != nil {
			return err
		}

		current.log.Info("schedule saved",
			zap.String("group", week.Group),
			zap.Int("week", week.Number),
			zap.Int("days", len(week.Days)),
			zap.Int("periods", len(week.TimeTable)),
		)
		return nil
	},
}
