package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/notaneet/rasp63/utils"
)

var sweepBefore string

func init() {
	sweepCmd.Flags().StringVar(&sweepBefore, "before", "", "Удалить дни раньше этой даты [дд.мм.гггг], по умолчанию сегодня минус RETENTION_DAYS")
	rootCmd.AddCommand(sweepCmd)
}

var sweepCmd = &cobra.Command{
	Use:   "sweep [--before <дд.мм.гггг>]",
	Short: "Удалить сохранённые дни старше даты.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cutoff, err := dateOrToday(sweepBefore)
		if err != nil {
			return err
		}
		if sweepBefore == "" {
			cutoff = cutoff.AddDate(0, 0, -current.cfg.Schedule.RetentionDays)
		}

		s, err := current.store()
		if err != nil {
			return err
		}
		deleted, err := s.Sweep(cutoff)
		if err != nil {
			return err
		}

		current.log.Info("old schedule removed",
			zap.String("group", s.Group()),
			zap.String("cutoff", cutoff.Format(utils.DateLayout)),
			zap.Strings("files", deleted),
		)
		return nil
	},
}
