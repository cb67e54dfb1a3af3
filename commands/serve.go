package commands

import (
	"github.com/spf13/cobra"

	"github.com/notaneet/rasp63/scheduler"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Обновлять расписание и чистить старые дни по крону (UPDATE_CRON, SWEEP_CRON).",
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

		return scheduler.New(plug, s, *current.cfg, current.log).Start(cmd.Context())
	},
}
