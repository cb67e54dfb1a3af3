package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/notaneet/rasp63/config"
	"github.com/notaneet/rasp63/logger"
	"github.com/notaneet/rasp63/plugin"
	"github.com/notaneet/rasp63/store"
)

const pluginName = "ssau"

// app общее состояние команд, заполняется в PersistentPreRunE
type app struct {
	cfg *config.Config
	log *zap.Logger
}

var current app

var rootFlags struct {
	groupID     int
	group       string
	week        int
	dir         string
	attachments string
}

var rootCmd = &cobra.Command{
	Use:           "rasp63",
	Short:         "rasp63 скачивает расписание группы с сайта ССАУ и хранит его по дням.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		applyFlags(cmd, cfg)

		log, err := logger.New(cfg)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		current = app{cfg: cfg, log: log}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if current.log != nil {
			_ = current.log.Sync()
		}
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.IntVar(&rootFlags.groupID, "group-id", 0, "id группы на сайте (GROUP_ID)")
	f.StringVar(&rootFlags.group, "group", "", "Номер группы, имя папки с расписанием (GROUP_NAME)")
	f.IntVar(&rootFlags.week, "week", 0, "Номер недели (WEEK)")
	f.StringVar(&rootFlags.dir, "dir", "", "Папка с расписаниями (SCHEDULE_DIR)")
	f.StringVar(&rootFlags.attachments, "attachments", "", "Файл с доп. информацией о преподавателях (ATTACHMENTS_FILE)")
}

// флаги важнее переменных окружения
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("group-id") {
		cfg.Source.GroupID = rootFlags.groupID
	}
	if f.Changed("group") {
		cfg.Source.Group = rootFlags.group
	}
	if f.Changed("week") {
		cfg.Source.Week = rootFlags.week
	}
	if f.Changed("dir") {
		cfg.Storage.Dir = rootFlags.dir
	}
	if f.Changed("attachments") {
		cfg.Source.AttachmentsFile = rootFlags.attachments
	}
}

func (a app) store() (*store.Store, error) {
	if a.cfg.Source.Group == "" {
		return nil, config.ErrMissingGroup
	}
	return store.New(a.cfg.Storage.Dir, a.cfg.Source.Group), nil
}

func (a app) plugin() (plugin.Plugin, error) {
	pc := a.cfg.ParserConfig()
	attachments, err := config.LoadAttachments(a.cfg.Source.AttachmentsFile)
	if err != nil {
		return nil, err
	}
	pc.Attachments = attachments
	if err := pc.Validate(); err != nil {
		return nil, err
	}

	plug := plugin.NewPlugin(pluginName, pc, a.log)
	if plug == nil {
		return nil, fmt.Errorf("%s не найден", pluginName)
	}
	return plug, nil
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if current.log != nil {
			current.log.Error("command failed", zap.Error(err))
			_ = current.log.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
