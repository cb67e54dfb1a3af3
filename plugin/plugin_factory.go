package plugin

import (
	"go.uber.org/zap"

	"github.com/notaneet/rasp63/config"
	"github.com/notaneet/rasp63/plugin/ssau"
)

func NewPlugin(name string, cfg config.ParserConfig, log *zap.Logger) Plugin {
	switch name {
	case "ССАУ", "ssau":
		return ssau.GetPlugin(cfg, log)
	default:
		return nil
	}
}
