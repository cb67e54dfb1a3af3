package ssau

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/notaneet/rasp63/config"
	"github.com/notaneet/rasp63/model"
)

type _SSAUSamaraPlugin struct {
	config config.ParserConfig
	client *FetchClient
	log    *zap.Logger
}

func GetPlugin(cfg config.ParserConfig, log *zap.Logger) *_SSAUSamaraPlugin {
	if log == nil {
		log = zap.NewNop()
	}
	return &_SSAUSamaraPlugin{config: cfg, client: NewFetchClient(cfg.BaseURL), log: log}
}

func (p _SSAUSamaraPlugin) GetInstitution() string {
	return "ССАУ"
}

func (p *_SSAUSamaraPlugin) GetTimetable() (model.Week, error) {
	return p.GetWeek(p.config.Week)
}

func (p *_SSAUSamaraPlugin) GetWeek(week int) (model.Week, error) {
	log := p.log.With(zap.Int("group_id", p.config.GroupID), zap.String("group", p.config.Group), zap.Int("week", week))

	markup, err := p.client.Fetch(p.config.GroupID, week)
	if err != nil {
		return model.Week{}, err
	}
	log.Debug("schedule page fetched", zap.Int("bytes", len(markup)))

	days, timetable, err := Parse(markup, p.config.Attachments)
	if err != nil {
		return model.Week{}, fmt.Errorf("parse week %d of group %s: %w", week, p.config.Group, err)
	}
	log.Info("schedule parsed", zap.Int("days", len(days)), zap.Int("periods", len(timetable)))

	return model.Week{
		GroupID:   p.config.GroupID,
		Group:     p.config.Group,
		Number:    week,
		Days:      days,
		TimeTable: timetable,
	}, nil
}
