package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/notaneet/rasp63/config"
	"github.com/notaneet/rasp63/model"
	"github.com/notaneet/rasp63/utils"
)

// WeekSource откуда брать расписание (плагин учебного заведения)
type WeekSource interface {
	GetWeek(week int) (model.Week, error)
}

// WeekStore куда его складывать
type WeekStore interface {
	SaveWeek(week model.Week) error
	Sweep(cutoff time.Time) ([]string, error)
}

type Scheduler struct {
	source WeekSource
	store  WeekStore
	cfg    config.Config
	log    *zap.Logger
	now    func() time.Time
}

func New(source WeekSource, store WeekStore, cfg config.Config, log *zap.Logger) *Scheduler {
	if cfg.Schedule.Location == nil {
		cfg.Schedule.Location = time.Local
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{source: source, store: store, cfg: cfg, log: log, now: time.Now}
}

// CurrentWeek номер недели для обновления: от начала семестра, если оно задано, иначе из конфига
func (s *Scheduler) CurrentWeek() int {
	if s.cfg.Source.SemesterStart != nil {
		return utils.WeekNumber(*s.cfg.Source.SemesterStart, s.now().In(s.cfg.Schedule.Location))
	}
	if s.cfg.Source.Week > 0 {
		return s.cfg.Source.Week
	}
	return 1
}

// Cutoff дни раньше этой даты удаляются
func (s *Scheduler) Cutoff() time.Time {
	today := utils.Truncate(s.now().In(s.cfg.Schedule.Location))
	return today.AddDate(0, 0, -s.cfg.Schedule.RetentionDays)
}

// Update скачать текущую неделю и сохранить
func (s *Scheduler) Update() error {
	week := s.CurrentWeek()
	w, err := s.source.GetWeek(week)
	if err != nil {
		return fmt.Errorf("get week %d: %w", week, err)
	}
	if err := s.store.SaveWeek(w); err != nil {
		return fmt.Errorf("save week %d: %w", week, err)
	}
	s.log.Info("schedule updated", zap.Int("week", week), zap.Int("days", len(w.Days)))
	return nil
}

// Sweep удалить старые дни
func (s *Scheduler) Sweep() error {
	cutoff := s.Cutoff()
	deleted, err := s.store.Sweep(cutoff)
	if err != nil {
		return err
	}
	s.log.Info("old schedule removed", zap.String("cutoff", cutoff.Format(utils.DateLayout)), zap.Strings("files", deleted))
	return nil
}

func (s *Scheduler) task(name string, job func() error) gocron.Task {
	return gocron.NewTask(func() {
		if err := job(); err != nil {
			s.log.Error("job failed", zap.String("job", name), zap.Error(err))
		}
	})
}

// Start запустить задачи по крону и ждать отмены ctx. Сразу при старте выполняется одно обновление и одна чистка.
func (s *Scheduler) Start(ctx context.Context) error {
	cron, err := gocron.NewScheduler(gocron.WithLocation(s.cfg.Schedule.Location))
	if err != nil {
		return fmt.Errorf("init cron scheduler: %w", err)
	}

	jobs := []struct {
		name string
		spec string
		run  func() error
	}{
		{"update schedule", s.cfg.Schedule.UpdateCron, s.Update},
		{"sweep schedule", s.cfg.Schedule.SweepCron, s.Sweep},
	}
	for _, j := range jobs {
		_, err := cron.NewJob(
			gocron.CronJob(j.spec, false),
			s.task(j.name, j.run),
			gocron.WithName(j.name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
			gocron.WithStartAt(gocron.WithStartImmediately()),
		)
		if err != nil {
			_ = cron.Shutdown()
			return fmt.Errorf("init %s job (%q): %w", j.name, j.spec, err)
		}
		s.log.Info("job scheduled", zap.String("job", j.name), zap.String("cron", j.spec))
	}

	cron.Start()
	<-ctx.Done()

	if err := cron.Shutdown(); err != nil {
		return fmt.Errorf("shutdown cron scheduler: %w", err)
	}
	return nil
}
