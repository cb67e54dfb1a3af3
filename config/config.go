package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config настройки приложения из .env и переменных окружения
type Config struct {
	Env string

	Log      LogConfig
	Source   SourceConfig
	Storage  StorageConfig
	Schedule ScheduleConfig

	DatabaseURL string
}

type LogConfig struct {
	Level  string
	Format string
}

// SourceConfig откуда и чьё расписание брать
type SourceConfig struct {
	BaseURL         string
	GroupID         int
	Group           string
	Week            int
	SemesterStart   *time.Time
	AttachmentsFile string
}

type StorageConfig struct {
	Dir string
}

// ScheduleConfig расписание фоновых задач в serve
type ScheduleConfig struct {
	Location      *time.Location
	UpdateCron    string
	SweepCron     string
	RetentionDays int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}
	cfg.Env = v.GetString("ENV")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	loc, err := time.LoadLocation(v.GetString("TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}

	var semesterStart *time.Time
	if raw := v.GetString("SEMESTER_START"); raw != "" {
		start, err := time.ParseInLocation("02.01.2006", raw, loc)
		if err != nil {
			return nil, fmt.Errorf("parse SEMESTER_START: %w", err)
		}
		semesterStart = &start
	}

	cfg.Source = SourceConfig{
		BaseURL:         v.GetString("SSAU_BASE_URL"),
		GroupID:         v.GetInt("GROUP_ID"),
		Group:           v.GetString("GROUP_NAME"),
		Week:            v.GetInt("WEEK"),
		SemesterStart:   semesterStart,
		AttachmentsFile: v.GetString("ATTACHMENTS_FILE"),
	}

	cfg.Storage = StorageConfig{
		Dir: v.GetString("SCHEDULE_DIR"),
	}

	cfg.Schedule = ScheduleConfig{
		Location:      loc,
		UpdateCron:    v.GetString("UPDATE_CRON"),
		SweepCron:     v.GetString("SWEEP_CRON"),
		RetentionDays: v.GetInt("RETENTION_DAYS"),
	}

	cfg.DatabaseURL = v.GetString("DATABASE_URL")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("SSAU_BASE_URL", "https://ssau.ru/rasp")
	v.SetDefault("GROUP_ID", 0)
	v.SetDefault("GROUP_NAME", "")
	v.SetDefault("WEEK", 1)
	v.SetDefault("SEMESTER_START", "")
	v.SetDefault("ATTACHMENTS_FILE", "settings/extra.json5")

	v.SetDefault("SCHEDULE_DIR", "shedules")

	v.SetDefault("TIMEZONE", "Europe/Samara")
	v.SetDefault("UPDATE_CRON", "0 */6 * * *")
	v.SetDefault("SWEEP_CRON", "30 3 * * *")
	v.SetDefault("RETENTION_DAYS", 0)

	v.SetDefault("DATABASE_URL", "")
}

// ParserConfig настройки парсера из конфига, без доп. информации о преподавателях
func (c *Config) ParserConfig() ParserConfig {
	return ParserConfig{
		BaseURL: c.Source.BaseURL,
		GroupID: c.Source.GroupID,
		Group:   c.Source.Group,
		Week:    c.Source.Week,
	}
}
