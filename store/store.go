package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/notaneet/rasp63/model"
	"github.com/notaneet/rasp63/utils"
)

const (
	DefaultRoot       = "shedules"
	timeTableFileName = "timetable.json"
	dayFilePrefix     = "shedule-"
	dayFileExt        = ".json"
)

var (
	ErrNotFound           = errors.New("schedule record not found")
	ErrUnsupportedVersion = errors.New("unsupported schedule record version")
)

// Store хранит расписание группы по файлу на день и общее для всех групп расписание звонков
type Store struct {
	root  string
	group string
}

func New(root, group string) *Store {
	if root == "" {
		root = DefaultRoot
	}
	return &Store{root: root, group: group}
}

func (s *Store) Group() string {
	return s.group
}

func (s *Store) groupDir() string {
	return filepath.Join(s.root, s.group)
}

// DayFileName имя файла дня: shedule-{месяц}-{день}-{год}.json, без ведущих нулей
func DayFileName(date time.Time) string {
	return fmt.Sprintf("%s%d-%d-%d%s", dayFilePrefix, int(date.Month()), date.Day(), date.Year(), dayFileExt)
}

// DayPath путь к файлу дня
func (s *Store) DayPath(date time.Time) string {
	return filepath.Join(s.groupDir(), DayFileName(date))
}

func (s *Store) timeTablePath() string {
	return filepath.Join(s.root, timeTableFileName)
}

// SaveDay записать пары дня, папка группы создаётся при необходимости
func (s *Store) SaveDay(date time.Time, lessons []model.LessonSlot) error {
	if err := os.MkdirAll(s.groupDir(), 0o755); err != nil {
		return fmt.Errorf("create group directory: %w", err)
	}
	return writeRecord(s.DayPath(date), newDayRecord(s.group, date, lessons))
}

// LoadDay прочитать день, если файла нет - ErrNotFound
func (s *Store) LoadDay(date time.Time) (model.Day, error) {
	var rec dayRecord
	if err := readRecord(s.DayPath(date), &rec); err != nil {
		return model.Day{}, fmt.Errorf("load %s: %w", date.Format(utils.DateLayout), err)
	}
	if rec.Version != RecordVersion {
		return model.Day{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, rec.Version)
	}
	return rec.day(date), nil
}

func (s *Store) SaveTimeTable(timetable model.TimeTable) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("create schedule directory: %w", err)
	}
	return writeRecord(s.timeTablePath(), newTimeTableRecord(timetable))
}

func (s *Store) LoadTimeTable() (model.TimeTable, error) {
	var rec timeTableRecord
	if err := readRecord(s.timeTablePath(), &rec); err != nil {
		return nil, fmt.Errorf("load timetable: %w", err)
	}
	if rec.Version != RecordVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, rec.Version)
	}
	if rec.Periods == nil {
		rec.Periods = model.TimeTable{}
	}
	return rec.Periods, nil
}

// SaveWeek записать все дни недели и расписание звонков
func (s *Store) SaveWeek(week model.Week) error {
	for _, day := range week.Days {
		if err := s.SaveDay(day.Date, day.Lessons); err != nil {
			return err
		}
	}
	return s.SaveTimeTable(week.TimeTable)
}

// LoadRange прочитать все сохранённые дни в [from, to], отсутствующие дни пропускаются
func (s *Store) LoadRange(from, to time.Time) ([]model.Day, error) {
	var days []model.Day
	for date := utils.Truncate(from); !utils.DateBefore(to, date); date = date.AddDate(0, 0, 1) {
		day, err := s.LoadDay(date)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

func writeRecord(path string, rec interface{}) error {
	raw, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func readRecord(path string, rec interface{}) error {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, rec); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
