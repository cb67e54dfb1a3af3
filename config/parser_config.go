package config

import "errors"

var ErrMissingGroup = errors.New("group id and group name are required")

// ParserConfig что и откуда парсить
type ParserConfig struct {
	BaseURL string
	GroupID int    //id группы на сайте
	Group   string //Номер группы, используется как имя папки
	Week    int    //Номер недели, передаётся сайту как есть

	//Доп. информация о преподавателях (фамилия -> информация)
	Attachments map[string]string
}

func (cfg *ParserConfig) Validate() error {
	if cfg.GroupID <= 0 || cfg.Group == "" {
		return ErrMissingGroup
	}
	if cfg.Week <= 0 {
		cfg.Week = 1
	}
	if cfg.Attachments == nil {
		cfg.Attachments = map[string]string{}
	}
	return nil
}
