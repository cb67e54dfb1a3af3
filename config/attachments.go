package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/titanous/json5"
)

// LoadAttachments загрузить доп. информацию о преподавателях ({"Фамилия": "информация"}).
// Если файла нет, то и информации нет.
func LoadAttachments(path string) (map[string]string, error) {
	ret := map[string]string{}
	if path == "" {
		return ret, nil
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ret, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read attachments: %w", err)
	}

	if err := json5.Unmarshal(raw, &ret); err != nil {
		return nil, fmt.Errorf("parse attachments %s: %w", path, err)
	}
	return ret, nil
}
