package converter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/notaneet/rasp63/model"
)

// JSONConverter неделя целиком одним json документом, Pretty - с отступами
type JSONConverter struct {
	Pretty bool
}

func (j JSONConverter) Write(week model.Week, out string) error {
	if out == "" {
		return fmt.Errorf("--output can not be empty")
	}

	return writeOut(out, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		// в комментариях и потоках бывают & и <>, их не экранируем
		enc.SetEscapeHTML(false)
		if j.Pretty {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(week)
	})
}
