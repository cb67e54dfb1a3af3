package converter

import (
	"fmt"
	"io"
	"os"

	"github.com/notaneet/rasp63/model"
)

type IConverter interface {
	Write(week model.Week, out string) error
}

// writeOut записать в файл out, "-" значит stdout
func writeOut(out string, write func(w io.Writer) error) error {
	if out == "-" {
		return write(os.Stdout)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return f.Close()
}
