package converter

import (
	"errors"
	"fmt"

	"github.com/notaneet/rasp63/model"
)

var ErrUnknownConverter = errors.New("unknown converter")

func Converter(converter string) IConverter {
	switch converter {
	case "json":
		return JSONConverter{}
	case "pjson":
		return JSONConverter{Pretty: true}
	case "pgsql":
		return PGSQLConverter{}
	case "xlsx":
		return XLSXConverter{}
	case "text":
		return TextConverter{}
	default:
		return DummyConverter{Name: converter}
	}
}

// DummyConverter для неизвестного имени, всегда возвращает ошибку
type DummyConverter struct {
	Name string
}

func (d DummyConverter) Write(model.Week, string) error {
	return fmt.Errorf("%w: %q", ErrUnknownConverter, d.Name)
}
