package converter

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notaneet/rasp63/model"
)

func sampleWeek() model.Week {
	timetable := model.TimeTable{
		{Begin: model.Clock{Hour: 8}, End: model.Clock{Hour: 9, Minute: 35}},
		{Begin: model.Clock{Hour: 9, Minute: 45}, End: model.Clock{Hour: 11, Minute: 20}},
	}
	week := model.Week{GroupID: 530996164, Group: "2205", Number: 9, TimeTable: timetable}
	for i := 0; i < model.DaysPerWeek; i++ {
		week.Days = append(week.Days, model.Day{
			Date:    time.Date(2021, 10, 18+i, 0, 0, 0, 0, time.Local),
			Lessons: []model.LessonSlot{{}, {}},
		})
	}
	week.Days[0].Lessons = []model.LessonSlot{
		{{Subject: "📗Математический анализ", Type: model.LessonTypeLecture, Teacher: "Иванов Иван Иванович", Online: true}},
		{
			{Subject: "📘Информатика", Type: model.LessonTypeLaboratory, Teacher: "Петров П.П.", Place: "3а корпус - 205", Comment: "Подгруппа 1"},
			{Subject: "📘Информатика", Type: model.LessonTypeLaboratory, Teacher: "Сидоров С.С.", Place: "3а корпус - 206", Comment: "Подгруппа 2"},
		},
	}
	return week
}

func TestConverterFactory(t *testing.T) {
	assert.IsType(t, JSONConverter{}, Converter("json"))
	assert.Equal(t, JSONConverter{Pretty: true}, Converter("pjson"))
	assert.IsType(t, PGSQLConverter{}, Converter("pgsql"))
	assert.IsType(t, XLSXConverter{}, Converter("xlsx"))
	assert.IsType(t, TextConverter{}, Converter("text"))

	err := Converter("csv").Write(sampleWeek(), "out.csv")
	assert.ErrorIs(t, err, ErrUnknownConverter)
}

func TestJSONConverter(t *testing.T) {
	out := filepath.Join(t.TempDir(), "week.json")
	require.NoError(t, Converter("pjson").Write(sampleWeek(), out))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	var got model.Week
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 9, got.Number)
	assert.Equal(t, "2205", got.Group)
	require.Len(t, got.Days, model.DaysPerWeek)
	assert.Equal(t, "09:45", got.TimeTable[1].Begin.String())
	assert.Equal(t, sampleWeek().Days[0].Lessons, got.Days[0].Lessons)

	assert.Error(t, JSONConverter{}.Write(sampleWeek(), ""))
}

func TestJSONConverterCompact(t *testing.T) {
	week := sampleWeek()
	week.Days[0].Lessons[0][0].Comment = "Лекция & семинар <3 часа>"

	out := filepath.Join(t.TempDir(), "week.json")
	require.NoError(t, JSONConverter{}.Write(week, out))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 1, bytes.Count(raw, []byte("\n")), "compact json is a single line")
	assert.Contains(t, string(raw), `"comment":"Лекция & семинар <3 часа>"`)
}

func TestJSONConverterStdout(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	stdout := os.Stdout
	os.Stdout = w
	t.Cleanup(func() { os.Stdout = stdout })

	require.NoError(t, JSONConverter{Pretty: true}.Write(sampleWeek(), "-"))
	require.NoError(t, w.Close())

	raw, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  \"week\": 9,\n")

	var got model.Week
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "2205", got.Group)
}

func TestJSONConverterBadPath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "week.json")
	assert.Error(t, JSONConverter{}.Write(sampleWeek(), out))
}
