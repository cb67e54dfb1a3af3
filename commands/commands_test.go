package commands

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notaneet/rasp63/store"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}

func TestUpdateShowSweep(t *testing.T) {
	page, err := os.ReadFile("../plugin/ssau/testdata/week.html")
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	}))
	defer srv.Close()

	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("SSAU_BASE_URL", srv.URL+"/rasp")
	t.Setenv("GROUP_ID", "530996164")
	t.Setenv("GROUP_NAME", "2205")
	t.Setenv("LOG_LEVEL", "error")
	require.NoError(t, os.MkdirAll("settings", 0o755))
	require.NoError(t, os.WriteFile("settings/extra.json5", []byte(`{"Иванов": "https://vk.com/wall-1_1"}`), 0o644))

	require.NoError(t, run(t, "update", "--week", "9"))

	s := store.New(filepath.Join(dir, "shedules"), "2205")
	monday := time.Date(2021, 10, 18, 0, 0, 0, 0, time.Local)
	day, err := s.LoadDay(monday)
	require.NoError(t, err)
	require.Len(t, day.Lessons, 6)
	assert.Equal(t, "https://vk.com/wall-1_1", day.Lessons[0][0].Attachment)
	assert.FileExists(t, filepath.Join(dir, "shedules", "timetable.json"))

	require.NoError(t, run(t, "show", "--date", "18.10.2021"))
	require.NoError(t, run(t, "timetable"))

	out := filepath.Join(dir, "week.xlsx")
	require.NoError(t, run(t, "export", "--interval", "18.10.2021-20.10.2021", "--converter", "xlsx", "--output", out))
	assert.FileExists(t, out)

	require.NoError(t, run(t, "sweep", "--before", "21.10.2021"))
	for i := 0; i < 6; i++ {
		date := monday.AddDate(0, 0, i)
		if i < 3 {
			assert.NoFileExists(t, s.DayPath(date))
		} else {
			assert.FileExists(t, s.DayPath(date))
		}
	}

	err = run(t, "show", "--date", "18.10.2021")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
