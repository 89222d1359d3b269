// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Runs the root command against a temp data directory.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/galaxydash/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDataDir writes a partial data directory: calories and heart rate are
// usable, spo2 is malformed, everything else is missing.
func writeDataDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"calories.csv":   "timestamp,calories\n2025-06-01,2100\n2025-06-02,2350.8\n",
		"heart_rate.csv": "timestamp,bpm\n2025-06-01 08:00:00,95\n2025-06-01 08:01:00,130\n",
		"spo2.csv":       "timestamp,wrong\n2025-06-01,97\n",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0600))
	}
	return dir
}

// runCLI executes the root command with args and returns captured stdout.
func runCLI(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()

	exportOutput = ""
	viewWidget = ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	full := append([]string{
		"--config", filepath.Join(t.TempDir(), "missing.json"),
		"--data-dir", dataDir,
	}, args...)
	rootCmd.SetArgs(full)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.input, tt.maxLen))
		})
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ecg.csv   ", padRight("ecg.csv", 10))
	assert.Equal(t, "antioxidants.csv", padRight("antioxidants.csv", 5))
}

func TestRoleSlugs(t *testing.T) {
	assert.Equal(t, []string{"athlete", "coach", "trainer", "team-doctor"}, roleSlugs())
}

func TestDatasetsCommand(t *testing.T) {
	out, err := runCLI(t, writeDataDir(t), "datasets")
	require.NoError(t, err)

	assert.Contains(t, out, "calories.csv")
	assert.Contains(t, out, "2 rows")
	assert.Contains(t, out, "sleep.csv")
	assert.Contains(t, out, "missing column")
	assert.Contains(t, out, "2 of 12 datasets loaded")
}

func TestViewCommand(t *testing.T) {
	out, err := runCLI(t, writeDataDir(t), "view", "coach")
	require.NoError(t, err)

	assert.Contains(t, out, "Coach Performance Dashboard")
	assert.Contains(t, out, "Calories Burned")
	assert.Contains(t, out, "Heart Rate")
	assert.Contains(t, out, "Could not load spo2.csv")
	assert.NotContains(t, out, "Readiness Score")
}

func TestViewSingleWidget(t *testing.T) {
	out, err := runCLI(t, writeDataDir(t), "view", "coach", "--widget", "Heart Rate")
	require.NoError(t, err)

	assert.Contains(t, out, "Heart Rate")
	assert.NotContains(t, out, "Calories Burned")
}

func TestViewUnknownWidget(t *testing.T) {
	_, err := runCLI(t, writeDataDir(t), "view", "coach", "--widget", "Body Fat %")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Calories Burned, Heart Rate")
}

func TestDatasetsFilter(t *testing.T) {
	out, err := runCLI(t, writeDataDir(t), "datasets", "calories", "spo2")
	require.NoError(t, err)

	assert.Contains(t, out, "calories.csv")
	assert.Contains(t, out, "spo2.csv")
	assert.NotContains(t, out, "sleep.csv")
	assert.Contains(t, out, "1 of 2 datasets loaded")
}

func TestDatasetsUnknownName(t *testing.T) {
	_, err := runCLI(t, writeDataDir(t), "datasets", "spo2.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dataset")
}

func TestViewUnknownRole(t *testing.T) {
	_, err := runCLI(t, writeDataDir(t), "view", "referee")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrUnknownRole))
}

func TestExportJSONToStdout(t *testing.T) {
	out, err := runCLI(t, writeDataDir(t), "export", "athlete", "json")
	require.NoError(t, err)

	var page struct {
		Title   string `json:"title"`
		Widgets []struct {
			Title string `json:"title"`
		} `json:"widgets"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, "Athlete Overview", page.Title)
	require.Len(t, page.Widgets, 1)
	assert.Equal(t, "Calories Burned", page.Widgets[0].Title)
}

func TestExportToFile(t *testing.T) {
	dataDir := writeDataDir(t)
	target := filepath.Join(t.TempDir(), "doctor.md")

	_, err := runCLI(t, dataDir, "export", "team-doctor", "md", "-o", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Medical Monitoring"))
	assert.Contains(t, string(data), "## Heart Rate")
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := runCLI(t, writeDataDir(t), "export", "athlete", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestConfigFileDataDir(t *testing.T) {
	dataDir := writeDataDir(t)
	cfgFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`{"default_role":"coach"}`), 0600))

	exportOutput = ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", cfgFile, "--data-dir", dataDir, "datasets"})
	require.NoError(t, rootCmd.Execute())

	require.NotNil(t, cfg)
	assert.Equal(t, "coach", cfg.DefaultRole)
	assert.Equal(t, dataDir, cfg.GetDataDir())
}

func TestInvalidConfigFails(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`{"default_role":"referee"}`), 0600))

	rootCmd.SetArgs([]string{"--config", cfgFile, "--data-dir", t.TempDir(), "datasets"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_role")
}
