package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/akyairhashvil/flashtimer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func setupDataDir(t *testing.T) {
	t.Helper()
	t.Setenv("FLASHTIMER_DATA_DIR", t.TempDir())
	t.Setenv("FLASHTIMER_LOG_LEVEL", "error")
}

func listJSON(t *testing.T) []models.Preset {
	t.Helper()
	out, err := runCmd(t, "presets", "list", "-o", "json")
	require.NoError(t, err)
	var got []models.Preset
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	return got
}

func secondsOf(list []models.Preset) []int {
	out := make([]int, 0, len(list))
	for _, p := range list {
		out = append(out, p.Seconds)
	}
	return out
}

func TestPresetsAddAndList(t *testing.T) {
	setupDataDir(t)
	for _, s := range []string{"10", "20", "30", "0"} {
		_, err := runCmd(t, "presets", "add", s)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{10, 20, 30}, secondsOf(listJSON(t)))

	out, err := runCmd(t, "presets", "list")
	require.NoError(t, err)
	assert.Contains(t, out, " 1. 10 s")
	assert.Contains(t, out, "0:30")
}

func TestPresetsRemoveByListPosition(t *testing.T) {
	setupDataDir(t)
	for _, s := range []string{"10", "20", "30"} {
		_, err := runCmd(t, "presets", "add", s)
		require.NoError(t, err)
	}
	_, err := runCmd(t, "presets", "remove", "2")
	require.NoError(t, err)
	assert.Equal(t, []int{10, 30}, secondsOf(listJSON(t)))

	_, err = runCmd(t, "presets", "remove", "9")
	require.NoError(t, err, "unknown positions are ignored")
	assert.Equal(t, []int{10, 30}, secondsOf(listJSON(t)))
}

func TestPresetsClear(t *testing.T) {
	setupDataDir(t)
	for _, s := range []string{"10", "20"} {
		_, err := runCmd(t, "presets", "add", s)
		require.NoError(t, err)
	}
	_, err := runCmd(t, "presets", "clear")
	require.NoError(t, err)
	assert.Empty(t, listJSON(t))

	_, err = runCmd(t, "presets", "add", "5")
	require.NoError(t, err)
	assert.Equal(t, []int{5}, secondsOf(listJSON(t)))
}

func TestPresetsListFormats(t *testing.T) {
	setupDataDir(t)
	out, err := runCmd(t, "presets", "list")
	require.NoError(t, err)
	assert.Equal(t, "No presets.\n", out)
	assert.Empty(t, listJSON(t))

	_, err = runCmd(t, "presets", "add", "3600")
	require.NoError(t, err)
	out, err = runCmd(t, "presets", "list", "-o", "yaml")
	require.NoError(t, err)
	var got []models.Preset
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "1 h", got[0].Label)

	_, err = runCmd(t, "presets", "list", "-o", "xml")
	assert.Error(t, err)
}

func TestPresetsRejectsNonNumericArgs(t *testing.T) {
	setupDataDir(t)
	_, err := runCmd(t, "presets", "add", "ten")
	assert.Error(t, err)
	_, err = runCmd(t, "presets", "remove", "first")
	assert.Error(t, err)
}

func TestRootRefusesWithoutTerminal(t *testing.T) {
	setupDataDir(t)
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
	_, err := runCmd(t)
	assert.ErrorIs(t, err, errNotTerminal)
}

func TestVersionCmd(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "flashtimer version "))
}
