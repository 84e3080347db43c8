package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeConfig(t *testing.T) {
	cfg := config{Output: "transmute_gen.go", Verify: "auto", Color: "auto"}
	err := decodeConfig([]byte("tags: debug\ntests: true\nverify: always\n"), &cfg)
	require.NoError(t, err)

	assert.Equal(t, config{
		Tags:   "debug",
		Tests:  true,
		Output: "transmute_gen.go",
		Verify: "always",
		Color:  "auto",
	}, cfg)
}

func TestDecodeConfigEmpty(t *testing.T) {
	cfg := config{Output: "transmute_gen.go"}
	require.NoError(t, decodeConfig(nil, &cfg))
	assert.Equal(t, "transmute_gen.go", cfg.Output)
}

func TestDecodeConfigUnknownKey(t *testing.T) {
	var cfg config
	err := decodeConfig([]byte("outptu: x.go\n"), &cfg)
	assert.ErrorContains(t, err, "field outptu not found")
}

func TestLoadConfigFlagsWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transmutegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: file_gen.go\nverify: never\n"), 0o644))

	fs := flag.NewFlagSet("transmutegen", flag.ContinueOnError)
	fs.StringVar(oFlag, "o", "transmute_gen.go", "")
	fs.StringVar(verifyFlag, "verify", "auto", "")
	fs.StringVar(configFlag, "config", "", "")
	require.NoError(t, fs.Parse([]string{"-config", path, "-verify", "always"}))
	t.Cleanup(func() {
		*oFlag = "transmute_gen.go"
		*verifyFlag = "auto"
		*configFlag = ""
	})

	cfg, err := loadConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, "file_gen.go", cfg.Output)
	assert.Equal(t, "always", cfg.Verify)
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	fs := flag.NewFlagSet("transmutegen", flag.ContinueOnError)
	fs.StringVar(configFlag, "config", "", "")
	require.NoError(t, fs.Parse([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}))
	t.Cleanup(func() { *configFlag = "" })

	_, err := loadConfig(fs)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestColorize(t *testing.T) {
	got := colorize("colors.go:3:5: representation int does not match parent Color; want uint8\n\tprevious listing at colors.go:2:1")
	assert.Equal(t,
		"\033[1mcolors.go:3:5:\033[0m representation int does not match parent Color\033[31m; want uint8\033[0m\n"+
			"\033[2m\tprevious listing at colors.go:2:1\033[0m",
		got)
}
