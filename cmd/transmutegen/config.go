package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultConfigFile is read from the working directory when -config is not
// given. It is optional.
const defaultConfigFile = ".transmutegen.yaml"

// config holds the settings shared by flags and the config file.
type config struct {
	Tags   string `yaml:"tags"`
	Tests  bool   `yaml:"tests"`
	Output string `yaml:"output"`
	Verify string `yaml:"verify"`
	Color  string `yaml:"color"`
}

// loadConfig resolves the settings. Flags set on the command line win over the
// config file, which wins over flag defaults. A missing file is an error only
// if it was named by -config.
func loadConfig(fs *flag.FlagSet) (config, error) {
	cfg := config{
		Tags:   *bFlag,
		Tests:  *tFlag,
		Output: *oFlag,
		Verify: *verifyFlag,
		Color:  *cFlag,
	}

	path := *configFlag
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist) && !explicit:
		return cfg, nil
	case err != nil:
		return cfg, err
	}

	if err := decodeConfig(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "b":
			cfg.Tags = *bFlag
		case "t":
			cfg.Tests = *tFlag
		case "o":
			cfg.Output = *oFlag
		case "verify":
			cfg.Verify = *verifyFlag
		case "c":
			cfg.Color = *cFlag
		}
	})
	return cfg, nil
}

// decodeConfig decodes YAML onto cfg. Keys absent from data keep their value
// in cfg. Unknown keys are rejected.
func decodeConfig(data []byte, cfg *config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
