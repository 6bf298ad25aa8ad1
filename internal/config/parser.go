package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	tkerrors "github.com/alexisbeaulieu97/tablekit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a table document from disk, validates it, and returns the
// resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tkerrors.NewParseError(path, 0, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(path, data)
	}
	return parse(path, data)
}

// ParseTOML decodes a table document written in TOML. The document uses the
// same keys as the YAML form and goes through the same validation.
func ParseTOML(path string, data []byte) (*Config, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		line := 0
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			line, _ = decodeErr.Position()
		}
		return nil, tkerrors.NewParseError(path, line, err)
	}

	normalized, err := yaml.Marshal(doc)
	if err != nil {
		return nil, tkerrors.NewParseError(path, 0, err)
	}
	return parse(path, normalized)
}

// Parse decodes and validates a table document held in memory.
func Parse(data []byte) (*Config, error) {
	return parse("<inline>", data)
}

func parse(path string, data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, tkerrors.NewParseError(path, extractLine(err), err)
	}
	if cfg.Name == "" && path != "<inline>" {
		cfg.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
