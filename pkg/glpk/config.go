package glpk

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

const (
	DefaultGlpsolPath = "glpsol"
	DefaultLocale     = "C"
)

// Names looked up next to the executable when no config file is given
var ConfigFileNames = []string{"config.json", "config.yaml", "config.yml"}

type Config struct {
	GlpsolPath string        `mapstructure:"glpsolPath"`
	ModelPath  string        `mapstructure:"modelPath"`
	Locale     string        `mapstructure:"locale"`
	Timeout    time.Duration `mapstructure:"timeout"` // Zero waits for the solver indefinitely
	ReportDir  string        `mapstructure:"reportDir"`
}

func DefaultConfig(modelPath string) Config {
	return Config{
		GlpsolPath: DefaultGlpsolPath,
		ModelPath:  modelPath,
		Locale:     DefaultLocale,
		ReportDir:  ".",
	}
}

// LoadConfig overlays the settings found in a JSON or YAML file on top of config
func LoadConfig(file string, config *Config) error {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrap(err, "cannot read config file")
	}

	var raw map[string]any
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &raw)
	default:
		err = json.Unmarshal(bytes, &raw)
	}
	if err != nil {
		return errors.Wrapf(err, "cannot parse config file %v", file)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused: true,
		Result:      config,
	})
	if err != nil {
		return errors.Wrap(err, "cannot build config decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return errors.Wrapf(err, "invalid config file %v", file)
	}
	return nil
}

// FindConfig returns the first well-known config file present in dir
func FindConfig(dir string) (string, bool) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	fileNames := lo.Map(files, func(file os.DirEntry, _ int) string { return file.Name() })

	name, ok := lo.Find(ConfigFileNames, func(name string) bool { return slices.Contains(fileNames, name) })
	if !ok {
		return "", false
	}
	return filepath.Join(dir, name), true
}
