package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/limaJavier/busplan/pkg/glpk"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	configFile string
	glpsolPath string
	modelPath  string
	locale     string
	timeout    time.Duration
	reportDir  string
	verbose    bool
}

func (opts *options) bind(cmd *cobra.Command, variant Variant) {
	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "Path to a JSON or YAML config file; config.json/config.yaml next to the executable is used when empty")
	flags.StringVar(&opts.glpsolPath, "glpsol", glpk.DefaultGlpsolPath, "glpsol executable")
	flags.StringVar(&opts.modelPath, "model", variant.DefaultModel, "MathProg model file")
	flags.StringVar(&opts.locale, "locale", glpk.DefaultLocale, "Value of LC_ALL while glpsol runs")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Maximum time glpsol may run, 0 waits indefinitely")
	flags.StringVar(&opts.reportDir, "report-dir", ".", "Directory holding the temporary solver report")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug information, including glpsol's output")
}

// Defaults, then the config file, then flags set explicitly
func (opts *options) resolve(cmd *cobra.Command, variant Variant) (glpk.Config, error) {
	config := glpk.DefaultConfig(variant.DefaultModel)

	configFile := opts.configFile
	if configFile == "" {
		configFile, _ = executableConfig()
	}
	if configFile != "" {
		log.Debugf("loading config from %v", configFile)
		if err := glpk.LoadConfig(configFile, &config); err != nil {
			return glpk.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("glpsol") {
		config.GlpsolPath = opts.glpsolPath
	}
	if flags.Changed("model") {
		config.ModelPath = opts.modelPath
	}
	if flags.Changed("locale") {
		config.Locale = opts.locale
	}
	if flags.Changed("timeout") {
		config.Timeout = opts.timeout
	}
	if flags.Changed("report-dir") {
		config.ReportDir = opts.reportDir
	}

	if config.Timeout < 0 {
		return glpk.Config{}, errors.Errorf("timeout must not be negative: %v", config.Timeout)
	}
	return config, nil
}

func executableConfig() (string, bool) {
	execPath, err := os.Executable()
	if err != nil {
		return "", false
	}
	return glpk.FindConfig(filepath.Dir(execPath))
}
