package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"panelgen/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	FontsConfig struct {
		Regular string `yaml:"regular"`
		Bold    string `yaml:"bold"`
		Title   string `yaml:"title"`
	}

	TextConfig struct {
		Delimiter   string  `yaml:"highlight_delimiter" validate:"required,len=1"`
		MinSize     int     `yaml:"min_size" validate:"min=6"`
		Step        int     `yaml:"size_step" validate:"min=1"`
		LineSpacing int     `yaml:"line_spacing" validate:"gte=0"`
		DPI         float64 `yaml:"dpi" validate:"gte=0"`
	}

	CircleConfig struct {
		Blur float64 `yaml:"blur" validate:"gte=0"`
	}

	EngineConfig struct {
		ResourceRoot          string             `yaml:"resource_root" sanitize:"path_clean" validate:"required"`
		OutputRoot            string             `yaml:"output_root" sanitize:"path_clean" validate:"required"`
		LayoutsPath           string             `yaml:"layouts_path" sanitize:"assure_file_access"`
		Theme                 string             `yaml:"theme" validate:"required"`
		Fonts                 FontsConfig        `yaml:"fonts"`
		Fallbacks             map[string]string  `yaml:"fallbacks" validate:"dive,required"`
		Text                  TextConfig         `yaml:"text"`
		Circle                CircleConfig       `yaml:"circle"`
		Compression           common.Compression `yaml:"png_compression"`
		Workers               int                `yaml:"workers" validate:"gte=0"`
		FileNameTransliterate bool               `yaml:"file_name_transliterate"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Engine    EngineConfig   `yaml:"engine"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// Only fields defined above are allowed, typos in user configuration
	// should not be silently ignored
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to get
// sane defaults and validates the result. Empty path means defaults only.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}

// WorkerCount returns number of panels which could be built at the same time.
func (conf *EngineConfig) WorkerCount(cpus int) int {
	if conf.Workers > 0 {
		return conf.Workers
	}
	return max(cpus, 1)
}
