// Package config loads translearn's settings from a YAML file, environment
// variables and built-in defaults.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TRANSLEARN_DATABASE_PATH.
const EnvPrefix = "TRANSLEARN"

type Config struct {
	Database    DatabaseConfig    `mapstructure:"database"`
	Analyzer    AnalyzerConfig    `mapstructure:"analyzer"`
	Learning    LearningConfig    `mapstructure:"learning"`
	Ingest      IngestConfig      `mapstructure:"ingest"`
	Recognition RecognitionConfig `mapstructure:"recognition"`
	Translation TranslationConfig `mapstructure:"translation"`
	Screen      ScreenConfig      `mapstructure:"screen"`
	Audio       AudioConfig       `mapstructure:"audio"`
	Server      ServerConfig      `mapstructure:"server"`
	Dictionary  DictionaryConfig  `mapstructure:"dictionary"`
}

type DatabaseConfig struct {
	Path         string        `mapstructure:"path" validate:"required"`
	MaxOpenConns int           `mapstructure:"max_open_conns" validate:"min=1"`
	BusyTimeout  time.Duration `mapstructure:"busy_timeout" validate:"gte=0"`
}

// AnalyzerConfig describes the external analyzer program. When Script is set
// it is passed as the first argument, e.g. command "python3" with a script path.
type AnalyzerConfig struct {
	Command string        `mapstructure:"command" validate:"required"`
	Script  string        `mapstructure:"script"`
	Args    []string      `mapstructure:"args"`
	Env     []string      `mapstructure:"env"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// CommandArgs returns the script (if any) followed by Args.
func (a AnalyzerConfig) CommandArgs() []string {
	var args []string
	if a.Script != "" {
		args = append(args, a.Script)
	}
	return append(args, a.Args...)
}

type LearningConfig struct {
	Workers   int `mapstructure:"workers" validate:"min=1"`
	QueueSize int `mapstructure:"queue_size" validate:"min=1"`
}

type IngestConfig struct {
	Workers   int `mapstructure:"workers" validate:"min=1"`
	QueueSize int `mapstructure:"queue_size" validate:"min=1"`
}

type RecognitionConfig struct {
	OCRCommand  string        `mapstructure:"ocr_command" validate:"required"`
	OCRLanguage string        `mapstructure:"ocr_language" validate:"required"`
	STTEngine   string        `mapstructure:"stt_engine" validate:"oneof=mock whisper"`
	STTCommand  string        `mapstructure:"stt_command"`
	STTModel    string        `mapstructure:"stt_model" validate:"required_if=STTEngine whisper"`
	STTLanguage string        `mapstructure:"stt_language"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type TranslationConfig struct {
	Prefix string `mapstructure:"prefix"`
}

// ScreenConfig names the screenshot command. Args may use the {x}, {y}, {w}
// and {h} placeholders.
type ScreenConfig struct {
	CaptureCommand string   `mapstructure:"capture_command" validate:"required"`
	CaptureArgs    []string `mapstructure:"capture_args"`
}

type AudioConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Device          string        `mapstructure:"device"`
	SampleRate      int           `mapstructure:"sample_rate" validate:"min=8000"`
	Channels        int           `mapstructure:"channels" validate:"min=1,max=2"`
	FramesPerBuffer int           `mapstructure:"frames_per_buffer" validate:"min=64"`
	ChunkDuration   time.Duration `mapstructure:"chunk_duration" validate:"gt=0"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr" validate:"required,hostname_port"`
}

type DictionaryConfig struct {
	// Path is a jmdict-simplified JSON file. Empty disables difficulty scoring.
	Path         string `mapstructure:"path"`
	AutoDownload bool   `mapstructure:"auto_download"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

// NewConfigLoader reads configFile when given, otherwise translearn.yaml in
// the working directory or $HOME/.config/translearn.
func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("translearn")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/translearn")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

// Load is shorthand for NewConfigLoader(configFile) followed by Load.
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, err
	}
	return loader.Load()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", filepath.Join("data", "translearn.db"))
	v.SetDefault("database.max_open_conns", 1)
	v.SetDefault("database.busy_timeout", 5*time.Second)

	v.SetDefault("analyzer.command", "translearn-analyzer")
	v.SetDefault("analyzer.script", "")
	v.SetDefault("analyzer.args", []string{})
	v.SetDefault("analyzer.env", []string{})
	v.SetDefault("analyzer.timeout", 60*time.Second)

	v.SetDefault("learning.workers", 2)
	v.SetDefault("learning.queue_size", 64)
	v.SetDefault("ingest.workers", 2)
	v.SetDefault("ingest.queue_size", 16)

	v.SetDefault("recognition.ocr_command", "tesseract")
	v.SetDefault("recognition.ocr_language", "jpn+eng")
	v.SetDefault("recognition.stt_engine", "mock")
	v.SetDefault("recognition.stt_command", "")
	v.SetDefault("recognition.stt_model", "")
	v.SetDefault("recognition.stt_language", "auto")
	v.SetDefault("recognition.timeout", 30*time.Second)

	v.SetDefault("translation.prefix", "[Translated] ")

	v.SetDefault("screen.capture_command", "import")
	v.SetDefault("screen.capture_args", []string{"-window", "root", "-crop", "{w}x{h}+{x}+{y}", "png:-"})

	v.SetDefault("audio.enabled", false)
	v.SetDefault("audio.device", "")
	v.SetDefault("audio.sample_rate", 16000)
	v.SetDefault("audio.channels", 1)
	v.SetDefault("audio.frames_per_buffer", 1024)
	v.SetDefault("audio.chunk_duration", 5*time.Second)

	v.SetDefault("server.addr", "127.0.0.1:8765")

	v.SetDefault("dictionary.path", "")
	v.SetDefault("dictionary.auto_download", false)
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
