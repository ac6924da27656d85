// Package config loads the settings of the maxflow command from defaults,
// an optional config file and MAXFLOW_* environment variables, and
// validates them.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned by Load when a field fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix is prepended to every key when reading the environment,
// e.g. MAXFLOW_LOG_LEVEL.
const EnvPrefix = "MAXFLOW"

// Keys understood by New and Load.
const (
	KeyInput            = "input"
	KeySource           = "source"
	KeySink             = "sink"
	KeyEngine           = "engine"
	KeyEpsilon          = "epsilon"
	KeyMaxAugmentations = "max_augmentations"
	KeyTimeout          = "timeout"
	KeyDuplicates       = "duplicates"
	KeyLogLevel         = "log_level"
	KeyTrace            = "trace"
	KeyRandom           = "random"
	KeyProbability      = "probability"
	KeySeed             = "seed"
)

// Config is the validated configuration of one run.
//
// Either Input names an edge-list file and Source/Sink name two of its
// labels, or Random > 0 asks for a generated network whose source is node 0
// and whose sink is node Random-1.
type Config struct {
	Input            string        `mapstructure:"input" validate:"required_without=Random"`
	Source           string        `mapstructure:"source" validate:"required_without=Random"`
	Sink             string        `mapstructure:"sink" validate:"required_without=Random"`
	Engine           string        `mapstructure:"engine" validate:"oneof=edmonds-karp dinic"`
	Epsilon          float64       `mapstructure:"epsilon" validate:"gte=0"`
	MaxAugmentations int           `mapstructure:"max_augmentations" validate:"gte=0"`
	Timeout          time.Duration `mapstructure:"timeout" validate:"gte=0"`
	Duplicates       string        `mapstructure:"duplicates" validate:"oneof=ignore overwrite sum"`
	LogLevel         string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Trace            bool          `mapstructure:"trace"`
	Random           int           `mapstructure:"random" validate:"omitempty,gte=2"`
	Probability      float64       `mapstructure:"probability" validate:"gte=0,lte=1"`
	Seed             uint64        `mapstructure:"seed"`
}

// New returns a viper instance with every key defaulted and environment
// overrides enabled. file, when not empty, is read by Load.
func New(file string) *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyInput, "")
	v.SetDefault(KeySource, "")
	v.SetDefault(KeySink, "")
	v.SetDefault(KeyEngine, "edmonds-karp")
	v.SetDefault(KeyEpsilon, 1e-9)
	v.SetDefault(KeyMaxAugmentations, 0)
	v.SetDefault(KeyTimeout, 30*time.Second)
	v.SetDefault(KeyDuplicates, "ignore")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyTrace, true)
	v.SetDefault(KeyRandom, 0)
	v.SetDefault(KeyProbability, 0.3)
	v.SetDefault(KeySeed, uint64(1))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	}

	return v
}

// Load reads the config file (if one was set), decodes every key and
// validates the result. Validation failures wrap ErrInvalidConfig and list
// one English message per field.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decode: %w", err)
	}
	if err := validate(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// validate runs the struct tags and translates failures to English.
func validate(cfg Config) error {
	validate := validator.New()
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(trans))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
