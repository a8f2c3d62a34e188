package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/midbel/simpledate/calendar"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var ErrConfig = errors.New("invalid configuration")

type Week struct {
	FirstDay string `yaml:"firstDay" validate:"omitempty,weekday"`
	MinDays  int    `yaml:"minDays" validate:"omitempty,min=1,max=7"`
}

type Log struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error disabled"`
}

// Config holds the settings of the command line tool. Values given on the
// command line take precedence over the ones of the file.
type Config struct {
	Locale     string `yaml:"locale"`
	Pattern    string `yaml:"pattern"`
	LocaleFile string `yaml:"localeFile" validate:"omitempty,fileexists"`
	Lenient    bool   `yaml:"lenient"`
	Week       Week   `yaml:"week"`
	Log        Log    `yaml:"log"`
}

func Default() *Config {
	return &Config{
		Locale: "en",
		Log: Log{
			Level: zerolog.LevelInfoValue,
		},
	}
}

// Load reads the configuration file at name. An empty name gives the default
// configuration.
func Load(name string) (*Config, error) {
	cfg := Default()
	if name == "" {
		return cfg, nil
	}
	r, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	if err := cfg.Decode(r); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

func (c *Config) Decode(r io.Reader) error {
	if err := yaml.NewDecoder(r).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s", ErrConfig, err)
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	validate := validator.New()
	_ = validate.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		_, err := calendar.ParseWeekday(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("fileexists", func(fl validator.FieldLevel) bool {
		info, err := os.Stat(fl.Field().String())
		return err == nil && info.Mode().IsRegular()
	})

	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("%w: %s", ErrConfig, err)
	}
	var list []string
	for _, e := range errs {
		msg := fmt.Sprintf("%s: rule %s", e.Namespace(), e.Tag())
		if e.Param() != "" {
			msg += fmt.Sprintf(" (expected: %s)", e.Param())
		}
		list = append(list, fmt.Sprintf("%s, actual: %v", msg, e.Value()))
	}
	return fmt.Errorf("%w: %s", ErrConfig, strings.Join(list, "; "))
}

// WeekRule returns the week rule of the configuration applied on top of
// base.
func (c *Config) WeekRule(base calendar.WeekRule) (calendar.WeekRule, bool) {
	var set bool
	if c.Week.FirstDay != "" {
		if day, err := calendar.ParseWeekday(c.Week.FirstDay); err == nil {
			base.FirstDay = day
			set = true
		}
	}
	if c.Week.MinDays > 0 {
		base.MinDays = c.Week.MinDays
		set = true
	}
	return base, set
}

// Logger returns a console logger writing to w. Verbose forces the debug
// level.
func (c *Config) Logger(w io.Writer, verbose bool) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil || c.Log.Level == "" {
		level = zerolog.InfoLevel
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
