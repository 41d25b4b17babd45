// Package config loads planner settings from .planner.yaml, the environment
// and command line overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/planner/pkg/layout"
	"tableflip.dev/planner/pkg/planner"
	"tableflip.dev/planner/pkg/render"
	"tableflip.dev/planner/pkg/timeutil"
)

// EnvConfigPath names a directory searched for .planner.yaml before ./.
const EnvConfigPath = "PLANNER_CONFIG_PATH"

// Keys understood in the config file and, upper-cased with a PLANNER_
// prefix, in the environment.
const (
	KeyOutput      = "output"
	KeyYear        = "year"
	KeyTitle       = "title"
	KeyAuthor      = "author"
	KeyFontRegular = "fonts.regular"
	KeyFontItalic  = "fonts.italic"
	KeyPagesPerDay = "pages-per-day"
	KeyLeapYear    = "leap-year"
	KeyCompress    = "compress"
	KeyColors      = "colors"
)

// Config is the resolved set of planner settings.
type Config struct {
	Output      string           `json:"output"`
	Year        int              `json:"year"`
	Title       string           `json:"title"`
	Author      string           `json:"author,omitempty"`
	Fonts       render.FontPaths `json:"fonts"`
	PagesPerDay int              `json:"pagesPerDay"`
	// LeapYear lays out February 29 when Year has one; otherwise every
	// year gets the 365 day structure.
	LeapYear bool `json:"leapYear,omitempty"`
	// Compress deflates the PDF content streams.
	Compress bool              `json:"compress"`
	Colors   map[string]string `json:"colors,omitempty"`

	// File is the config file that was read, empty when none was found.
	File string `json:"file,omitempty"`
}

// Defaults registers default values on v.
func Defaults(v *viper.Viper) {
	v.SetDefault(KeyOutput, "output/BulletJournal_rPPM_v2.pdf")
	v.SetDefault(KeyYear, 2026)
	v.SetDefault(KeyTitle, "Bullet Journal")
	v.SetDefault(KeyFontRegular, "fonts/EBGaramond-Regular.ttf")
	v.SetDefault(KeyFontItalic, "fonts/EBGaramond-Italic.ttf")
	v.SetDefault(KeyPagesPerDay, 1)
	v.SetDefault(KeyLeapYear, false)
	v.SetDefault(KeyCompress, true)
}

// New returns a viper instance set up to search for .planner.yaml and read
// PLANNER_* environment variables.
func New() *viper.Viper {
	v := viper.New()
	Defaults(v)
	v.SetConfigName(".planner") // .yaml is implicit
	v.SetEnvPrefix("PLANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(EnvConfigPath); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	return v
}

// Load reads the config file if there is one and resolves the settings.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = New()
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading %s: %w", v.ConfigFileUsed(), err)
		}
	}

	c := &Config{
		Output: v.GetString(KeyOutput),
		Year:   v.GetInt(KeyYear),
		Title:  v.GetString(KeyTitle),
		Author: v.GetString(KeyAuthor),
		Fonts: render.FontPaths{
			Regular: v.GetString(KeyFontRegular),
			Italic:  v.GetString(KeyFontItalic),
		},
		PagesPerDay: v.GetInt(KeyPagesPerDay),
		LeapYear:    v.GetBool(KeyLeapYear),
		Compress:    v.GetBool(KeyCompress),
		Colors:      v.GetStringMapString(KeyColors),
		File:        v.ConfigFileUsed(),
	}

	var err error
	if c.Output, err = homedir.Expand(c.Output); err != nil {
		return nil, fmt.Errorf("config: %s: %w", KeyOutput, err)
	}
	return c, c.Validate()
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Output == "" {
		errs = append(errs, fmt.Errorf("config: %s is empty", KeyOutput))
	}
	if _, err := timeutil.ParseYear(c.Year); err != nil {
		errs = append(errs, fmt.Errorf("config: %s: %w", KeyYear, err))
	}
	if c.PagesPerDay < 1 || c.PagesPerDay > 2 {
		errs = append(errs, fmt.Errorf("config: %s must be 1 or 2, got %d", KeyPagesPerDay, c.PagesPerDay))
	}
	if _, err := planner.NewTheme(c.Colors); err != nil {
		errs = append(errs, fmt.Errorf("config: %s: %w", KeyColors, err))
	}
	return errors.Join(errs...)
}

// Structure is the page structure for the configured year. February 29 is
// only laid out when LeapYear is set.
func (c *Config) Structure() layout.Structure {
	s := layout.Default()
	if c.LeapYear {
		s = layout.ForYear(c.Year)
	}
	s.PagesPerDay = c.PagesPerDay
	return s
}

// Generator builds a planner generator from the settings.
func (c *Config) Generator() (*planner.Generator, error) {
	t, err := layout.New(c.Structure())
	if err != nil {
		return nil, err
	}
	theme, err := planner.NewTheme(c.Colors)
	if err != nil {
		return nil, err
	}
	return &planner.Generator{
		Table: t,
		Theme: theme,
		Title: c.Title,
		Year:  c.Year,
	}, nil
}
