package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"chartscope/chart"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Padding mirrors chart.Padding with config keys.
type Padding struct {
	Top    int `mapstructure:"top"`
	Bottom int `mapstructure:"bottom"`
	Left   int `mapstructure:"left"`
	Right  int `mapstructure:"right"`
}

// Config holds the visual settings a user may override from a file or
// CHARTSCOPE_* environment variables.
type Config struct {
	Padding       Padding `mapstructure:"padding"`
	Ratio         float64 `mapstructure:"ratio"`
	OverviewRatio float64 `mapstructure:"overview_ratio"`
	LineWidth     float64 `mapstructure:"line_width"`
	XLabels       int     `mapstructure:"x_labels"`
	YLines        int     `mapstructure:"y_lines"`
	Locale        string  `mapstructure:"locale"`
	DebounceMS    int     `mapstructure:"debounce_ms"`
	DurationMS    int     `mapstructure:"duration_ms"`
	Data          string  `mapstructure:"data"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("padding.top", 20)
	v.SetDefault("padding.bottom", 30)
	v.SetDefault("padding.left", 16)
	v.SetDefault("padding.right", 16)
	v.SetDefault("ratio", 0.5)
	v.SetDefault("overview_ratio", 0.1)
	v.SetDefault("line_width", 2)
	v.SetDefault("x_labels", 6)
	v.SetDefault("y_lines", 5)
	v.SetDefault("locale", "en")
	v.SetDefault("debounce_ms", int(chart.DefaultDebounce/time.Millisecond))
	v.SetDefault("duration_ms", 300)
}

// Load reads path, or $HOME/.chartscope.yaml when path is empty. A missing
// default file is not an error; a missing explicit one is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("chartscope")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return nil, fmt.Errorf("config: home dir: %w", err)
		}
		v.AddConfigPath(home)
		v.SetConfigName(".chartscope")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return &cfg, nil
}

// Options converts the config into chart options.
func (c *Config) Options() []chart.Option {
	return []chart.Option{
		chart.WithPadding(chart.Padding{
			Top:    c.Padding.Top,
			Bottom: c.Padding.Bottom,
			Left:   c.Padding.Left,
			Right:  c.Padding.Right,
		}),
		chart.WithRatio(c.Ratio, c.OverviewRatio),
		chart.WithLineWidth(float32(c.LineWidth)),
		chart.WithLabels(c.XLabels, c.YLines),
		chart.WithLocale(c.Locale),
		chart.WithDebounce(time.Duration(c.DebounceMS) * time.Millisecond),
		chart.WithDuration(time.Duration(c.DurationMS) * time.Millisecond),
	}
}
