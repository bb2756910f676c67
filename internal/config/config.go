package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	UIAuto    = "auto"
	UITview   = "tview"
	UIConsole = "console"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:"tictactoe.log"`
	UI       string `yaml:"ui" env:"TICTACTOE_UI" env-default:"auto"`
	Colors   Colors `yaml:"colors"`
}

// Colors are the highlight colors of a winning line.
type Colors struct {
	WinnerX string `yaml:"winner-x" env:"TICTACTOE_COLOR_X" env-default:"#e02f1f"`
	WinnerO string `yaml:"winner-o" env:"TICTACTOE_COLOR_O" env-default:"#1f36e0"`
}

// MustLoad - load all configurations in config.yml file.
// A missing file is not an error: defaults and environment are used instead.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("could not read env: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("could not read config %s: %w", path, err)
	}

	return config, nil
}
