package config

import (
	"errors"
	"fmt"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-alphabeta/internal/entity"
)

// relPath is where the config file is searched for inside the XDG config directories.
const relPath = "tictactoe/config.yml"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	AIMark    string `yaml:"ai-mark" env:"AI_MARK" env-default:"X"`
	BoardSize int    `yaml:"board-size" env:"BOARD_SIZE" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads the file at path, or only the environment when path is empty, and validates
// the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("could not read config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SearchPath looks for tictactoe/config.yml in the XDG config directories.
func SearchPath() (string, bool) {
	path, err := xdg.SearchConfigFile(relPath)
	if err != nil {
		return "", false
	}

	return path, true
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, that.LogLevel)
	}

	if _, err := that.GetAIMark(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if that.BoardSize != 0 && that.BoardSize <= entity.MinBoardSize {
		return fmt.Errorf("%w: board size %d, must be 0 or greater than %d", ErrInvalidConfig, that.BoardSize, entity.MinBoardSize)
	}

	return nil
}

func (that *Config) GetAIMark() (entity.Mark, error) {
	mark, err := entity.ParseMark(that.AIMark)
	if err != nil {
		return entity.MarkEmpty, fmt.Errorf("ai mark: %w", err)
	}

	return mark, nil
}
