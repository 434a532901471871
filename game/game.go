package game

import (
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type GameConfig struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	NumMines int `yaml:"mines"`

	// Seed for mine placement; zero seeds from the clock
	Seed int64 `yaml:"seed"`

	// Explicit mine layout. When set, NumMines and Seed are ignored.
	Mines []Coord `yaml:"-"`

	Logger logrus.FieldLogger `yaml:"-"`
	Clock  Clock              `yaml:"-"`

	// Called once, when the first move of the game is accepted
	OnTimerStart func(*Session) `yaml:"-"`
	// Called once, when the game is won or lost
	OnTimerStop func(*Session) `yaml:"-"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Rows:     16,
		Cols:     30,
		NumMines: 99,
	}
}

// LoadGameConfig reads a YAML config file on top of the defaults
func LoadGameConfig(path string) (GameConfig, error) {
	config := NewGameConfig()

	in, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrap(err, "reading game config")
	}
	if err := yaml.UnmarshalStrict(in, &config); err != nil {
		return config, errors.Wrapf(err, "parsing game config %s", path)
	}
	return config, nil
}

func (config GameConfig) Validate() error {
	if config.Mines != nil {
		return validateDimensions(config.Rows, config.Cols, 0)
	}
	return validateDimensions(config.Rows, config.Cols, config.NumMines)
}

func (config GameConfig) rand() *rand.Rand {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (config GameConfig) createBoard() (*Board, error) {
	if config.Mines != nil {
		return NewBoardWithMines(config.Rows, config.Cols, config.Mines)
	}
	return NewBoard(config.Rows, config.Cols, config.NumMines, config.rand())
}

func (config GameConfig) logger() logrus.FieldLogger {
	if config.Logger == nil {
		return logrus.StandardLogger()
	}
	return config.Logger
}
