package cmd

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/minefield/director/constraint"
	"github.com/they4kman/minefield/game"
	"github.com/they4kman/minefield/render"
)

type options struct {
	config      game.GameConfig
	configPath  string
	useDirector bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := options{config: game.NewGameConfig()}

	rootCmd := &cobra.Command{
		Use:   "minefield",
		Short: "Play manual or computer-driven Minesweeper in the terminal",
		Long: `minefield is a Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play manually, typing one move per line:
	r X Y   reveal the cell at column X, row Y
	f X Y   place or remove a flag
	c X Y   chord: reveal around a satisfied number
	q       quit

Use the director flag to make the computer play for you
	minefield --director
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.resolveConfig(cmd)
			if err != nil {
				return err
			}

			log := logrus.New()
			log.SetOutput(cmd.ErrOrStderr())
			if opts.verbose {
				log.SetLevel(logrus.DebugLevel)
			} else {
				log.SetLevel(logrus.WarnLevel)
			}
			config.Logger = log

			session, err := game.NewSession(config)
			if err != nil {
				return err
			}

			if opts.useDirector {
				return runDirector(session, config, log, cmd.OutOrStdout())
			}
			return play(session, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&opts.config.Cols, "width", "w", opts.config.Cols, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&opts.config.Rows, "height", "h", opts.config.Rows, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&opts.config.NumMines, "mines", "m", opts.config.NumMines, "Number of mines to place in the game board")
	rootCmd.Flags().Int64Var(&opts.config.Seed, "seed", 0, "Seed for mine placement (0 picks one from the clock)")
	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML file to read the game config from; flags override it")
	rootCmd.Flags().BoolVarP(&opts.useDirector, "director", "d", false, "Make the computer play")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every move")

	return rootCmd
}

// resolveConfig layers explicitly set flags on top of the config file, if any
func (opts *options) resolveConfig(cmd *cobra.Command) (game.GameConfig, error) {
	if opts.configPath == "" {
		return opts.config, nil
	}

	config, err := game.LoadGameConfig(opts.configPath)
	if err != nil {
		return config, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		config.Cols = opts.config.Cols
	}
	if flags.Changed("height") {
		config.Rows = opts.config.Rows
	}
	if flags.Changed("mines") {
		config.NumMines = opts.config.NumMines
	}
	if flags.Changed("seed") {
		config.Seed = opts.config.Seed
	}
	return config, nil
}

func play(session *game.Session, in io.Reader, out io.Writer) error {
	if err := render.Board(out, session); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for session.CanPlay() && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		quit, err := applyMove(session, line, out)
		if quit {
			return nil
		}
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}

		if err := render.Board(out, session); err != nil {
			return err
		}
	}

	if report, lost := session.LossReport(); lost {
		fmt.Fprintf(out, "boom at %v; %d wrong flag(s)\n", report.Detonated, len(report.IncorrectFlags))
	}
	return scanner.Err()
}

func applyMove(session *game.Session, line string, out io.Writer) (quit bool, err error) {
	fields := strings.Fields(line)

	switch fields[0] {
	case "q", "quit":
		return true, nil
	case "r", "reveal", "f", "flag", "c", "chord":
	default:
		return false, errors.Errorf("unknown command %q", fields[0])
	}

	if len(fields) != 3 {
		return false, errors.Errorf("usage: %s X Y", fields[0])
	}
	x, err := strconv.Atoi(fields[1])
	if err != nil {
		return false, errors.Wrap(err, "parsing X")
	}
	y, err := strconv.Atoi(fields[2])
	if err != nil {
		return false, errors.Wrap(err, "parsing Y")
	}

	switch fields[0] {
	case "f", "flag":
		outcome, err := session.ToggleFlag(x, y)
		if err == nil && outcome == game.Refused {
			fmt.Fprintln(out, "no flags left")
		}
		return false, err
	case "c", "chord":
		_, err = session.Chord(x, y)
	default:
		_, err = session.Reveal(x, y)
	}
	return false, err
}

func runDirector(session *game.Session, config game.GameConfig, log logrus.FieldLogger, out io.Writer) error {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	director := &constraint.Director{
		Rand: rand.New(rand.NewSource(seed)),
		Log:  log,
	}

	err := game.RunDirector(director, session, 2*session.Board().NumCells(), func() {
		log.WithField("flags", session.FlagsRemaining()).Debug("director moved")
	})
	if err != nil {
		return err
	}

	return render.Board(out, session)
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
