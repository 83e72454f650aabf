package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/share"
)

var (
	flagMoves   string
	flagVariant string
	flagVerbose bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Replay a move sequence without a terminal UI",
	Long: `Run a game headlessly and print the final board.

Moves are either letters (U, D, L, R) or comma/space separated names.
With the same --seed the result is always the same, which makes sim
handy for reproducing a game.

Examples:
  tui2048 sim --seed 7 --moves LLUR
  tui2048 sim --seed 7 --moves "left,up,right" --verbose
  tui2048 sim --variant hard --seed 3 --moves DDLL`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Moves to apply, e.g. LLUR or left,up")
	simCmd.Flags().StringVar(&flagVariant, "variant", "", "Variant to simulate (default from config)")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print the board after every move")
}

func runSim(cmd *cobra.Command, _ []string) error {
	name := flagVariant
	if name == "" {
		name = appConfig.Variant
	}
	preset, err := t2048.PresetByName(name)
	if err != nil {
		return err
	}

	moves, err := parseMoves(flagMoves)
	if err != nil {
		return err
	}

	sharer, err := share.New(appConfig.Share)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}
	simulate(cmd.OutOrStdout(), preset, seed, moves, sharer, flagVerbose)
	return nil
}

// parseMoves accepts "LLUR" as well as "left, up right".
func parseMoves(s string) ([]t2048.Direction, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 1 && len(fields[0]) > 1 {
		if _, err := t2048.ParseDirection(fields[0]); err != nil {
			fields = strings.Split(fields[0], "")
		}
	}

	moves := make([]t2048.Direction, 0, len(fields))
	for _, f := range fields {
		dir, err := t2048.ParseDirection(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, dir)
	}
	return moves, nil
}

// simulate plays moves from a seeded start and writes a report to out.
// Moves after game over are skipped.
func simulate(out io.Writer, preset t2048.Preset, seed int64, moves []t2048.Direction, sharer *share.Sharer, verbose bool) t2048.GameState {
	engine := t2048.NewEngine(preset.Rules(), t2048.NewRandomSource(seed))
	state := engine.Initialize()

	if verbose {
		fmt.Fprintf(out, "start\n%s\n", t2048.FormatBoard(state.Board))
	}

	applied := 0
	for _, dir := range moves {
		if state.Over {
			break
		}
		next, res := engine.ApplyMove(state, dir)
		state = next
		applied++
		if verbose {
			moved := "no-op"
			if res.Moved {
				moved = fmt.Sprintf("+%d", res.ScoreDelta)
			}
			fmt.Fprintf(out, "%s (%s)\n%s\n", dir, moved, t2048.FormatBoard(state.Board))
		}
	}

	if !verbose {
		fmt.Fprint(out, t2048.FormatBoard(state.Board))
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "Variant: %s  Seed: %d\n", preset.Title, seed)
	fmt.Fprintf(out, "Score: %s  Max tile: %d  Moves: %d/%d applied, %d effective\n",
		humanize.Comma(int64(state.Score)), t2048.MaxTile(state.Board), applied, len(moves), state.Moves)
	fmt.Fprintf(out, "Status: %s\n", state.Status())
	if state.Over && sharer != nil {
		fmt.Fprintln(out, sharer.Message(state.Score, t2048.MaxTile(state.Board)))
	}
	return state
}
