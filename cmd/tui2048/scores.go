package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a variant",
	Long: `Display the top scores and overall statistics for a variant.

Examples:
  tui2048 scores
  tui2048 scores hard --limit 20
  tui2048 scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the variant")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	name := appConfig.Variant
	if len(args) > 0 {
		name = args[0]
	}
	preset, err := t2048.PresetByName(name)
	if err != nil {
		return fmt.Errorf("%w (run 'tui2048 list' to see variants)", err)
	}

	store, err := storage.Open(appConfig.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		n, err := store.ClearScores(preset.ID)
		if err != nil {
			return err
		}
		logger.Info("scores cleared", "game", preset.ID, "rows", n)
		fmt.Fprintf(out, "Removed %s %s from %s.\n", humanize.Comma(n), plural(n, "score"), preset.Title)
		return nil
	}

	scores, err := store.TopScores(preset.ID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", preset.Title)
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'tui2048 play %s' to set the first high score!\n", preset.Name)
		return nil
	}
	printScores(out, scores)

	stats, err := store.GameStats(preset.ID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Games: %s  Wins: %s  Best tile: %d  Average: %s  Last played: %s\n",
		humanize.Comma(int64(stats.GamesCount)),
		humanize.Comma(int64(stats.Wins)),
		stats.BestTile,
		humanize.CommafWithDigits(stats.AvgScore, 0),
		humanize.Time(stats.LastPlayed),
	)
	return nil
}

func printScores(out io.Writer, scores []storage.ScoreEntry) {
	fmt.Fprintf(out, "  %-4s  %10s  %6s  %6s  %-12s  %s\n", "Rank", "Score", "Tile", "Moves", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %10s  %6s  %6s  %-12s  %s\n", "----", "-----", "----", "-----", "------", "----")
	for i, e := range scores {
		tile := fmt.Sprint(e.MaxTile)
		if e.Won {
			tile += "*"
		}
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-4d  %10s  %6s  %6d  %-12s  %s\n",
			i+1, humanize.Comma(int64(e.Score)), tile, e.Moves, player, e.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func plural(n int64, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
