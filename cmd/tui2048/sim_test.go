package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/share"
)

func TestParseMoves(t *testing.T) {
	L, R, U, D := t2048.DirLeft, t2048.DirRight, t2048.DirUp, t2048.DirDown

	tests := []struct {
		in      string
		want    []t2048.Direction
		wantErr bool
	}{
		{"", []t2048.Direction{}, false},
		{"LLUR", []t2048.Direction{L, L, U, R}, false},
		{"lrud", []t2048.Direction{L, R, U, D}, false},
		{"left", []t2048.Direction{L}, false},
		{"left,up, right", []t2048.Direction{L, U, R}, false},
		{"down down", []t2048.Direction{D, D}, false},
		{"LX", nil, true},
		{"left,sideways", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseMoves(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseMoves(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseMoves(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("move %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	moves, err := parseMoves("LURDLURDLLRRUUDD")
	if err != nil {
		t.Fatal(err)
	}
	preset, _ := t2048.PresetByName("classic")

	var a, b bytes.Buffer
	sa := simulate(&a, preset, 42, moves, nil, true)
	sb := simulate(&b, preset, 42, moves, nil, true)

	if sa != sb {
		t.Error("same seed and moves should give the same state")
	}
	if a.String() != b.String() {
		t.Error("same seed and moves should print the same report")
	}
	if sa.Moves > len(moves) {
		t.Errorf("effective moves %d exceed requested %d", sa.Moves, len(moves))
	}
}

func TestSimulateWithoutMoves(t *testing.T) {
	preset, _ := t2048.PresetByName("easy")

	var out bytes.Buffer
	state := simulate(&out, preset, 5, nil, nil, false)

	if n := t2048.TileCount(state.Board); n != 2 {
		t.Errorf("fresh game has %d tiles, want 2", n)
	}
	report := out.String()
	for _, want := range []string{"Variant: 2048 (Easy)", "Seed: 5", "Score: 0", "Moves: 0/0 applied", "Status: playing"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
	if got := strings.Count(report, "\n"); got < t2048.BoardSize+3 {
		t.Errorf("report too short:\n%s", report)
	}
}

func TestSimulateStopsAtGameOver(t *testing.T) {
	sharer, err := share.New(config.ShareConfig{URL: "https://example.test"})
	if err != nil {
		t.Fatal(err)
	}
	preset, _ := t2048.PresetByName("hard")

	moves := make([]t2048.Direction, 0, 4000)
	for range 1000 {
		moves = append(moves, t2048.DirLeft, t2048.DirUp, t2048.DirRight, t2048.DirDown)
	}

	var out bytes.Buffer
	state := simulate(&out, preset, 9, moves, sharer, false)

	if !t2048.ValidTiles(state.Board) {
		t.Fatal("board holds invalid tiles")
	}
	if state.Over {
		if !strings.Contains(out.String(), "Status: over") || !strings.Contains(out.String(), "https://example.test") {
			t.Errorf("finished game should report status and share text:\n%s", out.String())
		}
	} else if strings.Contains(out.String(), "example.test") {
		t.Error("share text printed for an unfinished game")
	}
}
