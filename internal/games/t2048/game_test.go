package t2048

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed})
	return g
}

func TestPresetsRegistered(t *testing.T) {
	for _, p := range Presets {
		if !registry.Exists(p.ID) {
			t.Errorf("preset %q not registered", p.ID)
			continue
		}
		g, err := registry.Create(p.ID)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", p.ID, err)
		}
		if g.Title() != p.Title {
			t.Errorf("Title() = %q, want %q", g.Title(), p.Title)
		}
	}
}

func TestDeterministicReset(t *testing.T) {
	a := newTestGame(42)
	b := newTestGame(42)

	moves := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
	for i := range 200 {
		in := core.FrameOf(moves[i%len(moves)])
		a.Step(in)
		b.Step(in)
	}

	if a.Snapshot() != b.Snapshot() {
		t.Errorf("same seed produced different games:\n%+v\n%+v", a.Snapshot(), b.Snapshot())
	}
}

func TestResetClearsPreviousGame(t *testing.T) {
	g := newTestGame(3)
	for range 20 {
		g.Step(core.FrameOf(core.ActionLeft))
		g.Step(core.FrameOf(core.ActionDown))
	}

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 3})
	snap := g.Snapshot()
	if snap.Moves != 0 || snap.Score != 0 || TileCount(snap.Board) != 2 {
		t.Errorf("Reset did not start a fresh game: %+v", snap)
	}
}

func TestStepMapsDirections(t *testing.T) {
	g := newTestGame(1)
	g.state = GameState{Board: Board{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {2, 0, 0, 0}}}

	res := g.Step(core.FrameOf(core.ActionUp))
	if !res.Moved {
		t.Fatal("up should move the tile")
	}
	if g.GameState().Board[0][0] != 2 {
		t.Errorf("tile did not reach the top:\n%s", FormatBoard(g.GameState().Board))
	}
	if res.State.Moves != 1 {
		t.Errorf("Moves = %d, want 1", res.State.Moves)
	}
	if g.LastMove().Spawned == nil {
		t.Error("successful move should spawn a tile")
	}
}

func TestStepIgnoresNonDirectional(t *testing.T) {
	g := newTestGame(1)
	before := g.Snapshot()

	for _, a := range []core.Action{core.ActionNone, core.ActionConfirm, core.ActionShare, core.ActionRestart} {
		if res := g.Step(core.FrameOf(a)); res.Moved {
			t.Errorf("action %s should not move", a)
		}
	}
	if g.Snapshot() != before {
		t.Error("non-directional input changed the game")
	}
}

func TestStepPausedWhenTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, Seed: 9})
	before := g.GameState()

	g.Step(core.FrameOf(core.ActionLeft))
	g.Step(core.FrameOf(core.ActionUp))

	if g.GameState() != before {
		t.Error("game should not advance while the window is too small")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %s, want %s", g.Snapshot().State, StatePausedSmall)
	}

	g.Resize(80, 24)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("after resize State = %s, want %s", g.Snapshot().State, StatePlaying)
	}
}

func TestStateReportsWinAndOver(t *testing.T) {
	g := newTestGame(5)
	g.state = GameState{Board: Board{{1024, 1024}}}

	g.Step(core.FrameOf(core.ActionLeft))
	st := g.State()
	if !st.Won || st.MaxTile != 2048 || st.Score != 2048 {
		t.Errorf("State() after winning merge = %+v", st)
	}
	if g.Snapshot().State != StateWon {
		t.Errorf("Snapshot state = %s, want %s", g.Snapshot().State, StateWon)
	}

	g.state.Over = true
	if !g.State().GameOver || g.Snapshot().State != StateGameOver {
		t.Error("Over should be reported as game over")
	}
}

func TestRenderShowsBoard(t *testing.T) {
	g := newTestGame(11)
	g.state = GameState{Board: Board{{2, 0, 0, 0}, {0, 128, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 2048}}, Score: 1234}

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	for _, want := range []string{"Score: 1234", "Best: 2048", "128", "┌", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(11)
	g.state.Over = true
	g.SetShareText("I scored 0 in 2048!")

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over overlay not rendered")
	}
	if !strings.Contains(out, "I scored 0 in 2048!") {
		t.Error("share text not rendered")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 6})

	scr := core.NewScreen(20, 6)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("small window message not rendered")
	}
}

func TestTileColorMonotonic(t *testing.T) {
	prev := TileColor(2)
	changes := 0
	for v := 4; v <= 4096; v *= 2 {
		c := TileColor(v)
		if c < prev {
			t.Errorf("TileColor(%d) = %d is lighter than the previous tile", v, c)
		}
		if c != prev {
			changes++
		}
		prev = c
	}
	if changes < 5 {
		t.Errorf("expected the ramp to change at least 5 times, got %d", changes)
	}
	if TileColor(0) != core.ColorGray {
		t.Error("empty cells should be gray")
	}
}
