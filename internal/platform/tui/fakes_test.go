package tui

import (
	"errors"
	"sync"
	"time"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func init() {
	registry.Register("zz_fake", func() registry.Game { return newFakeGame(3) })
}

// fakeGame ends after overAfter successful moves, scoring 4 per move.
type fakeGame struct {
	overAfter int
	state     core.GameState
	resets    int
	lastSeed  int64
	shareText string
	w, h      int
}

func newFakeGame(overAfter int) *fakeGame {
	return &fakeGame{overAfter: overAfter}
}

func (g *fakeGame) ID() string    { return "zz_fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.lastSeed = cfg.Seed
	g.state = core.GameState{}
	g.shareText = ""
	g.w, g.h = cfg.ScreenW, cfg.ScreenH
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if g.state.GameOver || in.Empty() {
		return core.StepResult{State: g.state}
	}
	g.state.Score += 4
	g.state.MaxTile = 4
	g.state.Moves++
	if g.state.Moves >= g.overAfter {
		g.state.GameOver = true
	}
	return core.StepResult{State: g.state, Moved: true}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake board")
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) SetShareText(text string) { g.shareText = text }

func (g *fakeGame) Resize(w, h int) { g.w, g.h = w, h }

// fakeStore keeps records in memory.
type fakeStore struct {
	mu      sync.Mutex
	records []storage.ScoreRecord
	failing bool
}

func (s *fakeStore) SaveScore(rec storage.ScoreRecord) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return 0, errors.New("disk full")
	}
	s.records = append(s.records, rec)
	return int64(len(s.records)), nil
}

func (s *fakeStore) TopScores(gameID string, _ int) ([]storage.ScoreEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []storage.ScoreEntry
	for i, r := range s.records {
		if r.GameID != gameID {
			continue
		}
		out = append(out, storage.ScoreEntry{
			ID: int64(i + 1), GameID: r.GameID, RunID: r.RunID, Player: r.Player,
			Score: r.Score, MaxTile: r.MaxTile, Won: r.Won, Moves: r.Moves,
			CreatedAt: time.Now().Add(-time.Hour),
		})
	}
	return out, nil
}

func (s *fakeStore) HighScore(gameID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	best := 0
	for _, r := range s.records {
		if r.GameID == gameID && r.Score > best {
			best = r.Score
		}
	}
	return best, nil
}
