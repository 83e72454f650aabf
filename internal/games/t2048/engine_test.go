package t2048

import (
	"testing"
)

// scriptedSource replays fixed random values. When a script runs out IntN
// returns 0 and Float64 returns 0.5, which spawns a 2.
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0] % n
	s.ints = s.ints[1:]
	return v
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine(Rules{Spawn4Prob: 2}, &scriptedSource{})
	if e.Rules() != DefaultRules() {
		t.Errorf("Rules() = %+v, want defaults %+v", e.Rules(), DefaultRules())
	}
}

func TestNewEngineZeroSpawn4Prob(t *testing.T) {
	e := NewEngine(Rules{}, &scriptedSource{floats: []float64{0}})
	r := e.Rules()
	if r.Spawn4Prob != 0 {
		t.Errorf("Spawn4Prob = %v, zero is a valid setting", r.Spawn4Prob)
	}
	if r.WinTile != 2048 || r.InitialTiles != 2 {
		t.Errorf("Rules() = %+v, zero WinTile and InitialTiles should use defaults", r)
	}

	var b Board
	if tile, ok := e.SpawnTile(&b); !ok || tile.Value != 2 {
		t.Errorf("SpawnTile() = %+v, %v; want a 2 even for the lowest roll", tile, ok)
	}
}

func TestInitializeSpawnsTwoTiles(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		e := NewEngine(DefaultRules(), NewRandomSource(seed))
		s := e.Initialize()

		if got := TileCount(s.Board); got != 2 {
			t.Fatalf("seed %d: Initialize placed %d tiles, want 2", seed, got)
		}
		if !ValidTiles(s.Board) {
			t.Fatalf("seed %d: invalid tiles\n%s", seed, FormatBoard(s.Board))
		}
		for _, row := range s.Board {
			for _, v := range row {
				if v != 0 && v != 2 && v != 4 {
					t.Fatalf("seed %d: initial tile %d, want 2 or 4", seed, v)
				}
			}
		}
		if s.Score != 0 || s.Won || s.Over || s.Moves != 0 {
			t.Fatalf("seed %d: fresh state not zeroed: %+v", seed, s)
		}
	}
}

func TestInitializePositionsVary(t *testing.T) {
	seen := make(map[Board]bool)
	for seed := int64(1); seed <= 100; seed++ {
		e := NewEngine(DefaultRules(), NewRandomSource(seed))
		seen[e.Initialize().Board] = true
	}
	if len(seen) < 20 {
		t.Errorf("only %d distinct starting boards over 100 seeds", len(seen))
	}
}

func TestSpawnDistribution(t *testing.T) {
	fours, total := 0, 0
	for seed := int64(1); seed <= 2000; seed++ {
		e := NewEngine(DefaultRules(), NewRandomSource(seed))
		s := e.Initialize()
		for _, row := range s.Board {
			for _, v := range row {
				switch v {
				case 4:
					fours++
					total++
				case 2:
					total++
				}
			}
		}
	}

	ratio := float64(fours) / float64(total)
	if ratio < 0.07 || ratio > 0.13 {
		t.Errorf("share of fours = %.3f over %d spawns, want about 0.10", ratio, total)
	}
}

func TestSpawnTileScripted(t *testing.T) {
	e := NewEngine(DefaultRules(), &scriptedSource{ints: []int{3}, floats: []float64{0.05}})
	board := Board{
		{2, 0, 0, 2},
		{0, 2, 2, 2},
		{2, 2, 2, 2},
		{2, 2, 2, 0},
	}

	tile, ok := e.SpawnTile(&board)
	if !ok {
		t.Fatal("SpawnTile on a board with empty cells should succeed")
	}
	// Empty cells in row-major order: (0,1) (0,2) (1,0) (3,3).
	want := Tile{Pos: Position{Row: 3, Col: 3}, Value: 4}
	if tile != want {
		t.Errorf("SpawnTile = %+v, want %+v", tile, want)
	}
	if board[3][3] != 4 {
		t.Errorf("board not updated:\n%s", FormatBoard(board))
	}
}

func TestSpawnTileFullBoard(t *testing.T) {
	e := NewEngine(DefaultRules(), &scriptedSource{})
	board := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	original := board

	if _, ok := e.SpawnTile(&board); ok {
		t.Error("SpawnTile on a full board should report false")
	}
	if board != original {
		t.Error("SpawnTile on a full board must not change it")
	}
}

func TestApplyMoveNoop(t *testing.T) {
	e := NewEngine(DefaultRules(), &scriptedSource{})
	s := GameState{Board: Board{{2, 4, 8, 16}}, Score: 12}

	next, res := e.ApplyMove(s, DirLeft)

	if next != s {
		t.Errorf("no-op move changed state: %+v", next)
	}
	if res.Moved || res.ScoreDelta != 0 || res.Spawned != nil {
		t.Errorf("no-op move result = %+v", res)
	}
}

func TestApplyMoveMergeAndSpawn(t *testing.T) {
	e := NewEngine(DefaultRules(), &scriptedSource{ints: []int{14}})
	s := GameState{Board: Board{{2, 2, 0, 0}}}

	next, res := e.ApplyMove(s, DirLeft)

	if next.Board[0] != [4]int{4, 0, 0, 0} {
		t.Errorf("row 0 = %v, want [4 0 0 0]", next.Board[0])
	}
	if next.Score != 4 || res.ScoreDelta != 4 {
		t.Errorf("score = %d delta = %d, want 4", next.Score, res.ScoreDelta)
	}
	if next.Moves != 1 {
		t.Errorf("Moves = %d, want 1", next.Moves)
	}
	if res.Spawned == nil || res.Spawned.Pos != (Position{Row: 3, Col: 3}) || res.Spawned.Value != 2 {
		t.Errorf("Spawned = %+v, want a 2 at row 3 col 3", res.Spawned)
	}
	if TileCount(next.Board) != 2 {
		t.Errorf("expected merged tile plus one spawn:\n%s", FormatBoard(next.Board))
	}
	if s.Board[0] != [4]int{2, 2, 0, 0} {
		t.Error("ApplyMove must not mutate the input state")
	}
}

func TestApplyMoveFullRowMerge(t *testing.T) {
	e := NewEngine(DefaultRules(), &scriptedSource{ints: []int{13}})
	s := GameState{Board: Board{{2, 2, 2, 2}}}

	next, res := e.ApplyMove(s, DirLeft)

	if next.Board[0] != [4]int{4, 4, 0, 0} {
		t.Errorf("row 0 = %v, want [4 4 0 0]", next.Board[0])
	}
	if res.ScoreDelta != 8 || next.Score != 8 {
		t.Errorf("score delta = %d, want 8", res.ScoreDelta)
	}
}

func TestApplyMoveWin(t *testing.T) {
	e := NewEngine(DefaultRules(), &scriptedSource{ints: []int{14, 0}})
	s := GameState{Board: Board{{1024, 1024, 0, 0}}}

	next, _ := e.ApplyMove(s, DirLeft)
	if !next.Won {
		t.Fatal("merging 1024+1024 should set Won")
	}
	if next.Board[0][0] != 2048 {
		t.Errorf("board should contain 2048:\n%s", FormatBoard(next.Board))
	}
	if next.Status() != StatusWon {
		t.Errorf("Status() = %s, want %s", next.Status(), StatusWon)
	}

	after, res := e.ApplyMove(next, DirRight)
	if !res.Moved {
		t.Fatal("game should continue after a win")
	}
	if !after.Won {
		t.Error("Won must stay set after further moves")
	}
}

func TestApplyMoveCustomWinTile(t *testing.T) {
	e := NewEngine(Rules{WinTile: 64}, &scriptedSource{})
	next, _ := e.ApplyMove(GameState{Board: Board{{32, 32}}}, DirLeft)
	if !next.Won {
		t.Error("merging into the configured win tile should set Won")
	}
}

func TestApplyMoveGameOver(t *testing.T) {
	e := NewEngine(DefaultRules(), &scriptedSource{})
	s := GameState{Board: Board{
		{2, 2, 8, 16},
		{32, 64, 128, 256},
		{2, 4, 8, 16},
		{32, 64, 128, 256},
	}}

	next, res := e.ApplyMove(s, DirLeft)

	if !res.Moved {
		t.Fatal("left should merge the leading pair")
	}
	if next.Board[0] != [4]int{4, 8, 16, 2} {
		t.Errorf("row 0 = %v, want [4 8 16 2]", next.Board[0])
	}
	if !next.Over {
		t.Fatalf("board with no moves left should be over:\n%s", FormatBoard(next.Board))
	}
	if next.Status() != StatusOver {
		t.Errorf("Status() = %s, want %s", next.Status(), StatusOver)
	}

	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		after, res := e.ApplyMove(next, dir)
		if after != next || res.Moved {
			t.Errorf("move %s after game over changed the state", dir)
		}
	}
}

func TestApplyMoveInvalidDirection(t *testing.T) {
	e := NewEngine(DefaultRules(), &scriptedSource{})
	s := GameState{Board: Board{{2, 2}}}

	next, res := e.ApplyMove(s, Direction(-1))
	if next != s || res.Moved {
		t.Error("invalid direction should leave the state unchanged")
	}
}

func TestEngineInvariantsOverLongGame(t *testing.T) {
	e := NewEngine(DefaultRules(), NewRandomSource(7))
	s := e.Initialize()
	dirs := []Direction{DirLeft, DirDown, DirRight, DirUp}

	for i := 0; i < 2000 && !s.Over; i++ {
		prev := s
		var res MoveResult
		s, res = e.ApplyMove(s, dirs[i%len(dirs)])

		if !ValidTiles(s.Board) {
			t.Fatalf("move %d produced an invalid tile:\n%s", i, FormatBoard(s.Board))
		}
		if s.Score < prev.Score {
			t.Fatalf("move %d decreased the score", i)
		}
		if s.Score-prev.Score != res.ScoreDelta {
			t.Fatalf("move %d: score delta %d does not match %d", i, res.ScoreDelta, s.Score-prev.Score)
		}
		if prev.Won && !s.Won {
			t.Fatalf("move %d cleared Won", i)
		}
		if res.Moved != (s.Moves == prev.Moves+1) {
			t.Fatalf("move %d: Moves not in step with Moved", i)
		}
		if res.Moved && res.Spawned == nil && HasEmptyCell(prev.Board) {
			t.Fatalf("move %d moved without spawning", i)
		}
	}
}

func TestEngineDeterministic(t *testing.T) {
	play := func() GameState {
		e := NewEngine(DefaultRules(), NewRandomSource(12345))
		s := e.Initialize()
		for i := range 300 {
			s, _ = e.ApplyMove(s, Direction(i%4))
		}
		return s
	}

	a, b := play(), play()
	if a != b {
		t.Errorf("equal seeds diverged:\n%s\nvs\n%s", FormatBoard(a.Board), FormatBoard(b.Board))
	}
}

func TestPresetByName(t *testing.T) {
	p, err := PresetByName("hard")
	if err != nil {
		t.Fatalf("PresetByName(hard) failed: %v", err)
	}
	if p.ID != "2048_hard" || p.Rules().Spawn4Prob != 0.25 {
		t.Errorf("hard preset = %+v", p)
	}

	if p, err := PresetByName("2048"); err != nil || p.Name != "classic" {
		t.Errorf("lookup by ID failed: %+v %v", p, err)
	}

	if _, err := PresetByName("impossible"); err == nil {
		t.Error("unknown preset should fail")
	}

	names := PresetNames()
	if len(names) != len(Presets) || names[0] != "classic" {
		t.Errorf("PresetNames() = %v", names)
	}
}
