package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// isolate points the user config directory at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolate(t)

	breakout, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}
	if !reflect.DeepEqual(breakout, DefaultBreakoutConfig()) {
		t.Errorf("embedded breakout.yaml = %+v, want %+v", breakout, DefaultBreakoutConfig())
	}

	snake, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if !reflect.DeepEqual(snake, DefaultSnakeConfig()) {
		t.Errorf("embedded snake.yaml = %+v, want %+v", snake, DefaultSnakeConfig())
	}

	match, err := LoadMatch("")
	if err != nil {
		t.Fatalf("LoadMatch() failed: %v", err)
	}
	// The embedded file spells out an empty deck.
	match.Deck = nil
	if !reflect.DeepEqual(match, DefaultMatchConfig()) {
		t.Errorf("embedded match.yaml = %+v, want %+v", match, DefaultMatchConfig())
	}
}

func TestCustomPathOverridesOnlyGivenKeys(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("cell: 10\ngameplay:\n  tick_rate: 15\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Cell != 10 {
		t.Errorf("Cell = %v, want 10", cfg.Cell)
	}
	if cfg.Gameplay.TickRate != 15 {
		t.Errorf("TickRate = %d, want 15", cfg.Gameplay.TickRate)
	}
	if cfg.Field.Width != 400 || cfg.InitialLength != 3 {
		t.Errorf("unset keys lost their defaults: %+v", cfg)
	}
}

func TestCustomPathErrors(t *testing.T) {
	isolate(t)

	_, err := LoadMatch(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("columns: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMatch(bad); err == nil {
		t.Error("malformed YAML should fail")
	}
}

func TestUserConfigDirectory(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("deck: [A, B, A, B]\ncolumns: 2\nrows: 2\n")
	if err := os.WriteFile(filepath.Join(dir, "match.yaml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMatch("")
	if err != nil {
		t.Fatalf("LoadMatch() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.Deck, []string{"A", "B", "A", "B"}) {
		t.Errorf("Deck = %v", cfg.Deck)
	}
	if cfg.Columns != 2 || cfg.MatchBonus != 10 {
		t.Errorf("cfg = %+v", cfg)
	}

	// A broken user file is skipped in favour of the defaults.
	if err := os.WriteFile(filepath.Join(dir, "match.yaml"), []byte("rows: {"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadMatch("")
	if err != nil {
		t.Fatalf("LoadMatch() failed: %v", err)
	}
	if cfg.Columns != 4 {
		t.Errorf("Columns = %d, want default 4", cfg.Columns)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"normal", DifficultyNormal, false},
		{"nightmare", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	easy := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&easy, DifficultyEasy)
	if easy.Gameplay.Lives != 5 || easy.Paddle.Width != 120 {
		t.Errorf("easy = lives %d, paddle %v", easy.Gameplay.Lives, easy.Paddle.Width)
	}
	if easy.Ball.VX != 2.25 || easy.Ball.VY != -2.25 {
		t.Errorf("easy ball velocity = (%v, %v)", easy.Ball.VX, easy.Ball.VY)
	}

	hard := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&hard, DifficultyHard)
	if hard.Gameplay.Lives != 2 || hard.Paddle.Width != 80 {
		t.Errorf("hard = lives %d, paddle %v", hard.Gameplay.Lives, hard.Paddle.Width)
	}

	normal := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, DefaultBreakoutConfig()) {
		t.Error("normal preset should not change anything")
	}
}

func TestApplySnakeAndMatchPresets(t *testing.T) {
	snake := DefaultSnakeConfig()
	ApplySnakePreset(&snake, DifficultyHard)
	if snake.Gameplay.TickRate != 15 {
		t.Errorf("hard snake tick rate = %d, want 15", snake.Gameplay.TickRate)
	}
	snake = DefaultSnakeConfig()
	ApplySnakePreset(&snake, DifficultyEasy)
	if snake.Gameplay.TickRate != 7 {
		t.Errorf("easy snake tick rate = %d, want 7", snake.Gameplay.TickRate)
	}

	match := DefaultMatchConfig()
	ApplyMatchPreset(&match, DifficultyHard)
	if match.MismatchDelay != 15 || match.Gameplay.TimeLimit != 3600 {
		t.Errorf("hard match = delay %d, limit %d", match.MismatchDelay, match.Gameplay.TimeLimit)
	}
	match = DefaultMatchConfig()
	ApplyMatchPreset(&match, DifficultyEasy)
	if match.MismatchDelay != 45 || match.Gameplay.TimeLimit != 0 {
		t.Errorf("easy match = delay %d, limit %d", match.MismatchDelay, match.Gameplay.TimeLimit)
	}
}

func TestDefaultYAMLUnknownGame(t *testing.T) {
	if DefaultYAML("pong") != nil {
		t.Error("unknown game should have no embedded defaults")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	ApplyBreakoutPreset(&cfg, DifficultyHard)
	cfg.Bricks.Layout = []string{"#.#", "..9"}

	data, err := Encode(cfg)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	got, err := Decode(data, DefaultBreakoutConfig)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("Decode(Encode(cfg)) = %+v, want %+v", got, cfg)
	}
}
