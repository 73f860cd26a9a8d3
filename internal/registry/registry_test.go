package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/arcade-engine/internal/engine"
)

var errBroken = errors.New("broken config")

func init() {
	Register("zz_test", "Test Game", func(opts Options) (*Game, error) {
		if opts.Difficulty == "broken" {
			return nil, errBroken
		}
		return &Game{TickRate: 42, Config: opts.Resolved}, nil
	})
}

func TestListIsSorted(t *testing.T) {
	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID >= games[i].ID {
			t.Errorf("List() not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}

	found := false
	for _, g := range games {
		if g.ID == "zz_test" {
			found = true
			if g.Title != "Test Game" {
				t.Errorf("Title = %q, want %q", g.Title, "Test Game")
			}
		}
	}
	if !found {
		t.Error("registered game missing from List()")
	}
}

func TestCreate(t *testing.T) {
	g, err := Create("zz_test", Options{Resolved: []byte("x: 1")})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.TickRate != 42 || string(g.Config) != "x: 1" {
		t.Errorf("Create() = %+v", g)
	}

	if _, err := Create("zz_test", Options{Difficulty: "broken"}); !errors.Is(err, errBroken) {
		t.Errorf("factory error = %v, want wrapped errBroken", err)
	}

	if _, err := Create("nope", Options{}); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("unknown game error = %v, want ErrUnknownGame", err)
	}
}

func TestExists(t *testing.T) {
	if !Exists("zz_test") {
		t.Error("Exists(zz_test) = false")
	}
	if Exists("nope") {
		t.Error("Exists(nope) = true")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_test", "Again", func(Options) (*Game, error) {
		return &Game{Machine: (*engine.Machine)(nil)}, nil
	})
}
