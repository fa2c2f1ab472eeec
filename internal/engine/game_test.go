package engine

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"npc-arena/internal/domain"
	"npc-arena/internal/infrastructure/storage"
	"npc-arena/pkg/utils"
)

// recordingObserver запоминает всё, что ему прислали
type recordingObserver struct {
	fights []fightRecord
	values []int
}

type fightRecord struct {
	attacker, defender string
	result             domain.BattleResult
}

func (r *recordingObserver) OnValueChanged(v int) {
	r.values = append(r.values, v)
}

func (r *recordingObserver) OnFight(attacker, defender *domain.NPC, result domain.BattleResult) {
	r.fights = append(r.fights, fightRecord{attacker.Name, defender.Name, result})
}

func newTestGame(observers ...domain.Observer) *Game {
	return NewGame(utils.NewRNG(1), observers...)
}

func mustAdd(t *testing.T, g *Game, kind domain.Kind, x, y int, name string) *domain.NPC {
	t.Helper()
	n, err := g.AddNPC(kind, x, y, name)
	if err != nil {
		t.Fatalf("AddNPC(%v, %d, %d, %q): %v", kind, x, y, name, err)
	}
	return n
}

func TestAddNPC_RejectsOutOfBounds(t *testing.T) {
	g := newTestGame()
	mustAdd(t, g, domain.KindBear, 10, 10, "Misha")

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {501, 0}, {0, 501}, {-100, 900}} {
		n, err := g.AddNPC(domain.KindRobber, pos[0], pos[1], "Bob")
		if !errors.Is(err, domain.ErrOutOfBounds) {
			t.Errorf("pos %v: expected ErrOutOfBounds, got %v", pos, err)
		}
		if n != nil {
			t.Errorf("pos %v: NPC must not be returned", pos)
		}
	}
	if g.Count() != 1 {
		t.Errorf("population size changed: %d", g.Count())
	}
}

func TestAddNPC_SubscribesSessionObservers(t *testing.T) {
	obs := &recordingObserver{}
	g := newTestGame(obs)
	n := mustAdd(t, g, domain.KindElf, 1, 1, "Lily")

	if got := n.Observers(); len(got) != 1 || got[0] != domain.Observer(obs) {
		t.Errorf("expected session observer to be subscribed, got %v", got)
	}
	if n.Attribute < domain.MinAttribute || n.Attribute > domain.MaxAttribute {
		t.Errorf("generated attribute %d out of range", n.Attribute)
	}
}

func TestGame_Rename(t *testing.T) {
	g := newTestGame()
	mustAdd(t, g, domain.KindElf, 1, 1, "Lily")

	if err := g.Rename(0, "Lily Rose"); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if g.Roster()[0].Name != "Lily Rose" {
		t.Errorf("unexpected name %q", g.Roster()[0].Name)
	}
	if err := g.Rename(5, "x"); err == nil {
		t.Error("expected error for missing index")
	}
}

func TestGame_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "npcs.txt")
	obs := &recordingObserver{}

	g := newTestGame(obs)
	mustAdd(t, g, domain.KindRobber, 0, 0, "Bob")
	mustAdd(t, g, domain.KindElf, 0, 1, "Lily  ")
	saved, err := g.Save(path)
	if err != nil || saved != 2 {
		t.Fatalf("Save = %d, %v", saved, err)
	}

	other := newTestGame(obs)
	mustAdd(t, other, domain.KindBear, 9, 9, "Replaced")
	loaded, err := other.Load(path)
	if err != nil || loaded != 2 {
		t.Fatalf("Load = %d, %v", loaded, err)
	}

	want := g.Roster()
	got := other.Roster()
	for i := range want {
		if want[i].Kind != got[i].Kind || want[i].X != got[i].X || want[i].Y != got[i].Y ||
			want[i].Name != got[i].Name || want[i].Attribute != got[i].Attribute {
			t.Errorf("record %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
	// Загруженные NPC подписаны на приёмники сессии
	if len(other.NPCs()[0].Observers()) != 1 {
		t.Error("loaded NPCs must be subscribed to session observers")
	}
}

func TestGame_LoadMissingFileKeepsPopulation(t *testing.T) {
	g := newTestGame()
	mustAdd(t, g, domain.KindBear, 9, 9, "Misha")

	_, err := g.Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if g.Count() != 1 || g.Roster()[0].Name != "Misha" {
		t.Error("population must be untouched on open failure")
	}
}

func TestGame_LoadPartialFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name      string
		content   string
		wantCount int
	}{
		{"malformed first line", "garbage\nRobber 1 1 10 Bob\nElf 2 2 20 Lily\n", 0},
		{"malformed middle line", "Robber 1 1 10 Bob\nBear one 2 20 Misha\nElf 2 2 20 Lily\n", 1},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".txt")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			g := newTestGame()
			mustAdd(t, g, domain.KindBear, i, i, "Old")

			n, err := g.Load(path)
			var pe *storage.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParseError, got %v", err)
			}
			if n != tt.wantCount || g.Count() != tt.wantCount {
				t.Errorf("expected %d NPCs, got n=%d count=%d", tt.wantCount, n, g.Count())
			}
		})
	}
}

func TestGame_LoadOversizedRecordKeepsPrefix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "npcs.txt")
	content := "Robber 0 0 10 Bob\nElf 0 1 20 " + strings.Repeat("x", 70000) + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	g := newTestGame()
	mustAdd(t, g, domain.KindBear, 5, 5, "Old")

	n, err := g.Load(path)
	var pe *storage.ParseError
	if !errors.As(err, &pe) || pe.Line != 2 {
		t.Fatalf("expected ParseError on line 2, got %v", err)
	}
	roster := g.Roster()
	if n != 1 || len(roster) != 1 || roster[0].Name != "Bob" {
		t.Errorf("expected population [Bob], got n=%d %+v", n, roster)
	}
}

func TestAddNPC_RejectsOversizedName(t *testing.T) {
	g := newTestGame()
	if _, err := g.AddNPC(domain.KindElf, 0, 0, strings.Repeat("x", domain.MaxNameLength+1)); !errors.Is(err, domain.ErrInvalidName) {
		t.Errorf("expected ErrInvalidName, got %v", err)
	}
	if g.Count() != 0 {
		t.Error("population must stay empty")
	}
}
