package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultBattle(t *testing.T) {
	cfg := DefaultBattle()

	if cfg.Seed != 1 {
		t.Errorf("Seed = %d, want 1", cfg.Seed)
	}
	if cfg.StartingTeam != "A" {
		t.Errorf("StartingTeam = %q, want A", cfg.StartingTeam)
	}
	if cfg.MaxTeamTurns != 200 || cfg.ActionAPCost != 100 || cfg.APThreshold != 100 || cfg.NormalMaxActors != 5 {
		t.Errorf("engine knobs = %d/%d/%d/%d, want 200/100/100/5",
			cfg.MaxTeamTurns, cfg.ActionAPCost, cfg.APThreshold, cfg.NormalMaxActors)
	}
	if len(cfg.TeamA) != 5 || len(cfg.TeamB) != 5 {
		t.Fatalf("roster sizes = %d/%d, want 5/5", len(cfg.TeamA), len(cfg.TeamB))
	}

	slots := map[int]bool{}
	for _, u := range cfg.TeamA {
		if slots[u.Slot] {
			t.Errorf("duplicate slot %d in default team A", u.Slot)
		}
		slots[u.Slot] = true
		if u.Weapon == "" {
			t.Errorf("slot %d has no weapon", u.Slot)
		}
		if u.Level <= 0 {
			t.Errorf("slot %d has level %d", u.Slot, u.Level)
		}
	}
}

func TestLoadBattleMissingFile(t *testing.T) {
	cfg, err := LoadBattle(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadBattle: %v", err)
	}
	if cfg.Seed != DefaultBattle().Seed {
		t.Errorf("missing file should keep defaults, Seed = %d", cfg.Seed)
	}
}

func TestLoadBattleOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battle.yaml")
	body := `
seed: 777
starting_team: B
max_team_turns: 50
team_a:
  - slot: 5
    level: 30
    str: 40
    dex: 20
    int: 10
    vit: 30
    weapon: Bow
    offhand: Quiver
    skills: [piercing_lance]
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBattle(path)
	if err != nil {
		t.Fatalf("LoadBattle: %v", err)
	}
	if cfg.Seed != 777 {
		t.Errorf("Seed = %d, want 777", cfg.Seed)
	}
	if cfg.StartingTeam != "B" {
		t.Errorf("StartingTeam = %q, want B", cfg.StartingTeam)
	}
	if cfg.MaxTeamTurns != 50 {
		t.Errorf("MaxTeamTurns = %d, want 50", cfg.MaxTeamTurns)
	}
	if cfg.APThreshold != 100 {
		t.Errorf("unset field should keep default, APThreshold = %d", cfg.APThreshold)
	}
	if len(cfg.TeamA) != 1 || cfg.TeamA[0].Weapon != "Bow" || cfg.TeamA[0].Skills[0] != "piercing_lance" {
		t.Errorf("team_a not parsed: %+v", cfg.TeamA)
	}
	// team_b absent in the file keeps the default roster
	if len(cfg.TeamB) != 5 {
		t.Errorf("TeamB = %d units, want default 5", len(cfg.TeamB))
	}
}

func TestLoadBattleBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("seed: [not an int"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBattle(path); err == nil {
		t.Fatal("expected parse error")
	}
}
