package store

import (
	"path"
	"testing"

	"github.com/tabrl/tabrl/grid"
	"github.com/tabrl/tabrl/rl"
)

func TestSaveLoadFile(t *testing.T) {
	table := rl.NewPolicy[grid.Cell, grid.Move]()
	table.Update(rl.NewState(grid.Cell{I: 0, J: 0}), rl.NewAction(grid.MoveRight), 1.25)
	table.Update(rl.NewState(grid.Cell{I: 0, J: 0}), rl.NewAction(grid.MoveUp), 0.5)
	table.Update(rl.NewTerminalState(10, grid.Cell{I: 1, J: 1}), rl.NewAction(grid.MoveUp), 10)

	filePath := path.Join(t.TempDir(), "policy.json")
	if err := SaveFile(filePath, table); err != nil {
		t.Fatalf("save: %s", err)
	}

	loaded, err := LoadFile[grid.Cell, grid.Move](filePath)
	if err != nil {
		t.Fatalf("load: %s", err)
	}
	if loaded.Len() != table.Len() {
		t.Fatalf("expected %d states, got %d", table.Len(), loaded.Len())
	}
	for _, state := range table.States() {
		for _, av := range table.Actions(state) {
			if got := loaded.Value(state, av.Action); got != av.Value {
				t.Errorf("value mismatch for %s/%s: %f vs %f", state.Hash(), av.Action.Hash(), got, av.Value)
			}
		}
	}

	goal := rl.NewState(grid.Cell{I: 1, J: 1})
	best, ok := loaded.BestAction(goal)
	if !ok || best.Trait() != grid.MoveUp {
		t.Errorf("expected best action to survive the round trip")
	}
	states := loaded.States()
	for _, s := range states {
		if s.Trait().Equal(grid.Cell{I: 1, J: 1}) && s.Reward() != 10 {
			t.Errorf("expected terminal reward to survive the round trip, got %f", s.Reward())
		}
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile[grid.Cell, grid.Move](path.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}
