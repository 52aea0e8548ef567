// Package store persists exported policy tables. The core only
// defines the export shape; everything here consumes or produces it.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tabrl/tabrl/rl"
)

// SaveFile writes the table's export records to path as JSON.
// Descriptor types must be JSON-marshalable.
func SaveFile[ST rl.Trait[ST], AT rl.Trait[AT]](path string, table *rl.Policy[ST, AT]) error {
	records := rl.Export(table)
	bs, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling policy records: %s", err)
	}
	return os.WriteFile(path, bs, 0644)
}

// LoadFile reads export records from path and rebuilds the table
func LoadFile[ST rl.Trait[ST], AT rl.Trait[AT]](path string) (*rl.Policy[ST, AT], error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	records := make([]rl.StateRecord[ST, AT], 0)
	if err := json.Unmarshal(bs, &records); err != nil {
		return nil, fmt.Errorf("unmarshaling policy records: %s", err)
	}
	return rl.Restore(records), nil
}
