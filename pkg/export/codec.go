package export

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/complymap/complymap/pkg/jsonutil"
)

// EncodeJSON serializes the snapshot as indented JSON.
func EncodeJSON(snap *Snapshot) ([]byte, error) {
	data, err := jsonutil.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// DecodeJSON parses a JSON snapshot.
func DecodeJSON(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := jsonutil.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &snap, nil
}

// EncodeYAML serializes the snapshot as YAML.
func EncodeYAML(snap *Snapshot) ([]byte, error) {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// DecodeYAML parses a YAML snapshot.
func DecodeYAML(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	return &snap, nil
}
