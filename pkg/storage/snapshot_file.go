package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/snappy"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/model"
)

// snapshotMagic guards against feeding arbitrary files to the decoder.
var snapshotMagic = []byte("IMPNAV1\n")

// WriteSnapshotFile serializes a snapshot as snappy-compressed JSON. The file
// is written to a temp sibling and renamed so readers never see a torn write.
func WriteSnapshotFile(path string, snap model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	compressed := snappy.Encode(nil, data)
	payload := make([]byte, 0, len(snapshotMagic)+len(compressed))
	payload = append(payload, snapshotMagic...)
	payload = append(payload, compressed...)

	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename snapshot: %w", err)
	}
	return nil
}

// ReadSnapshotFile loads a snapshot written by WriteSnapshotFile.
func ReadSnapshotFile(path string) (model.Snapshot, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	if len(payload) < len(snapshotMagic) || string(payload[:len(snapshotMagic)]) != string(snapshotMagic) {
		return model.Snapshot{}, fmt.Errorf("read snapshot %s: not a snapshot file", path)
	}

	data, err := snappy.Decode(nil, payload[len(snapshotMagic):])
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("decompress snapshot: %w", err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return snap, nil
}
