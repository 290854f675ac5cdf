package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/model"
)

func TestSnapshotFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.snap")

	snap := model.Snapshot{
		Components: []model.Component{
			{
				ID: "db-1", Name: "orders db", Type: model.TypeDatabase,
				Status: model.StatusOffline, Criticality: model.CriticalityCritical,
				Metadata: map[string]string{"rack": "r4"},
			},
		},
		Dependencies: []model.Dependency{
			{ID: "d1", SourceID: "db-1", TargetID: "db-1", Type: model.DepMonitors},
		},
		Workflows: []model.BusinessWorkflow{
			{
				ID: "w1", Name: "checkout", Criticality: model.CriticalityHigh,
				Steps: []model.WorkflowStep{{ID: "s1", Name: "charge", Order: 1, ComponentIDs: []string{"db-1"}}},
			},
		},
	}

	require.NoError(t, WriteSnapshotFile(path, snap))

	got, err := ReadSnapshotFile(path)
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}

func TestSnapshotFile_RejectsForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-snapshot")
	require.NoError(t, os.WriteFile(path, []byte(`{"components": []}`), 0o644))

	_, err := ReadSnapshotFile(path)
	assert.Error(t, err)
}

func TestSnapshotFile_MissingFile(t *testing.T) {
	_, err := ReadSnapshotFile(filepath.Join(t.TempDir(), "absent.snap"))
	assert.Error(t, err)
}
