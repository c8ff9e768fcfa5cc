package runlog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lookml-builder/internal/analyze"
	"lookml-builder/internal/mapping"
	"lookml-builder/internal/plan"
)

var runTime = time.Date(2024, 3, 5, 14, 30, 9, 0, time.UTC)

func fixture() (*analyze.Inventory, *plan.Result) {
	inv := &analyze.Inventory{
		ViewName: "orders",
		Strings:  []string{"id", "status", "customer_id"},
		Numbers:  []string{"amount"},
		Times:    []string{"created_date"},
		Booleans: []string{"is_test"},
	}

	res := &plan.Result{
		ViewName:   "orders",
		PrimaryKey: "id",
		IDs:        []string{"customer_id"},
		Flags:      []string{"is_test"},
		Dimensions: []string{"status"},
		Measures:   []plan.Measure{plan.NewMeasure("amount")},
		Filters:    []string{"status", "created_date"},
	}

	return inv, res
}

func TestCountsOf(t *testing.T) {
	inv, res := fixture()

	assert.Equal(t, Counts{
		Strings: 3, Numbers: 1, Times: 1, Booleans: 1,
		Dimensions: 1, Filters: 2, IDs: 1, PrimaryKey: 1, Flags: 1, Measures: 1,
	}, CountsOf(inv, res))
}

func TestLogger_Log(t *testing.T) {
	dir := t.TempDir()
	inv, res := fixture()
	ont := mapping.Ontology{
		Relationships: []mapping.Relationship{{From: "orders", To: "customers", Via: "${orders.customer_id} = ${customers.id}"}},
	}

	l := New(dir, WithClock(clockwork.NewFakeClockAt(runTime)))

	m, err := l.Log(context.Background(), inv, res, ont)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-05T14-30-09", m.Timestamp)
	assert.Equal(t, "orders", m.ViewName)
	assert.Equal(t, GeneratorVersion, m.GeneratorVersion)
	assert.NotEmpty(t, m.RunID)
	assert.Equal(t, filepath.Join(dir, "2024-03-05T14-30-09", "orders"), m.Dir)

	data, err := os.ReadFile(filepath.Join(m.Dir, MetadataFile))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "orders", decoded["view_name"])
	assert.Equal(t, "0.1.0", decoded["generator_version"])
	assert.Equal(t, m.RunID, decoded["run_id"])
	assert.Contains(t, decoded, "ontology_config")

	counts, ok := decoded["counts"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 2, counts["filters"], 0)
	assert.InDelta(t, 1, counts["primary_key"], 0)

	summary, err := os.ReadFile(filepath.Join(m.Dir, SummaryFile))
	require.NoError(t, err)
	assert.Contains(t, string(summary), "# Run Summary - 2024-03-05T14-30-09")
	assert.Contains(t, string(summary), "## View: orders")
	assert.Contains(t, string(summary), "- Measures: 1")
	assert.Contains(t, string(summary), "- orders.explore.lkml")

	metrics, err := os.ReadFile(filepath.Join(m.Dir, MetricsFile))
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `lookml_builder_view_fields{bucket="string",view="orders"} 3`)
	assert.Contains(t, string(metrics), `lookml_builder_view_roles{role="measure",view="orders"} 1`)
	assert.Contains(t, string(metrics), "lookml_builder_run_timestamp_seconds")
}

func TestLogger_RunIDsAreUnique(t *testing.T) {
	inv, res := fixture()
	l := New(t.TempDir(), WithClock(clockwork.NewFakeClockAt(runTime)))

	first, err := l.Log(context.Background(), inv, res, mapping.Ontology{})
	require.NoError(t, err)

	second, err := l.Log(context.Background(), inv, res, mapping.Ontology{})
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, first.Dir, second.Dir)
}

func TestLogger_UnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	inv, res := fixture()

	_, err := New(file).Log(context.Background(), inv, res, mapping.Ontology{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating run directory")
}
