package runlog

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "lookml_builder"

// writeMetrics exports the run counts in Prometheus text format. Each run
// gets its own registry so batch runs never share series.
func writeMetrics(path string, m *Metadata, unix float64) error {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	fields := factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "view_fields",
		Help:      "Number of fields per type bucket",
	}, []string{"view", "bucket"})

	roles := factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "view_roles",
		Help:      "Number of fields per assigned role",
	}, []string{"view", "role"})

	runTime := factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "run_timestamp_seconds",
		Help:      "Unix time of the generation run",
	}, []string{"view", "generator_version"})

	c := m.Counts
	for bucket, n := range map[string]int{
		"string":  c.Strings,
		"number":  c.Numbers,
		"time":    c.Times,
		"boolean": c.Booleans,
	} {
		fields.WithLabelValues(m.ViewName, bucket).Set(float64(n))
	}

	for role, n := range map[string]int{
		"primary_key": c.PrimaryKey,
		"id":          c.IDs,
		"flag":        c.Flags,
		"dimension":   c.Dimensions,
		"measure":     c.Measures,
		"filter":      c.Filters,
	} {
		roles.WithLabelValues(m.ViewName, role).Set(float64(n))
	}

	runTime.WithLabelValues(m.ViewName, m.GeneratorVersion).Set(unix)

	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}

	return nil
}
