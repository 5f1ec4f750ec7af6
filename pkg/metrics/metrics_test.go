package metrics_test

import (
	"cardvalidator/pkg/metrics"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewValidationRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewValidation(reg, "cardvalidator")
	require.NoError(t, err)

	m.Events.WithLabelValues("numberText").Inc()
	m.Published.WithLabelValues("submitEnabled").Add(2)
	m.Propagation.Observe(0.0001)

	require.InDelta(t, 1, testutil.ToFloat64(m.Events.WithLabelValues("numberText")), 0)
	require.InDelta(t, 2, testutil.ToFloat64(m.Published.WithLabelValues("submitEnabled")), 0)

	count, err := testutil.GatherAndCount(reg, "cardvalidator_propagation_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestNewValidationDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewValidation(reg, "cardvalidator")
	require.NoError(t, err)

	_, err = metrics.NewValidation(reg, "cardvalidator")
	require.Error(t, err)
}
