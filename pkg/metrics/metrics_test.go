package metrics_test

import (
	"testing"

	"github.com/Aidin1998/apiregistry/internal/infrastructure/database"
	"github.com/Aidin1998/apiregistry/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDBStats(t *testing.T) {
	db := database.NewTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	require.NoError(t, metrics.RegisterDBStats(sqlDB, "registry_test"))
	// second registration under the same name is tolerated
	require.NoError(t, metrics.RegisterDBStats(sqlDB, "registry_test"))

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	found := false
	for _, mf := range families {
		if mf.GetName() == "go_sql_max_open_connections" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestEndpointErrors(t *testing.T) {
	before := testutil.ToFloat64(metrics.EndpointErrors.WithLabelValues("conflict"))
	metrics.EndpointErrors.WithLabelValues("conflict").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.EndpointErrors.WithLabelValues("conflict")))
}
