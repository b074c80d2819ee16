package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyseal/internal/metrics"
)

func TestPrometheus_CountsAndTextfile(t *testing.T) {
	p := metrics.NewPrometheus()
	p.ObserveDump("ok")
	p.ObserveRecover("ok")
	p.ObserveRecover("invalid_password")
	p.ObserveRecover("invalid_password")
	p.ObserveKDF(250 * time.Millisecond)

	n, err := testutil.GatherAndCount(p.Registry(), "keyseal_recover_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one series per result label")

	path := filepath.Join(t.TempDir(), "keyseal.prom")
	require.NoError(t, p.WriteTextfile(path))
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), `keyseal_recover_total{result="invalid_password"} 2`)
	assert.Contains(t, string(body), `keyseal_dump_total{result="ok"} 1`)
	assert.Contains(t, string(body), "keyseal_kdf_duration_seconds_count 1")
}
