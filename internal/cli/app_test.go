package cli

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/collatz/internal/config"
	"github.com/aretw0/collatz/pkg/domain"
	"github.com/aretw0/collatz/pkg/sample"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, mutate func(*config.Config)) *App {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	app, err := NewApp(cfg, io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestRunBatch_DefaultSample(t *testing.T) {
	app := newTestApp(t, nil)

	inputs, err := sample.New(domain.DefaultSeed).Generate(domain.DefaultSampleCount, domain.DefaultSampleLow, domain.DefaultSampleHigh)
	require.NoError(t, err)

	var out bytes.Buffer
	summary, err := app.RunBatch(context.Background(), inputs, &out, false)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, domain.DefaultSampleCount)
	assert.Equal(t, domain.DefaultSampleCount, summary.Evaluated)
	assert.Zero(t, summary.DepthExceeded)
	assert.Zero(t, summary.Failed)
	for _, l := range lines {
		ok := strings.HasSuffix(l, "led to final number: 1") || strings.HasSuffix(l, "is indivisible")
		assert.True(t, ok, "unexpected line %q", l)
	}

	want := float64(summary.Succeeded)
	assert.Equal(t, want, testutil.ToFloat64(app.Metrics.Evaluations.WithLabelValues("success")))
	assert.Equal(t, float64(summary.Indivisible), testutil.ToFloat64(app.Metrics.Evaluations.WithLabelValues("indivisible")))
}

func TestRunBatch_JSON(t *testing.T) {
	app := newTestApp(t, func(c *config.Config) { c.Format = config.FormatJSON })

	var out bytes.Buffer
	_, err := app.RunBatch(context.Background(), []uint64{6, 0}, &out, true)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"outcome":"success"`)
	assert.Contains(t, lines[0], `"log":[`)
	assert.Contains(t, lines[1], `"outcome":"indivisible"`)
}

func TestRunBatch_Summary(t *testing.T) {
	app := newTestApp(t, func(c *config.Config) { c.Summary = true })

	var out bytes.Buffer
	_, err := app.RunBatch(context.Background(), []uint64{27}, &out, false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "| Longest trajectory | 27 (111 steps) |")
}

func TestRunBatch_DepthExceeded(t *testing.T) {
	app := newTestApp(t, func(c *config.Config) { c.MaxSteps = 20 })

	var out bytes.Buffer
	summary, err := app.RunBatch(context.Background(), []uint64{27, 4}, &out, false)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.DepthExceeded)
	assert.Contains(t, out.String(), "Depth exceeded with number 27 (budget 20 steps), increase max_steps")
	assert.Contains(t, out.String(), "       4 led to final number: 1")
}

func TestNewApp_FileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results")
	app := newTestApp(t, func(c *config.Config) {
		c.Store.Kind = config.StoreFile
		c.Store.Path = dir
	})

	var out bytes.Buffer
	_, err := app.RunBatch(context.Background(), []uint64{7}, &out, false)
	require.NoError(t, err)

	summary, err := app.RunBatch(context.Background(), []uint64{7}, &out, false)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.CacheHits)

	assert.Equal(t, 2.0, testutil.ToFloat64(app.Metrics.Evaluations.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(app.Metrics.CacheHits))
}

func TestNewApp_RedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	app := newTestApp(t, func(c *config.Config) {
		c.Store.Kind = config.StoreRedis
		c.Store.RedisAddr = mr.Addr()
	})

	_, err := app.RunBatch(context.Background(), []uint64{3}, io.Discard, false)
	require.NoError(t, err)

	ids, err := app.Store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uint64{3}, ids)
}

func TestNewApp_Errors(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "loud"
	_, err := NewApp(cfg, io.Discard)
	assert.Error(t, err)

	cfg = config.Default()
	cfg.Store.Kind = config.StoreRedis
	cfg.Store.RedisAddr = "127.0.0.1:1"
	_, err = NewApp(cfg, io.Discard)
	assert.Error(t, err)
}
