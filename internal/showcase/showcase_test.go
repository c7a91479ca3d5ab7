package showcase_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sghaida/jewelshop/internal/config"
	"github.com/sghaida/jewelshop/internal/showcase"
	"github.com/sghaida/jewelshop/jewelry"
)

// TestRun_DefaultOutput verifies the classic seven lines in insertion order.
func TestRun_DefaultOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, showcase.Run(&buf, config.Defaults().Showcase, zap.NewNop()))

	want := []string{
		"Normal Ring - Original Price: $100",
		"Discounted Jewelry Item - Original Price: $80",
		"Normal Ring with Diamond - Original Price: $100",
		"Discounted Jewelry Item with Sapphire - Original Price: $80",
		"Legacy Ring - Original Price: $50",
		"Jewelry Collection - Original Price: $360",
		"Proxy Ring - Original Price: $200",
	}
	got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("showcase output mismatch (-want +got):\n%s", diff)
	}
}

// TestRun_LogsLifecycle verifies start/finish messages and proxy access logging go through the injected logger.
func TestRun_LogsLifecycle(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	var buf bytes.Buffer
	require.NoError(t, showcase.Run(&buf, config.Defaults().Showcase, zap.New(core)))

	assert.Equal(t, 1, logs.FilterMessage("showcase starting").Len())
	finished := logs.FilterMessage("showcase finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, int64(7), finished[0].ContextMap()["items"])
	assert.Equal(t, 2, logs.FilterMessage("proxy access").Len())
}

// TestBuild_Composition verifies the types and the collection contents.
func TestBuild_Composition(t *testing.T) {
	t.Parallel()

	items, err := showcase.Build(config.Defaults().Showcase, nil, nil)
	require.NoError(t, err)
	require.Len(t, items, 7)

	assert.IsType(t, jewelry.Item{}, items[0])
	assert.IsType(t, jewelry.Item{}, items[1])
	assert.IsType(t, jewelry.GemstoneDecorator{}, items[2])
	assert.IsType(t, jewelry.GemstoneDecorator{}, items[3])
	assert.IsType(t, jewelry.Item{}, items[4])
	assert.IsType(t, &jewelry.Collection{}, items[5])
	assert.IsType(t, &jewelry.Proxy{}, items[6])

	collection := items[5].(*jewelry.Collection)
	assert.Equal(t, 4, collection.Len())
	if diff := cmp.Diff(
		[]string{"Normal Ring", "Discounted Jewelry Item", "Normal Ring with Diamond", "Discounted Jewelry Item with Sapphire"},
		names(collection.Children()),
	); diff != "" {
		t.Errorf("collection children mismatch (-want +got):\n%s", diff)
	}
}

// TestBuild_FixedStrategy verifies the configured strategy is resolved through the registry.
func TestBuild_FixedStrategy(t *testing.T) {
	t.Parallel()

	cfg := config.Defaults().Showcase
	cfg.Discount.Strategy = jewelry.StrategyFixed
	cfg.Discount.Amount = 35

	items, err := showcase.Build(cfg, jewelry.DefaultFactories(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 65.0, items[1].Price())
	assert.Equal(t, 100.0+65+100+65, items[5].Price())
}

// TestBuild_UnknownStrategy surfaces the registry error.
func TestBuild_UnknownStrategy(t *testing.T) {
	t.Parallel()

	cfg := config.Defaults().Showcase
	cfg.Discount.Strategy = "bogus"

	_, err := showcase.Build(cfg, nil, nil)
	var unknown jewelry.UnknownStrategyError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "bogus", unknown.Name)

	var buf bytes.Buffer
	require.Error(t, showcase.Run(&buf, cfg, nil))
	assert.Empty(t, buf.String())
}

func names(items []jewelry.Pricer) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name())
	}
	return out
}
