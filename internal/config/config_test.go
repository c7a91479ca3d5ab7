package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//
// -----------------------------------------------------------------------------
// Defaults / Load
// -----------------------------------------------------------------------------

// TestDefaults_Validate verifies the defaults pass validation.
func TestDefaults_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Defaults().Validate())
}

// TestLoad_NoFile returns the defaults.
func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

// TestLoad_File verifies file values override defaults and unset keys keep defaults.
func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jewelshop.yaml")
	content := `
showcase:
  ring:
    name: Gold Band
    price: 250
  discount:
    strategy: fixed
    amount: 30
shop:
  payment_method: paypal
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ItemConfig{Name: "Gold Band", Price: 250}, cfg.Showcase.Ring)
	assert.Equal(t, "fixed", cfg.Showcase.Discount.Strategy)
	assert.Equal(t, 30.0, cfg.Showcase.Discount.Amount)
	assert.Equal(t, 100.0, cfg.Showcase.Discount.BasePrice)
	assert.Equal(t, "Diamond", cfg.Showcase.PrimaryGemstone)
	assert.Equal(t, PaymentPayPal, cfg.Shop.PaymentMethod)
}

// TestLoad_EnvOverride verifies JEWELSHOP_* variables win over defaults.
func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("JEWELSHOP_SHOWCASE_DISCOUNT_AMOUNT", "0.5")
	t.Setenv("JEWELSHOP_SHOWCASE_PRIMARY_GEMSTONE", "Emerald")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Showcase.Discount.Amount)
	assert.Equal(t, "Emerald", cfg.Showcase.PrimaryGemstone)
}

// TestLoad_MissingFile reports the read error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}

// TestLoad_InvalidValues surfaces ErrInvalidConfig.
func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("showcase:\n  discount:\n    amount: 1.5\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "showcase.discount.amount")
}

//
// -----------------------------------------------------------------------------
// Validate
// -----------------------------------------------------------------------------

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{
			name:    "negative ring price",
			mutate:  func(c *Config) { c.Showcase.Ring.Price = -1 },
			wantSub: "showcase.ring.price",
		},
		{
			name:    "negative proxy price",
			mutate:  func(c *Config) { c.Showcase.Proxy.Price = -1 },
			wantSub: "showcase.proxy.price",
		},
		{
			name:    "percentage above one",
			mutate:  func(c *Config) { c.Showcase.Discount.Amount = 1.2 },
			wantSub: "[0, 1]",
		},
		{
			name: "fixed above base",
			mutate: func(c *Config) {
				c.Showcase.Discount.Strategy = "fixed"
				c.Showcase.Discount.Amount = 150
			},
			wantSub: "[0, base_price]",
		},
		{
			name:    "unknown strategy",
			mutate:  func(c *Config) { c.Showcase.Discount.Strategy = "bogus" },
			wantSub: `strategy "bogus"`,
		},
		{
			name:    "unknown payment",
			mutate:  func(c *Config) { c.Shop.PaymentMethod = "cash" },
			wantSub: `payment_method "cash"`,
		},
		{
			name:    "negative limit",
			mutate:  func(c *Config) { c.Shop.CreditCardLimit = -1 },
			wantSub: "limits",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := Defaults()
			tc.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.wantSub)
		})
	}
}

// TestValidate_FixedZeroBaseUsesDefault verifies base_price 0 is checked against the default base price.
func TestValidate_FixedZeroBaseUsesDefault(t *testing.T) {
	t.Parallel()

	cfg := Defaults()
	cfg.Showcase.Discount.Strategy = "fixed"
	cfg.Showcase.Discount.BasePrice = 0
	cfg.Showcase.Discount.Amount = 10
	require.NoError(t, cfg.Validate())

	cfg.Showcase.Discount.Amount = 101
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

//
// -----------------------------------------------------------------------------
// WriteDefault
// -----------------------------------------------------------------------------

// TestWriteDefault_RoundTrip verifies the written file decodes back into the defaults.
func TestWriteDefault_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "jewelshop.yaml")
	require.NoError(t, WriteDefault(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, yaml.Unmarshal(raw, &decoded))
	assert.Equal(t, Defaults(), decoded)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), loaded)
}

// TestWriteDefault_Existing refuses to overwrite.
func TestWriteDefault_Existing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "jewelshop.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0o644))

	err := WriteDefault(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(raw))
}
