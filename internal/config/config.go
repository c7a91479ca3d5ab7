// Package config provides configuration types, defaults and loading for jewelshop.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/sghaida/jewelshop/jewelry"
)

// EnvPrefix is prepended to every environment override, e.g. JEWELSHOP_SHOWCASE_DISCOUNT_AMOUNT.
const EnvPrefix = "JEWELSHOP"

// Payment methods understood by the shop.
const (
	PaymentCreditCard = "credit_card"
	PaymentPayPal     = "paypal"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// ItemConfig describes a single named item.
type ItemConfig struct {
	Name  string  `mapstructure:"name" yaml:"name"`
	Price float64 `mapstructure:"price" yaml:"price"`
}

// DiscountConfig selects a discount strategy from the registry.
type DiscountConfig struct {
	Strategy  string  `mapstructure:"strategy" yaml:"strategy"`     // "percentage" or "fixed"
	Amount    float64 `mapstructure:"amount" yaml:"amount"`         // fraction for percentage, absolute for fixed
	BasePrice float64 `mapstructure:"base_price" yaml:"base_price"` // price the discount applies to
	ItemName  string  `mapstructure:"item_name" yaml:"item_name"`
}

// Showcase holds the inputs of the pattern showcase.
type Showcase struct {
	Ring              ItemConfig     `mapstructure:"ring" yaml:"ring"`
	Discount          DiscountConfig `mapstructure:"discount" yaml:"discount"`
	PrimaryGemstone   string         `mapstructure:"primary_gemstone" yaml:"primary_gemstone"`
	SecondaryGemstone string         `mapstructure:"secondary_gemstone" yaml:"secondary_gemstone"`
	Legacy            ItemConfig     `mapstructure:"legacy" yaml:"legacy"`
	CollectionName    string         `mapstructure:"collection_name" yaml:"collection_name"`
	Proxy             ItemConfig     `mapstructure:"proxy" yaml:"proxy"`
}

// Shop holds the storefront demo settings.
type Shop struct {
	PaymentMethod   string  `mapstructure:"payment_method" yaml:"payment_method"`
	CreditCardLimit float64 `mapstructure:"credit_card_limit" yaml:"credit_card_limit"`
	PayPalBalance   float64 `mapstructure:"paypal_balance" yaml:"paypal_balance"`
	Customer        string  `mapstructure:"customer" yaml:"customer"`
}

// Config holds all configuration options for jewelshop.
type Config struct {
	Showcase Showcase `mapstructure:"showcase" yaml:"showcase"`
	Shop     Shop     `mapstructure:"shop" yaml:"shop"`
}

// Defaults returns the configuration that reproduces the classic showcase output.
func Defaults() Config {
	return Config{
		Showcase: Showcase{
			Ring: ItemConfig{Name: "Normal Ring", Price: 100},
			Discount: DiscountConfig{
				Strategy:  jewelry.StrategyPercentage,
				Amount:    0.2,
				BasePrice: jewelry.DefaultBasePrice,
				ItemName:  jewelry.DefaultDiscountedName,
			},
			PrimaryGemstone:   "Diamond",
			SecondaryGemstone: "Sapphire",
			Legacy:            ItemConfig{Name: "Legacy Ring", Price: 50},
			CollectionName:    "Jewelry Collection",
			Proxy:             ItemConfig{Name: "Proxy Ring", Price: 200},
		},
		Shop: Shop{
			PaymentMethod:   PaymentCreditCard,
			CreditCardLimit: 10000,
			PayPalBalance:   5000,
			Customer:        "Alice",
		},
	}
}

// SetDefaults registers Defaults on v so unset keys still resolve.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("showcase.ring.name", d.Showcase.Ring.Name)
	v.SetDefault("showcase.ring.price", d.Showcase.Ring.Price)
	v.SetDefault("showcase.discount.strategy", d.Showcase.Discount.Strategy)
	v.SetDefault("showcase.discount.amount", d.Showcase.Discount.Amount)
	v.SetDefault("showcase.discount.base_price", d.Showcase.Discount.BasePrice)
	v.SetDefault("showcase.discount.item_name", d.Showcase.Discount.ItemName)
	v.SetDefault("showcase.primary_gemstone", d.Showcase.PrimaryGemstone)
	v.SetDefault("showcase.secondary_gemstone", d.Showcase.SecondaryGemstone)
	v.SetDefault("showcase.legacy.name", d.Showcase.Legacy.Name)
	v.SetDefault("showcase.legacy.price", d.Showcase.Legacy.Price)
	v.SetDefault("showcase.collection_name", d.Showcase.CollectionName)
	v.SetDefault("showcase.proxy.name", d.Showcase.Proxy.Name)
	v.SetDefault("showcase.proxy.price", d.Showcase.Proxy.Price)
	v.SetDefault("shop.payment_method", d.Shop.PaymentMethod)
	v.SetDefault("shop.credit_card_limit", d.Shop.CreditCardLimit)
	v.SetDefault("shop.paypal_balance", d.Shop.PayPalBalance)
	v.SetDefault("shop.customer", d.Shop.Customer)
}

// Load reads configuration from path (optional), the environment and the defaults, in that precedence
// order (environment wins over file). An empty path means no file.
func Load(path string) (Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the showcase and shop cannot meaningfully use.
func (c Config) Validate() error {
	var errs []error

	s := c.Showcase
	prices := []struct {
		field string
		value float64
	}{
		{"showcase.ring.price", s.Ring.Price},
		{"showcase.legacy.price", s.Legacy.Price},
		{"showcase.proxy.price", s.Proxy.Price},
		{"showcase.discount.base_price", s.Discount.BasePrice},
	}
	for _, p := range prices {
		if p.value < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", p.field, p.value))
		}
	}

	switch s.Discount.Strategy {
	case jewelry.StrategyPercentage:
		if s.Discount.Amount < 0 || s.Discount.Amount > 1 {
			errs = append(errs, fmt.Errorf("showcase.discount.amount must be within [0, 1] for %q, got %v",
				s.Discount.Strategy, s.Discount.Amount))
		}
	case jewelry.StrategyFixed:
		base := s.Discount.BasePrice
		if base == 0 {
			// zero selects the factory default
			base = jewelry.DefaultBasePrice
		}
		if s.Discount.Amount < 0 || s.Discount.Amount > base {
			errs = append(errs, fmt.Errorf("showcase.discount.amount must be within [0, base_price] for %q, got %v",
				s.Discount.Strategy, s.Discount.Amount))
		}
	default:
		errs = append(errs, fmt.Errorf("showcase.discount.strategy %q is not supported", s.Discount.Strategy))
	}

	switch c.Shop.PaymentMethod {
	case PaymentCreditCard, PaymentPayPal:
	default:
		errs = append(errs, fmt.Errorf("shop.payment_method %q is not supported", c.Shop.PaymentMethod))
	}
	if c.Shop.CreditCardLimit < 0 || c.Shop.PayPalBalance < 0 {
		errs = append(errs, errors.New("shop payment limits must not be negative"))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return out, nil
}

// WriteDefault writes the default configuration to path, creating parent directories.
// An existing file is left untouched and reported as an error.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config: %s already exists", path)
	}

	data, err := Marshal(Defaults())
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
