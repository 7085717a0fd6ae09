package config

import (
	"errors"
	"strings"

	ierr "github.com/NoahZinter/black-thursday/internal/errors"
	"github.com/NoahZinter/black-thursday/internal/validator"
	"github.com/spf13/viper"
)

type Configuration struct {
	Data    DataConfig    `validate:"required"`
	Logging LoggingConfig `validate:"required"`
}

// DataConfig holds the paths of the six CSV record sources the engine is
// loaded from.
type DataConfig struct {
	Merchants    string `mapstructure:"merchants" validate:"required"`
	Items        string `mapstructure:"items" validate:"required"`
	Invoices     string `mapstructure:"invoices" validate:"required"`
	InvoiceItems string `mapstructure:"invoice_items" validate:"required"`
	Transactions string `mapstructure:"transactions" validate:"required"`
	Customers    string `mapstructure:"customers" validate:"required"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("BLACKTHURSDAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; defaults plus env vars are a complete config
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, ierr.WithError(err).
				WithHint("failed to read config file").
				Mark(ierr.ErrValidation)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to unmarshal configuration").
			Mark(ierr.ErrValidation)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.merchants", "data/merchants.csv")
	v.SetDefault("data.items", "data/items.csv")
	v.SetDefault("data.invoices", "data/invoices.csv")
	v.SetDefault("data.invoice_items", "data/invoice_items.csv")
	v.SetDefault("data.transactions", "data/transactions.csv")
	v.SetDefault("data.customers", "data/customers.csv")
	v.SetDefault("logging.level", "info")
}

func (c *Configuration) Validate() error {
	return validator.ValidateStruct(c)
}
