package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// QuotationConfig is the branding and boilerplate printed on quotation PDFs.
// It lives in quotation.yml so the office can adjust wording without a deploy.
type QuotationConfig struct {
	CompanyNameEn string   `mapstructure:"companyNameEn"`
	CompanyNameAr string   `mapstructure:"companyNameAr"`
	Phone         string   `mapstructure:"phone"`
	Email         string   `mapstructure:"email"`
	Address       string   `mapstructure:"address"`
	Currency      string   `mapstructure:"currency"`
	NotesLimit    int      `mapstructure:"notesLimit"`
	Terms         []string `mapstructure:"terms"`
}

func DefaultQuotationConfig() QuotationConfig {
	return QuotationConfig{
		CompanyNameEn: "Gulf Bridge Logistics",
		CompanyNameAr: "الجسر الخليجي للخدمات اللوجستية",
		Phone:         "+965 2222 0000",
		Email:         "quotes@gulfbridge.example",
		Address:       "Shuwaikh Industrial, Kuwait",
		Currency:      "KWD",
		NotesLimit:    600,
		Terms: []string{
			"This quotation is valid for 15 days from the date of issue.",
			"Prices exclude customs duties and any destination charges.",
			"Payment terms: 50% on confirmation, balance before release.",
			"Transit times are estimates and not contractually binding.",
		},
	}
}

// QuotationConfigHolder serves the latest loaded config and hot-reloads it
// when quotation.yml changes on disk.
type QuotationConfigHolder struct {
	current atomic.Value // holds QuotationConfig
}

func NewQuotationConfigHolder() (*QuotationConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("quotation")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/portal")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PORTAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultQuotationConfig()
		v.SetDefault("quotation.companyNameEn", defaults.CompanyNameEn)
		v.SetDefault("quotation.companyNameAr", defaults.CompanyNameAr)
		v.SetDefault("quotation.phone", defaults.Phone)
		v.SetDefault("quotation.email", defaults.Email)
		v.SetDefault("quotation.address", defaults.Address)
		v.SetDefault("quotation.currency", defaults.Currency)
		v.SetDefault("quotation.notesLimit", defaults.NotesLimit)
		v.SetDefault("quotation.terms", defaults.Terms)
	}

	var cfg QuotationConfig
	if err := v.UnmarshalKey("quotation", &cfg); err != nil {
		return nil, err
	}
	if err := validateQuotationConfig(cfg); err != nil {
		return nil, err
	}

	holder := &QuotationConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated QuotationConfig
		if err := v.UnmarshalKey("quotation", &updated); err != nil {
			log.Printf("[quotation-config] reload failed: %v", err)
			return
		}
		if err := validateQuotationConfig(updated); err != nil {
			log.Printf("[quotation-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[quotation-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticQuotationConfigHolder wraps a fixed config without file watching.
func NewStaticQuotationConfigHolder(cfg QuotationConfig) *QuotationConfigHolder {
	holder := &QuotationConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func (h *QuotationConfigHolder) Current() QuotationConfig {
	if v, ok := h.current.Load().(QuotationConfig); ok {
		return v
	}
	return DefaultQuotationConfig()
}

func validateQuotationConfig(cfg QuotationConfig) error {
	if strings.TrimSpace(cfg.CompanyNameEn) == "" && strings.TrimSpace(cfg.CompanyNameAr) == "" {
		return errors.New("quotation config requires a company name")
	}
	if cfg.NotesLimit <= 0 {
		return errors.New("quotation notesLimit must be positive")
	}
	return nil
}
