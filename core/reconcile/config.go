package reconcile

import "time"

// Config holds the reconciliation settings loaded from the environment.
type Config struct {
	// Source selects where shipment lines come from (waybills, shipped_items).
	Source string `mapstructure:"source" default:"waybills" validate:"oneof=waybills shipped_items"`
	// Aggregation selects how multiple waybills are combined (sum, first).
	Aggregation string `mapstructure:"aggregation" default:"sum" validate:"oneof=sum first"`
	// KeyMode selects the line matching key (sku_name, sku).
	KeyMode string `mapstructure:"key_mode" default:"sku_name" validate:"oneof=sku_name sku"`
	// CacheTTLSeconds is how long fetched tables are reused. 0 disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"3600" validate:"min=0"`
}

// NewSpec builds an engine spec from the configuration.
func (c Config) NewSpec(adapter Adapter) *Spec {
	return &Spec{
		Adapter:     adapter,
		CacheTTL:    time.Duration(c.CacheTTLSeconds) * time.Second,
		Source:      Source(c.Source),
		Aggregation: Aggregation(c.Aggregation),
		KeyMode:     KeyMode(c.KeyMode),
	}
}
