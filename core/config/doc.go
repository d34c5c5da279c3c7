// Package config provides configuration management for the order status service.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the 'default' struct tags of each section
// and every loaded configuration is checked against its 'validate' tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, shared password, read timeout
//   - Holded: invoicing API base URL, API key, request timeout
//   - Reconcile: shipment source, waybill aggregation, line key mode, cache TTL
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Holded.BaseURL)
package config
