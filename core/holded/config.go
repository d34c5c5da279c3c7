package holded

// Config holds configuration for the Holded invoicing API.
type Config struct {
	// BaseURL is the root of the invoicing API.
	BaseURL string `mapstructure:"base_url" default:"https://api.holded.com/api/invoicing/v1" validate:"required,url"`
	// APIKey is sent in the "key" header of every request.
	APIKey string `mapstructure:"api_key" default:"" validate:"required"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30" validate:"min=0"`
	// ShippedItemsPath is the per-order shipped items path; %s is replaced by the order id.
	ShippedItemsPath string `mapstructure:"shipped_items_path" default:"/documents/salesorder/%s/shippeditems"`
}
