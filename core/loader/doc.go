// Package loader registers and mounts the application's features.
//
// A feature bundles a service and its HTTP handler behind the Feature interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps features in registration order. LoadAll mounts every enabled
// feature on the router and stops at the first feature that fails to load.
package loader
