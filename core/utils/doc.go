// Package utils provides common utility functions for the order-status application.
// It includes helper functions for coercing loosely typed upstream JSON values into the
// fixed types used by the reconciliation engine.
package utils
