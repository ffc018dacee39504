// Package config provides configuration loading, merging, and validation
// facilities for the envelope engine.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources fill only fields the earlier ones left empty):
//  1. Environment variables
//  2. JSON config file
//  3. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
