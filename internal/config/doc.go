// Package config provides configuration loading, merging, and validation
// for both tallysync binaries.
//
// Configuration is assembled from multiple sources; earlier sources win and
// later sources only fill fields the earlier ones left empty:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path resolved from sources 1 and 2)
//
// The entry points are [GetStructuredConfig] for the server and
// [GetDeviceConfig] for the field-device agent.
package config
