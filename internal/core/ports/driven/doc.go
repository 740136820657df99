// Package driven defines interfaces the core uses to reach infrastructure:
// the dataset on disk and the configuration file. These are the "driven"
// ports in hexagonal architecture terminology.
//
// Implementations live in internal/adapters/driven.
package driven
