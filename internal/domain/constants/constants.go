// Package constants defines shared enumeration values used across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub provider types for the notification dispatcher.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
