// Package constants holds configuration values shared across layers.
package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers selectable through pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderDirect = "direct"
)

// Distance providers selectable through distance.provider.
const (
	DistanceProviderGoogle    = "google"
	DistanceProviderHaversine = "haversine"
)
