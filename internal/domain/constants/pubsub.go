// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub providers accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Message attribute keys set on alert dispatch events.
const (
	AttrAlertID   = "alert_id"
	AttrChildID   = "child_id"
	AttrRequestID = "request_id"
)

// EnvDevelop is the env.env value of local development setups.
const EnvDevelop = "develop"
