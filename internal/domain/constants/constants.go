// Package constants defines configuration values shared across layers.
package constants

const (
	// EnvDevelop is the env name used for local development.
	EnvDevelop = "develop"

	// PubSubProviderLocal publishes events by POSTing push-shaped payloads to a local endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// PubSubAttrEventType is the message attribute carrying the event type.
	PubSubAttrEventType = "event_type"
	// PubSubAttrRequestID is the message attribute carrying the originating request ID.
	PubSubAttrRequestID = "request_id"
)
