// Package constants holds provider names shared by configuration and infra wiring.
package constants

// EnvLocal is the env name used for development machines.
const EnvLocal = "local"

const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

const (
	StorageProviderFirebase = "firebase"
	StorageProviderBlob     = "blob"
)

// ProfilePicturePrefix is the key prefix of every uploaded profile picture.
const ProfilePicturePrefix = "profile_pics/"
