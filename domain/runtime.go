package domain

// RuntimeEnv describes the host the API is serving. EmbeddedHost is set when
// the caller runs inside a mini-app host whose wallet can only sign for the
// connected account.
type RuntimeEnv struct {
	EmbeddedHost bool
}
