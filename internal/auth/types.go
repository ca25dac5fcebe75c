package auth

// BeginAuthOutput carries the provider authorization URL and the anti-forgery
// state bound to this attempt.
type BeginAuthOutput struct {
	URL   string
	State string
}

// CallbackOutput is the identity established by a successful OAuth callback.
type CallbackOutput struct {
	Email string
}
