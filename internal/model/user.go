package model

// Environment names
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// User is one row of the token store: identity email plus the Google
// credentials issued for it. AccessToken/AccessTokenExpiresAt are a cache of
// the last-issued bearer token and may be stale or absent; RefreshToken is
// never emptied after the first successful authorization.
type User struct {
	ID                   string
	Email                string
	RefreshToken         string
	AccessToken          string
	AccessTokenExpiresAt int64 // epoch seconds; 0 when absent
}
