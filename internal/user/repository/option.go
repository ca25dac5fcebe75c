package repository

// UpsertTokensOptions holds parameters for the atomic token upsert.
// ExpiresAt is epoch seconds and is always written together with AccessToken.
type UpsertTokensOptions struct {
	Email        string
	RefreshToken string
	AccessToken  string
	ExpiresAt    int64
}
