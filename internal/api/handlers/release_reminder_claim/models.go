package release_reminder_claim

// ReleaseClaimRequest HTTP request model
type ReleaseClaimRequest struct {
	Token string `json:"token" validate:"required"`
}
