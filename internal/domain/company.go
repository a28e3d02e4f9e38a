package domain

// CompanyProfile is resolved once per session via the configured company id.
// Wire names follow the platform backend (snake_case).
type CompanyProfile struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	ProfilePicture string `json:"profile_picture"`
	WalletAddress  string `json:"wallet_address"`
}
