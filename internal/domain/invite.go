package domain

// JobOfferDetails is user-entered and ephemeral: it lives only for the
// duration of the active offer flow and is never persisted.
type JobOfferDetails struct {
	JobType        string `json:"jobType"`
	Position       string `json:"position"`
	JobDescription string `json:"jobDescription"`
	Salary         string `json:"salary"`
}

// InvitePayload is the write-only union of company fields, job-offer fields
// and both wallet addresses. Constructed fresh per invite; never stored.
type InvitePayload struct {
	RecipientWalletAddress string `json:"recipientWalletAddress"`
	SenderWalletAddress    string `json:"senderWalletAddress"`
	Message                string `json:"message"`

	JobType        string `json:"jobType"`
	Position       string `json:"position"`
	JobDescription string `json:"jobDescription"`
	Salary         string `json:"salary"`

	CompanyName           string `json:"companyName"`
	CompanyEmail          string `json:"companyEmail"`
	CompanyAddress        string `json:"companyAddress"`
	CompanyPhone          string `json:"companyPhone"`
	CompanyProfilePicture string `json:"companyProfilePicture"`
	CompanyWalletAddress  string `json:"companyWalletAddress"`
}

// InviteResult is the backend's answer to an invite submission. Success=false
// with a message is a handled outcome, not a transport failure.
type InviteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
