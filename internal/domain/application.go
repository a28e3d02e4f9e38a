package domain

// JobApplication is one student's application to a company's job posting.
// Immutable from the engine's perspective; status may change server-side
// between loads.
type JobApplication struct {
	ID              string `json:"id"`
	StudentID       string `json:"studentId"`
	JobID           string `json:"jobId"`
	Status          string `json:"status"`
	CoverLetter     string `json:"coverLetter"`
	ApplicationDate string `json:"applicationDate"`
	Experience      int    `json:"experience"` // years
}

// StudentProfile may be absent entirely (lookup failure); consumers get a
// nil pointer, never a partial record.
type StudentProfile struct {
	ID            string `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	WalletAddress string `json:"walletAddress"`
	ImageURL      string `json:"imageURL"`
}
