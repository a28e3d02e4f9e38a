package invite

import "talentbridge-engine/internal/domain"

// OfferMessage accompanies every invite; it is not user-configurable.
const OfferMessage = "You have received a job offer"

// Compose merges the target student, the company profile and the entered
// offer terms into one invite payload. Pure: same inputs, same payload.
// Callers must have a successfully fetched company profile in hand; there is
// no partial composition.
func Compose(student domain.StudentProfile, company domain.CompanyProfile, details domain.JobOfferDetails, senderWallet string) domain.InvitePayload {
	return domain.InvitePayload{
		RecipientWalletAddress: student.WalletAddress,
		SenderWalletAddress:    senderWallet,
		Message:                OfferMessage,

		JobType:        details.JobType,
		Position:       details.Position,
		JobDescription: details.JobDescription,
		Salary:         details.Salary,

		CompanyName:           company.Name,
		CompanyEmail:          company.Email,
		CompanyAddress:        company.Address,
		CompanyPhone:          company.Phone,
		CompanyProfilePicture: company.ProfilePicture,
		CompanyWalletAddress:  company.WalletAddress,
	}
}
