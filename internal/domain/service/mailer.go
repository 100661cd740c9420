package service

import "context"

// Mailer delivers the account-confirmation link to a freshly registered email
// address. Delivery itself is an external collaborator; the registration flow
// only hands over the address and the link.
type Mailer interface {
	SendValidationLink(ctx context.Context, email, link string) error
}
