package service_interfaces

// Authorizer is the capability surface the ledger services consume from the
// auth collaborator. The ledger core performs no authentication of its own.
type Authorizer interface {
	ValidateSession(sessionID string) (userID string, ok bool)
	OwnsAccount(sessionID, accountNumber string) bool
	IsAdmin(sessionID string) bool
	LinkAccount(userID, accountNumber string) error
}
