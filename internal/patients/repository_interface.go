package patients

import "context"

// RepositoryInterface defines the account-store primitives the resolver
// needs: lookup by login, account creation and attribute storage.
type RepositoryInterface interface {
	FindIDByLogin(ctx context.Context, login string) (int64, bool, error)
	CreateAccount(ctx context.Context, acc Account) (int64, error)
	SetAttribute(ctx context.Context, userID int64, key, value string) error
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
