package doctors

import "context"

// RepositoryInterface defines the data access contract for the directory
type RepositoryInterface interface {
	List(ctx context.Context) ([]Row, error)
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
