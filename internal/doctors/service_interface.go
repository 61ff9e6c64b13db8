package doctors

import "context"

// ServiceInterface defines the directory contract exposed to the handler
type ServiceInterface interface {
	List(ctx context.Context) ([]Doctor, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
