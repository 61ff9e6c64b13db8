package patients

import "errors"

var (
	// ErrLoginTaken surfaces the duplicate-key race when two bookings try
	// to create the same synthetic account at once.
	ErrLoginTaken = errors.New("patient login already taken")
)
