package pagination

import (
	"strconv"
	"strings"
)

// DefaultLimit caps the admin appointment listing when the caller does not
// ask for anything else.
const DefaultLimit = 50

// Limit represents the admin listing row cap. Unlimited is true when the
// caller explicitly asked for every row.
type Limit struct {
	N         int
	Unlimited bool
}

// ParseLimit interprets the bot's limit parameter: absent, empty, zero or
// unparseable all mean the default of 50; a negative value means no cap.
func ParseLimit(raw string) Limit {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Limit{N: DefaultLimit}
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n == 0 {
		return Limit{N: DefaultLimit}
	}
	if n < 0 {
		return Limit{Unlimited: true}
	}
	return Limit{N: n}
}
