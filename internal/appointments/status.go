package appointments

// KiviCare appointment status codes. The stored value is always the raw
// integer; labels are for outward display only.
const (
	StatusCancelled = 0
	StatusConfirmed = 1
	StatusVisited   = 4
	StatusNoShow    = 5
)

// StatusLabel maps a status code to the bot-facing label. Cancelled rows are
// filtered out before mapping, so everything unknown reads as pending.
func StatusLabel(code int) string {
	switch code {
	case StatusConfirmed:
		return "confirmed"
	case StatusVisited:
		return "visited"
	case StatusNoShow:
		return "noshow"
	default:
		return "pending"
	}
}
