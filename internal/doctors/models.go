package doctors

// Doctor is the directory entry returned to the bot.
type Doctor struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Specialty   string `json:"specialty"`
	Description string `json:"description"`
}

// Row is the raw account row: profile blob and description are meta values
// that may be missing.
type Row struct {
	ID          int64
	Name        string
	BasicData   *string // JSON profile blob, may be malformed
	Description *string
}
