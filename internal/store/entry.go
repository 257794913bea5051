package store

// Entry is a single credential record. Entries are plain values: copying one
// copies all four fields and editing produces a new Entry.
type Entry struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Notes    string `json:"notes"`
}
