package database

type JournalEntry struct {
	ID          int64
	Title       string
	Description *string
}
