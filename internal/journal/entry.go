package journal

// Entry is a persisted journal entry.
type Entry struct {
	// ID is assigned by the store; nil until the entry is saved
	ID          *int64
	Title       string
	Description *string
}

// Equal reports whether e and other are the same persisted entry.
// An entry without an id is never equal to another entry.
func (e Entry) Equal(other Entry) bool {
	if e.ID == nil || other.ID == nil {
		return false
	}
	return *e.ID == *other.ID
}
