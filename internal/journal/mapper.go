package journal

// ToDTO converts a persisted entry to its transport representation.
func ToDTO(e Entry) EntryDTO {
	title := e.Title
	return EntryDTO{
		ID:          copyPtr(e.ID),
		Title:       &title,
		Description: copyPtr(e.Description),
	}
}

// ToDTOs converts a list of entries. The result is never nil so it encodes as [].
func ToDTOs(entries []Entry) []EntryDTO {
	dtos := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, ToDTO(e))
	}
	return dtos
}

// ToEntity converts a transport representation to an entry. Validate the DTO first:
// a missing title is mapped to the empty string.
func ToEntity(d EntryDTO) Entry {
	e := Entry{
		ID:          copyPtr(d.ID),
		Description: copyPtr(d.Description),
	}
	if d.Title != nil {
		e.Title = *d.Title
	}
	return e
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
