package journal

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// maximum length of the title and description columns
const MaxFieldLength = 255

// EntryDTO is the JSON representation of a journal entry used by the REST API.
type EntryDTO struct {
	// ID must be absent when creating an entry and present when updating it
	ID          *int64  `json:"id,omitempty" example:"1051"`
	Title       *string `json:"title,omitempty" example:"Exploratory testing session"`
	Description *string `json:"description,omitempty" example:"Paired on the checkout flow"`
}

// Equal reports whether d and other represent the same entry (see Entry.Equal).
func (d EntryDTO) Equal(other EntryDTO) bool {
	if d.ID == nil || other.ID == nil {
		return false
	}
	return *d.ID == *other.ID
}

// Validate checks the field constraints. It does not check the id, which depends on the operation.
//
// Text must be valid UTF-8 without NUL characters, which Postgres text columns cannot store.
func (d EntryDTO) Validate() error {
	var fieldErrors []FieldError

	if d.Title == nil {
		fieldErrors = append(fieldErrors, FieldError{
			ObjectName: dtoObjectName,
			Field:      "title",
			Message:    "NotNull",
		})
	} else if msg := checkText(*d.Title); msg != "" {
		fieldErrors = append(fieldErrors, FieldError{
			ObjectName: dtoObjectName,
			Field:      "title",
			Message:    msg,
		})
	}

	if d.Description != nil {
		if msg := checkText(*d.Description); msg != "" {
			fieldErrors = append(fieldErrors, FieldError{
				ObjectName: dtoObjectName,
				Field:      "description",
				Message:    msg,
			})
		}
	}

	if len(fieldErrors) > 0 {
		return NewValidationError(fmt.Sprintf("%d field(s) failed validation", len(fieldErrors)), fieldErrors...)
	}
	return nil
}

// checkText returns the failed constraint for a text value, or "" when it is valid.
func checkText(s string) string {
	if utf8.RuneCountInString(s) > MaxFieldLength {
		return "Size"
	}
	if !utf8.ValidString(s) || strings.ContainsRune(s, 0) {
		return "Pattern"
	}
	return ""
}
