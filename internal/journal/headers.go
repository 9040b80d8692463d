package journal

import (
	"errors"
	"net/http"
	"strconv"
)

// HeaderUtil sets the alert headers that tell a client what an API call did:
//
//	X-journeyApp-alert: journeyApp.journalEntry.created
//	X-journeyApp-params: 1051
//
// client errors set X-journeyApp-error: error.<errorKey> instead.
type HeaderUtil struct {
	applicationName string
}

func NewHeaderUtil(applicationName string) HeaderUtil {
	return HeaderUtil{applicationName: applicationName}
}

func (h HeaderUtil) alertHeader() string  { return "X-" + h.applicationName + "-alert" }
func (h HeaderUtil) paramsHeader() string { return "X-" + h.applicationName + "-params" }
func (h HeaderUtil) errorHeader() string  { return "X-" + h.applicationName + "-error" }

func (h HeaderUtil) setAlert(w http.ResponseWriter, action string, id int64) {
	w.Header().Set(h.alertHeader(), h.applicationName+"."+entityName+"."+action)
	w.Header().Set(h.paramsHeader(), strconv.FormatInt(id, 10))
}

// SetCreationAlert sets the headers for a created entry.
func (h HeaderUtil) SetCreationAlert(w http.ResponseWriter, id int64) { h.setAlert(w, "created", id) }

// SetUpdateAlert sets the headers for an updated entry.
func (h HeaderUtil) SetUpdateAlert(w http.ResponseWriter, id int64) { h.setAlert(w, "updated", id) }

// SetDeletionAlert sets the headers for a deleted entry.
func (h HeaderUtil) SetDeletionAlert(w http.ResponseWriter, id int64) { h.setAlert(w, "deleted", id) }

// SetFailureAlert sets the error headers when err is a client error about the entry.
func (h HeaderUtil) SetFailureAlert(w http.ResponseWriter, err error) {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return
	}
	if StatusCode(apiErr.Code()) != http.StatusBadRequest {
		return
	}
	w.Header().Set(h.errorHeader(), "error."+string(apiErr.Code()))
	w.Header().Set(h.paramsHeader(), entityName)
}

// Names lists the alert header names, e.g for the CORS exposed headers.
func (h HeaderUtil) Names() []string {
	return []string{h.alertHeader(), h.errorHeader(), h.paramsHeader()}
}
