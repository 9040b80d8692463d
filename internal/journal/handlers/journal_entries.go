package handlers

// journal_entries.go implements the /api/journal-entries resource

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/information-sharing-networks/journey/internal/journal"
	"github.com/information-sharing-networks/journey/internal/logger"
)

// ResourcePath is the path the journal entry routes are mounted on.
const ResourcePath = "/api/journal-entries"

// JournalEntryHandler handles the journal entry CRUD and search requests
type JournalEntryHandler struct {
	service      *journal.Service
	queryService *journal.QueryService
	headers      journal.HeaderUtil
}

// NewJournalEntryHandler creates the handler. applicationName prefixes the alert headers.
func NewJournalEntryHandler(service *journal.Service, queryService *journal.QueryService, applicationName string) *JournalEntryHandler {
	return &JournalEntryHandler{
		service:      service,
		queryService: queryService,
		headers:      journal.NewHeaderUtil(applicationName),
	}
}

// Routes returns the router for the resource, to be mounted on ResourcePath.
func (h *JournalEntryHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleCreateJournalEntry)
	r.Put("/", h.HandleUpdateJournalEntry)
	r.Get("/", h.HandleGetAllJournalEntries)
	r.Get("/count", h.HandleCountJournalEntries)
	r.Get("/{id}", h.HandleGetJournalEntry)
	r.Delete("/{id}", h.HandleDeleteJournalEntry)
	return r
}

// HandleCreateJournalEntry godoc
//
//	@Summary		Create a journal entry
//	@Description	The entry must not have an id: ids are assigned by the server.
//	@Description	The title is required; title and description are limited to 255 characters.
//	@Tags			JournalEntries
//	@Accept			json
//	@Produce		json
//	@Param			entry	body		journal.EntryDTO		true	"Entry to create (without id)"
//	@Success		201		{object}	journal.EntryDTO		"Created entry"
//	@Header			201		{string}	Location				"URL of the created entry"
//	@Failure		400		{object}	journal.ErrorResponse	"id present (idexists), validation failed or malformed JSON"
//	@Failure		500		{object}	journal.ErrorResponse	"Internal error"
//	@Router			/api/journal-entries [post]
func (h *JournalEntryHandler) HandleCreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	dto, ok := h.decodeEntry(w, r)
	if !ok {
		return
	}

	if dto.ID != nil {
		h.respondWithError(w, r, journal.NewIDExistsError())
		return
	}

	created, err := h.service.Create(r.Context(), dto)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	id := *created.ID
	logger.ContextWithLogAttrs(r.Context(), slog.Int64("journal_entry_id", id))

	w.Header().Set("Location", ResourcePath+"/"+strconv.FormatInt(id, 10))
	h.headers.SetCreationAlert(w, id)
	journal.RespondWithJSONPayload(w, http.StatusCreated, created)
}

// HandleUpdateJournalEntry godoc
//
//	@Summary		Update a journal entry
//	@Description	Replaces the title and description of the entry identified by the id in the body.
//	@Tags			JournalEntries
//	@Accept			json
//	@Produce		json
//	@Param			entry	body		journal.EntryDTO		true	"Entry to update (with id)"
//	@Success		200		{object}	journal.EntryDTO		"Updated entry"
//	@Failure		400		{object}	journal.ErrorResponse	"id missing (idnull), validation failed or malformed JSON"
//	@Failure		404		{object}	journal.ErrorResponse	"No entry with this id"
//	@Failure		500		{object}	journal.ErrorResponse	"Internal error"
//	@Router			/api/journal-entries [put]
func (h *JournalEntryHandler) HandleUpdateJournalEntry(w http.ResponseWriter, r *http.Request) {
	dto, ok := h.decodeEntry(w, r)
	if !ok {
		return
	}

	if dto.ID == nil {
		h.respondWithError(w, r, journal.NewIDNullError())
		return
	}

	updated, err := h.service.Update(r.Context(), dto)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	h.headers.SetUpdateAlert(w, *updated.ID)
	journal.RespondWithJSONPayload(w, http.StatusOK, updated)
}

// HandleGetAllJournalEntries godoc
//
//	@Summary		List journal entries
//	@Description	Returns the entries matching all the filters, in the requested order (default id,asc).
//	@Description
//	@Description	Filters take the form `<field>.<operator>=<value>`:
//	@Description	- id: equals, notEquals, in, notIn, specified, greaterThan, lessThan, greaterThanOrEqual, lessThanOrEqual
//	@Description	- title, description: equals, notEquals, in, notIn, specified
//	@Description
//	@Description	`in` and `notIn` take comma separated values. `specified` takes true or false.
//	@Tags			JournalEntries
//	@Produce		json
//	@Param			sort				query		[]string				false	"Sort order, e.g. title,desc (repeatable)"	collectionFormat(multi)
//	@Param			title.equals		query		string					false	"Title equals"
//	@Param			title.in			query		string					false	"Title is one of (comma separated)"
//	@Param			description.specified	query	bool					false	"Description is (not) null"
//	@Param			id.greaterThan		query		integer					false	"Id greater than"
//	@Success		200					{array}		journal.EntryDTO		"Matching entries"
//	@Failure		400					{object}	journal.ErrorResponse	"Invalid filter or sort"
//	@Failure		500					{object}	journal.ErrorResponse	"Internal error"
//	@Router			/api/journal-entries [get]
func (h *JournalEntryHandler) HandleGetAllJournalEntries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	criteria, err := journal.ParseCriteria(query)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	orders, err := journal.ParseSort(query["sort"])
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	var entries []journal.EntryDTO
	if criteria.IsEmpty() {
		entries, err = h.service.FindAll(r.Context(), orders)
	} else {
		entries, err = h.queryService.FindByCriteria(r.Context(), criteria, orders)
	}
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	journal.RespondWithJSONPayload(w, http.StatusOK, entries)
}

// HandleCountJournalEntries godoc
//
//	@Summary		Count journal entries
//	@Description	Returns the number of entries matching the filters. Accepts the same filters as the list endpoint.
//	@Tags			JournalEntries
//	@Produce		json
//	@Param			title.equals			query		string					false	"Title equals"
//	@Param			description.specified	query		bool					false	"Description is (not) null"
//	@Success		200						{integer}	int						"Number of matching entries"
//	@Failure		400						{object}	journal.ErrorResponse	"Invalid filter"
//	@Failure		500						{object}	journal.ErrorResponse	"Internal error"
//	@Router			/api/journal-entries/count [get]
func (h *JournalEntryHandler) HandleCountJournalEntries(w http.ResponseWriter, r *http.Request) {
	criteria, err := journal.ParseCriteria(r.URL.Query())
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	var count int64
	if criteria.IsEmpty() {
		count, err = h.service.Count(r.Context())
	} else {
		count, err = h.queryService.CountByCriteria(r.Context(), criteria)
	}
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	journal.RespondWithJSONPayload(w, http.StatusOK, count)
}

// HandleGetJournalEntry godoc
//
//	@Summary	Get a journal entry
//	@Tags		JournalEntries
//	@Produce	json
//	@Param		id	path		integer					true	"Entry id"
//	@Success	200	{object}	journal.EntryDTO		"The entry"
//	@Failure	400	{object}	journal.ErrorResponse	"id is not an integer"
//	@Failure	404	{object}	journal.ErrorResponse	"No entry with this id"
//	@Failure	500	{object}	journal.ErrorResponse	"Internal error"
//	@Router		/api/journal-entries/{id} [get]
func (h *JournalEntryHandler) HandleGetJournalEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	entry, err := h.service.FindOne(r.Context(), id)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}

	journal.RespondWithJSONPayload(w, http.StatusOK, entry)
}

// HandleDeleteJournalEntry godoc
//
//	@Summary		Delete a journal entry
//	@Description	Deleting an id that does not exist also returns 204.
//	@Tags			JournalEntries
//	@Param			id	path	integer	true	"Entry id"
//	@Success		204	"Deleted"
//	@Failure		400	{object}	journal.ErrorResponse	"id is not an integer"
//	@Failure		500	{object}	journal.ErrorResponse	"Internal error"
//	@Router			/api/journal-entries/{id} [delete]
func (h *JournalEntryHandler) HandleDeleteJournalEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondWithError(w, r, err)
		return
	}

	h.headers.SetDeletionAlert(w, id)
	journal.RespondWithStatusCodeOnly(w, http.StatusNoContent)
}

// decodeEntry parses the request body. On failure the error response has been sent.
func (h *JournalEntryHandler) decodeEntry(w http.ResponseWriter, r *http.Request) (journal.EntryDTO, bool) {
	defer r.Body.Close()

	var dto journal.EntryDTO
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&dto); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondWithError(w, r, journal.NewRequestTooLargeError(
				fmt.Sprintf("Request body exceeds maximum allowed size (%d bytes)", maxBytesErr.Limit),
			))
			return journal.EntryDTO{}, false
		}
		h.respondWithError(w, r, journal.WrapMalformedRequestError(err, "failed to decode request JSON"))
		return journal.EntryDTO{}, false
	}
	if decoder.More() {
		h.respondWithError(w, r, journal.NewMalformedRequestError("request body must contain a single JSON object"))
		return journal.EntryDTO{}, false
	}
	return dto, true
}

// pathID parses the {id} URL parameter. On failure the error response has been sent.
func (h *JournalEntryHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.respondWithError(w, r, journal.WrapMalformedRequestError(err, "invalid id "+strconv.Quote(raw)))
		return 0, false
	}
	return id, true
}

func (h *JournalEntryHandler) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	h.headers.SetFailureAlert(w, err)
	journal.RespondWithErrorResponse(w, r, err)
}
