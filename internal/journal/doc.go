// journal package includes the JournalEntry resource: the entity and its transport shape,
// the criteria used to filter entries, the services used by the REST handlers and the
// error/response helpers shared by the handlers and the middleware.
//
// **entity**
// a journal entry has a server assigned id, a required title and an optional description.
// Entries (and their DTOs) are equal only when both have an id and the ids match.
//
// **criteria**
// list and count requests accept one optional filter per field (see criteria.go).
// A filter is expanded into a list of predicates that are combined with AND.
// Each predicate can be evaluated in memory (Predicate.Match) or rendered to SQL by the
// repository package, so the in-memory and Postgres repositories filter identically.
//
// **error handling**
// use the constructors in errors.go and send errors with RespondWithErrorResponse(),
// which maps them to an HTTP status and the standard error response body.
//
// **testing**
// the handlers are tested against the in-memory repository (handlers package) and end-2-end
// against Postgres - see test/integration for details
package journal
