// Package docs holds the OpenAPI document served at /swagger/doc.json.
//
// It follows the layout of swag's output and must be kept in step with the handler annotations;
// `swag init -g cmd/journey-server/main.go -o internal/docs` rewrites it from them.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/journal-entries": {
            "get": {
                "description": "Returns the entries matching all the filters, in the requested order (default id,asc).\n\nFilters take the form ` + "`" + `<field>.<operator>=<value>` + "`" + `:\n- id: equals, notEquals, in, notIn, specified, greaterThan, lessThan, greaterThanOrEqual, lessThanOrEqual\n- title, description: equals, notEquals, in, notIn, specified\n\n` + "`" + `in` + "`" + ` and ` + "`" + `notIn` + "`" + ` take comma separated values. ` + "`" + `specified` + "`" + ` takes true or false.",
                "produces": ["application/json"],
                "tags": ["JournalEntries"],
                "summary": "List journal entries",
                "parameters": [
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Sort order, e.g. title,desc (repeatable)", "name": "sort", "in": "query"},
                    {"type": "string", "description": "Title equals", "name": "title.equals", "in": "query"},
                    {"type": "string", "description": "Title is one of (comma separated)", "name": "title.in", "in": "query"},
                    {"type": "boolean", "description": "Description is (not) null", "name": "description.specified", "in": "query"},
                    {"type": "integer", "description": "Id greater than", "name": "id.greaterThan", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Matching entries", "schema": {"type": "array", "items": {"$ref": "#/definitions/journal.EntryDTO"}}},
                    "400": {"description": "Invalid filter or sort", "schema": {"$ref": "#/definitions/journal.ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/journal.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Replaces the title and description of the entry identified by the id in the body.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["JournalEntries"],
                "summary": "Update a journal entry",
                "parameters": [
                    {"description": "Entry to update (with id)", "name": "entry", "in": "body", "required": true, "schema": {"$ref": "#/definitions/journal.EntryDTO"}}
                ],
                "responses": {
                    "200": {"description": "Updated entry", "schema": {"$ref": "#/definitions/journal.EntryDTO"}},
                    "400": {"description": "id missing (idnull), validation failed or malformed JSON", "schema": {"$ref": "#/definitions/journal.ErrorResponse"}},
                    "404": {"description": "No entry with this id", "schema": {"$ref": "#/definitions/journal.ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/journal.ErrorResponse"}}
                }
            },
            "post": {
                "description": "The entry must not have an id: ids are assigned by the server.\nThe title is required; title and description are limited to 255 characters.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["JournalEntries"],
                "summary": "Create a journal entry",
                "parameters": [
                    {"description": "Entry to create (without id)", "name": "entry", "in": "body", "required": true, "schema": {"$ref": "#/definitions/journal.EntryDTO"}}
                ],
                "responses": {
                    "201": {"description": "Created entry", "schema": {"$ref": "#/definitions/journal.EntryDTO"}, "headers": {"Location": {"type": "string", "description": "URL of the created entry"}}},
                    "400": {"description": "id present (idexists), validation failed or malformed JSON", "schema": {"$ref": "#/definitions/journal.ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/journal.ErrorResponse"}}
                }
            }
        },
        "/api/journal-entries/count": {
            "get": {
                "description": "Returns the number of entries matching the filters. Accepts the same filters as the list endpoint.",
                "produces": ["application/json"],
                "tags": ["JournalEntries"],
                "summary": "Count journal entries",
                "parameters": [
                    {"type": "string", "description": "Title equals", "name": "title.equals", "in": "query"},
                    {"type": "boolean", "description": "Description is (not) null", "name": "description.specified", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Number of matching entries", "schema": {"type": "integer"}},
                    "400": {"description": "Invalid filter", "schema": {"$ref": "#/definitions/journal.ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/journal.ErrorResponse"}}
                }
            }
        },
        "/api/journal-entries/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["JournalEntries"],
                "summary": "Get a journal entry",
                "parameters": [
                    {"type": "integer", "description": "Entry id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "The entry", "schema": {"$ref": "#/definitions/journal.EntryDTO"}},
                    "400": {"description": "id is not an integer", "schema": {"$ref": "#/definitions/journal.ErrorResponse"}},
                    "404": {"description": "No entry with this id", "schema": {"$ref": "#/definitions/journal.ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/journal.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Deleting an id that does not exist also returns 204.",
                "tags": ["JournalEntries"],
                "summary": "Delete a journal entry",
                "parameters": [
                    {"type": "integer", "description": "Entry id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "400": {"description": "id is not an integer", "schema": {"$ref": "#/definitions/journal.ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/journal.ErrorResponse"}}
                }
            }
        },
        "/health/live": {
            "get": {
                "description": "Check if the HTTP service is alive and responding.",
                "produces": ["text/plain"],
                "tags": ["Common"],
                "summary": "Health (liveness) Check",
                "responses": {"200": {"description": "OK", "schema": {"type": "string"}}}
            }
        },
        "/health/ready": {
            "get": {
                "description": "Checks if the service is ready to accept traffic (includes database connectivity)",
                "produces": ["application/json"],
                "tags": ["Common"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "status ready", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "status not ready", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/swagger/doc.json": {
            "get": {
                "description": "Returns the OpenAPI (swagger 2.0) description of this API.",
                "produces": ["application/json"],
                "tags": ["Common"],
                "summary": "OpenAPI document",
                "responses": {"200": {"description": "OpenAPI document", "schema": {"type": "object", "additionalProperties": {}}}}
            }
        },
        "/version": {
            "get": {
                "description": "Returns the version and build information for the service",
                "produces": ["application/json"],
                "tags": ["Common"],
                "summary": "Get version information",
                "responses": {"200": {"description": "Version information", "schema": {"$ref": "#/definitions/handlers.VersionResponse"}}}
            }
        }
    },
    "definitions": {
        "handlers.VersionResponse": {
            "type": "object",
            "properties": {
                "build_date": {"type": "string", "example": "2026-01-28T10:00:00Z"},
                "git_commit": {"type": "string", "example": "3f9c2e1"},
                "service": {"type": "string", "example": "journey-server"},
                "version": {"type": "string", "example": "v1.0.0"}
            }
        },
        "journal.EntryDTO": {
            "type": "object",
            "properties": {
                "description": {"type": "string", "example": "Paired on the checkout flow"},
                "id": {"description": "ID must be absent when creating an entry and present when updating it", "type": "integer", "example": 1051},
                "title": {"type": "string", "example": "Exploratory testing session"}
            }
        },
        "journal.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"description": "Details about the error", "type": "string"},
                "entityName": {"description": "The entity the request was about (omitted for errors raised by middleware)", "type": "string"},
                "errorDateTime": {"description": "The DateTime corresponding to the error occurring", "type": "string"},
                "errorKey": {"description": "Error key, see ErrorCode", "allOf": [{"$ref": "#/definitions/journal.ErrorCode"}]},
                "fieldErrors": {"description": "Field constraint failures (validation errors only)", "type": "array", "items": {"$ref": "#/definitions/journal.FieldError"}},
                "message": {"description": "message key for clients that translate errors, e.g error.idexists", "type": "string"},
                "method": {"description": "The HTTP method used to make the request e.g. GET, POST, etc", "type": "string"},
                "path": {"description": "The path that was requested", "type": "string"},
                "requestId": {"description": "A unique identifier of the request, also logged server-side", "type": "string"},
                "status": {"description": "The HTTP status code returned", "type": "integer"},
                "title": {"description": "A short description corresponding to the HTTP status code", "type": "string"}
            }
        },
        "journal.ErrorCode": {
            "type": "string",
            "enum": ["malformed", "validation", "idexists", "idnull", "badcriteria", "notfound", "internal", "ratelimit", "toolarge"]
        },
        "journal.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"},
                "objectName": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "journey API",
	Description:      "CRUD and criteria search for journal entries.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
