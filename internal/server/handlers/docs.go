package handlers

import (
	"net/http"

	"github.com/swaggo/swag"
)

// HandleAPIDoc godoc
//
//	@Summary		OpenAPI document
//	@Description	Returns the OpenAPI (swagger 2.0) description of this API.
//	@Tags			Common
//	@Produce		json
//	@Success		200	{object}	map[string]any	"OpenAPI document"
//	@Router			/swagger/doc.json [get]
func HandleAPIDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		http.Error(w, "API documentation not available", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(doc))
}
