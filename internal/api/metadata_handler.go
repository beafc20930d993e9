package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/vinayvenu/orthanc/pkg/dicom"
)

// MetadataHandler exposes the hierarchical metadata operations over JSON:
// per-level find templates, per-level extraction, and retrieve-level
// deduction.
type MetadataHandler struct{}

// NewMetadataHandler creates a metadata handler.
func NewMetadataHandler() *MetadataHandler {
	return &MetadataHandler{}
}

// Routes returns the router for the metadata endpoints.
func (h *MetadataHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{level}/find-template", h.FindTemplate)
	r.Post("/{level}/extract", h.Extract)
	r.Post("/level", h.DeduceLevel)
	return r
}

func levelParam(r *http.Request) (dicom.Level, error) {
	return dicom.ParseLevel(chi.URLParam(r, "level"))
}

// FindTemplate answers the query template of a hierarchy level: the level's
// own tags plus every ancestor identifying key, all with empty values.
func (h *MetadataHandler) FindTemplate(w http.ResponseWriter, r *http.Request) {
	level, err := levelParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	template := dicom.NewMap()
	dicom.SetupLevelFindTemplate(template, level)

	render.JSON(w, r, template)
}

// Extract answers the subset of the posted metadata belonging to a
// hierarchy level. Tags of the level absent from the input are skipped.
func (h *MetadataHandler) Extract(w http.ResponseWriter, r *http.Request) {
	level, err := levelParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	source := dicom.NewMap()
	if err := json.NewDecoder(r.Body).Decode(source); err != nil {
		slog.Error("Failed to decode metadata request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := dicom.NewMap()
	source.ExtractTags(result, dicom.LevelTags(level))

	render.JSON(w, r, result)
}

// DeduceLevelResponse reports the finest hierarchy level whose identifier
// is populated in a query.
type DeduceLevelResponse struct {
	Level      string `json:"level"`
	Identifier string `json:"identifier"`
}

// DeduceLevel resolves the retrieve level of a query that does not state
// one, walking from the instance level up to the patient level.
func (h *MetadataHandler) DeduceLevel(w http.ResponseWriter, r *http.Request) {
	query := dicom.NewMap()
	if err := json.NewDecoder(r.Body).Decode(query); err != nil {
		slog.Error("Failed to decode metadata request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	level, id, ok := dicom.FindLevelIdentifier(query)
	if !ok {
		http.Error(w, "no hierarchy identifier present in query", http.StatusBadRequest)
		return
	}

	render.JSON(w, r, DeduceLevelResponse{Level: level.String(), Identifier: id})
}
