// Handlers for the protein sequence endpoints

package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/donalddop/proteinlab/internal/metrics"
	"github.com/donalddop/proteinlab/pkg/model"
)

// textCleaner strips the spaces and newlines users paste along with a
// sequence. Any other whitespace is left in place for validation to reject.
var textCleaner = strings.NewReplacer(" ", "", "\n", "")

// UploadSequence stores the first record of an uploaded FASTA file.
// POST /sequences/upload, multipart field "file".
func (apictx *APIContext) UploadSequence(w http.ResponseWriter, r *http.Request) {

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, `upload must be multipart form data with a "file" field`)
		return
	}
	defer file.Close()

	name, sequence, err := model.FirstFastaRecord(file)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	record, err := apictx.Store.Create(r.Context(), name, strings.ToUpper(sequence))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	metrics.RecordStored(metrics.SourceUpload)
	writeJSON(w, http.StatusOK, record)
}

// AddSequenceText stores a sequence submitted as plain text.
// POST /sequences/text?name=...&sequence=...
func (apictx *APIContext) AddSequenceText(w http.ResponseWriter, r *http.Request) {

	query := r.URL.Query()
	if !query.Has("name") {
		writeError(w, http.StatusBadRequest, "missing required parameter: name")
		return
	}
	if !query.Has("sequence") {
		writeError(w, http.StatusBadRequest, "missing required parameter: sequence")
		return
	}

	sequence := textCleaner.Replace(strings.ToUpper(query.Get("sequence")))

	record, err := apictx.Store.Create(r.Context(), query.Get("name"), sequence)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	metrics.RecordStored(metrics.SourceText)
	writeJSON(w, http.StatusOK, record)
}

// ListSequences returns every stored record in insertion order.
// GET /sequences
func (apictx *APIContext) ListSequences(w http.ResponseWriter, r *http.Request) {

	records, err := apictx.Store.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// GetSequence returns a single record by id.
// GET /sequences/{id}
func (apictx *APIContext) GetSequence(w http.ResponseWriter, r *http.Request) {

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "sequence id must be an integer")
		return
	}

	record, err := apictx.Store.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// MutationResponse ties a mutation result back to the record it came from.
type MutationResponse struct {
	OriginalID     int                   `json:"original_id"`
	MutatedID      int                   `json:"mutated_id"`
	Mutation       string                `json:"mutation"`
	MutatedProtein model.ProteinSequence `json:"mutated_protein"`
}

// MutateSequence applies a single-residue substitution to a stored record
// and stores the result as a brand-new record; the original stays untouched.
// POST /sequences/{id}/mutate?position=...&new_aa=...
func (apictx *APIContext) MutateSequence(w http.ResponseWriter, r *http.Request) {

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "sequence id must be an integer")
		return
	}

	original, err := apictx.Store.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	query := r.URL.Query()
	if !query.Has("position") {
		writeError(w, http.StatusBadRequest, "missing required parameter: position")
		return
	}
	if !query.Has("new_aa") {
		writeError(w, http.StatusBadRequest, "missing required parameter: new_aa")
		return
	}

	position, err := strconv.Atoi(query.Get("position"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "position must be an integer")
		return
	}

	mutation, err := model.Mutate(original, position, query.Get("new_aa"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	mutated, err := apictx.Store.Create(r.Context(), mutation.Name, mutation.Sequence)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	metrics.RecordStored(metrics.SourceMutation)
	writeJSON(w, http.StatusOK, MutationResponse{
		OriginalID:     original.ID,
		MutatedID:      mutated.ID,
		Mutation:       mutation.Label,
		MutatedProtein: mutated,
	})
}

// AminoAcidTable lists the accepted amino-acid codes and their full names.
// GET /amino-acids
func (apictx *APIContext) AminoAcidTable(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.AminoAcids)
}
