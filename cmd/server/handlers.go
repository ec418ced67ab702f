package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"liftquote/internal/export"
	"liftquote/internal/quote"
	"liftquote/internal/scheme"
)

func (s *server) handleDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, quote.DefaultInput())
}

func (s *server) handleControlCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cat.Control(r.URL.Query().Get("model")))
}

func (s *server) handleTractionCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cat.Traction(r.URL.Query().Get("ratio")))
}

func (s *server) handleMiscCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cat.Misc())
}

type resolveRequest struct {
	Choices scheme.Choices       `json:"choices"`
	Input   quote.QuotationInput `json:"input"`
}

type resolveResponse struct {
	Input   quote.QuotationInput `json:"input"`
	Changed bool                 `json:"changed"`
}

func (s *server) handleResolveScheme(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, changed := scheme.Resolve(req.Choices, req.Input)
	writeJSON(w, http.StatusOK, resolveResponse{Input: updated, Changed: changed})
}

func (s *server) handleQuote(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeInput(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, s.engine.Calculate(input))
}

func (s *server) handleExportExcel(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeInput(w, r)
	if !ok {
		return
	}

	data := export.Build(input, s.engine.Calculate(input))
	contents, err := export.GenerateExcel(data)
	if err != nil {
		http.Error(w, "failed to generate workbook", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="quotation.xlsx"`)
	_, _ = w.Write(contents)
}

func (s *server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeInput(w, r)
	if !ok {
		return
	}

	data := export.Build(input, s.engine.Calculate(input))
	contents, err := export.GeneratePDF(data)
	if err != nil {
		http.Error(w, "failed to generate document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="quotation.pdf"`)
	_, _ = w.Write(contents)
}

// decodeInput parses the request body and rejects scheme codes outside
// the canonical seven before they reach the engine.
func decodeInput(w http.ResponseWriter, r *http.Request) (quote.QuotationInput, bool) {
	var input quote.QuotationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return quote.QuotationInput{}, false
	}
	if !input.Scheme.Valid() {
		http.Error(w, fmt.Sprintf("unknown scheme code %q", input.Scheme), http.StatusBadRequest)
		return quote.QuotationInput{}, false
	}
	return input, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already written; nothing sensible left to do.
		return
	}
}
