package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/nupl21/dieta-app/internal/sheet"
	"go.uber.org/zap"
)

// ImportWorksheetHandler godoc
// @Summary Import a worksheet via CSV
// @Description Rows are stored as uploaded; malformed cells are handled when the worksheet is read
// @Tags worksheets
// @Accept multipart/form-data
// @Produce json
// @Param name path string true "Worksheet (productos|menu|lista|recetas)"
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (replace|append)"
// @Success 200 {object} ImportResult
// @Failure 400 {string} string "Invalid file"
// @Failure 404 {string} string "Unknown worksheet"
// @Failure 502 {string} string "Store failure"
// @Router /worksheets/{name}/import [post]
// @Security BearerAuth
func ImportWorksheetHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !sheet.Known(name) {
		http.Error(w, "unknown worksheet", http.StatusNotFound)
		return
	}

	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "append" {
		mode = "replace" // default
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, err := sheet.ReadCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows := records
	if mode == "append" {
		existing, err := sheetRepo.Read(r.Context(), name)
		if err != nil {
			storeError(w, err, "could not read worksheet")
			return
		}
		rows = append(existing, records...)
	}

	if err := sheetRepo.Update(r.Context(), name, rows); err != nil {
		storeError(w, err, "could not save worksheet")
		return
	}

	logger.Info("worksheet imported",
		zap.String("worksheet", name),
		zap.String("mode", mode),
		zap.Int("imported", len(records)),
	)
	respond(w, http.StatusOK, ImportResult{Worksheet: name, Imported: len(records), Total: len(rows)})
}

// ExportWorksheetHandler godoc
// @Summary Export a worksheet as CSV
// @Tags worksheets
// @Produce text/csv
// @Param name path string true "Worksheet (productos|menu|lista|recetas)"
// @Success 200 {string} string "CSV file"
// @Failure 404 {string} string "Unknown worksheet"
// @Failure 502 {string} string "Store failure"
// @Router /worksheets/{name}/export [get]
func ExportWorksheetHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !sheet.Known(name) {
		http.Error(w, "unknown worksheet", http.StatusNotFound)
		return
	}

	rows, err := sheetRepo.Read(r.Context(), name)
	if err != nil {
		storeError(w, err, "could not read worksheet")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`.csv"`)
	if err := sheet.WriteCSV(w, sheet.Columns[name], rows); err != nil {
		logger.Warn("failed to write CSV", zap.String("worksheet", name), zap.Error(err))
	}
}
