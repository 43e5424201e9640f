package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"ironingangels/services"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	return strings.NewReplacer(" ", "-", "/", "-", "\\", "-", ":", "-", `"`, "").Replace(s)
}

type exportFormat struct {
	contentType string
	ext         string
	generate    func(services.ExportData) ([]byte, error)
}

var exportFormats = map[string]exportFormat{
	"pdf":  {"application/pdf", "pdf", services.GeneratePDF},
	"xlsx": {"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx", services.GenerateExcel},
}

// HandleEstimatorExport downloads the posted estimate as PDF or Excel,
// chosen by the {format} path value.
func HandleEstimatorExport(cat *services.Catalog, now func() time.Time) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		format, ok := exportFormats[e.Request.PathValue("format")]
		if !ok {
			return ErrorToast(e, http.StatusNotFound, "Unknown export format.")
		}

		est := estimatorFromRequest(e, cat)
		if !est.HasAnyItems() {
			return ErrorToast(e, http.StatusBadRequest, "Add at least one item to download an estimate.")
		}

		ts := now()
		data := services.BuildExportData(est, services.QuoteReference(ts), ts)
		out, err := format.generate(data)
		if err != nil {
			zap.L().Error("estimator_export: generate failed", zap.String("format", format.ext), zap.Error(err))
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate the estimate. Please try again.")
		}

		filename := fmt.Sprintf("Ironing_Estimate_%s.%s", sanitizeFilename(data.ReferenceNumber), format.ext)
		e.Response.Header().Set("Content-Type", format.contentType)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.WriteHeader(http.StatusOK)
		_, err = e.Response.Write(out)
		return err
	}
}
