package export_bookings

import (
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/export
// Отдает CSV со всеми бронированиями для ручного бэкапа
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.ExportCSV(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings/export - Failed to export bookings: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	filename := fmt.Sprintf("reservas_%s.csv", time.Now().Format("2006-01-02"))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		h.logger.Error("GET /bookings/export - Failed to write response: error=%v", err)
		return
	}

	h.logger.Info("GET /bookings/export - Bookings exported successfully: bytes=%d", len(data))
}
