package group_time_entries

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/internal/infra/export"
	groupTimeEntries "github.com/m04kA/SMC-CoworkingService/internal/usecase/group_time_entries"
)

const (
	msgInvalidParams = "некорректные параметры: from и to в формате YYYY-MM-DD, employeeId число"
	msgInvalidPeriod = "некорректный период табеля"
)

type Handler struct {
	useCase  GroupTimeEntriesUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GroupTimeEntriesUseCase, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}

	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/time-entries/grouped
// Query params: from, to (required, YYYY-MM-DD), employeeId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToUseCaseRequest(r, h.location)
	if err != nil {
		h.logger.Warn("GET /time-entries/grouped - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET /time-entries/grouped", err)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /time-entries/grouped - Timesheet built: from=%s, to=%s, days=%d",
		response.From, response.To, len(response.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}

// HandleExport GET /api/time-entries/export
// Те же параметры, ответ - xlsx файл
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	req, err := ToUseCaseRequest(r, h.location)
	if err != nil {
		h.logger.Warn("GET /time-entries/export - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	data, err := h.useCase.Export(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET /time-entries/export", err)
		return
	}

	filename := fmt.Sprintf("timesheet_%s_%s.xlsx", req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	h.logger.Info("GET /time-entries/export - Timesheet exported: file=%s, bytes=%d", filename, len(data))
	handlers.RespondFile(w, export.ContentType, filename, data)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, groupTimeEntries.ErrInvalidInput) {
		h.logger.Warn("%s - Invalid period: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	h.logger.Error("%s - Failed to group time entries: %v", op, err)
	handlers.RespondInternalError(w)
}
