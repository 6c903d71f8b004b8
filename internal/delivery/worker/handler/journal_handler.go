package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pos/internal/delivery/api/response"
	"pos/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// JournalHandlerParams holds dependencies for the JournalHandler
type JournalHandlerParams struct {
	fx.In

	Logger    *slog.Logger
	JournalUC usecase.JournalUsecase
}

// JournalHandler exposes the settlement journal
type JournalHandler struct {
	logger    *slog.Logger
	journalUC usecase.JournalUsecase
}

// NewJournalHandler creates a new settlement journal handler
func NewJournalHandler(params JournalHandlerParams) *JournalHandler {
	return &JournalHandler{
		logger:    params.Logger,
		journalUC: params.JournalUC,
	}
}

// ListSettlements returns journal entries; since is an RFC3339 timestamp and defaults to today's start
func (h *JournalHandler) ListSettlements(c echo.Context) error {
	now := time.Now()
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if raw := c.QueryParam("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_SINCE", "since must be an RFC3339 timestamp")
		}
		since = parsed
	}

	records, err := h.journalUC.ListSettlements(c.Request().Context(), since)
	if err != nil {
		h.logger.Error("[Worker] Failed to list settlements", slog.Any("error", err))

		return response.InternalServerError(c, "JOURNAL_UNAVAILABLE", "failed to list settlements")
	}

	return response.Success(c, http.StatusOK, records)
}
