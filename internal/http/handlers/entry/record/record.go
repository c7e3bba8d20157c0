// Package record реализует HTTP-обработчик проведения операции по журналу:
// оплаты, продления, отмены или возврата.
//
// Handler принимает JSON-запрос с данными операции, валидирует их,
// вызывает бизнес-логику журнала и возвращает созданную запись.
package record

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/avdeevmax/gym-ledger/internal/http/response"
	"github.com/avdeevmax/gym-ledger/internal/lib/pricing"
	"github.com/avdeevmax/gym-ledger/internal/lib/sl"
	"github.com/avdeevmax/gym-ledger/internal/models"
	ledgerservice "github.com/avdeevmax/gym-ledger/internal/services/ledger"
)

// Service описывает интерфейс бизнес-логики проведения операции.
type Service interface {
	Record(ctx context.Context, req models.DummyLedgerEntry) (*models.LedgerEntry, error)
}

// Handler управляет HTTP-запросами на проведение операций.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Провести операцию
// @Description Добавляет запись журнала (оплата, продление, отмена, возврат) и применяет новое состояние ресурса. Журнал только пополняется, исправления оформляются новыми записями.
// @Tags Ledger
// @Accept  json
// @Produce  json
// @Param request body models.DummyLedgerEntry true "Данные операции"
// @Success 200 {object} response.OKResponse "Созданная запись журнала"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Ресурс не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /entries [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.entry.record"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyLedgerEntry
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	entry, err := h.service.Record(r.Context(), req)
	if err != nil {
		log.Error("failed to record entry", sl.Err(err))
		switch {
		case errors.Is(err, ledgerservice.ErrResourceNotFound):
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("resource not found"))
		case errors.Is(err, ledgerservice.ErrInvalidAmount):
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("amount must be positive"))
		case errors.Is(err, ledgerservice.ErrInvalidDate):
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("start date must be in format 2006-01-02"))
		case errors.Is(err, pricing.ErrInvalidDuration):
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("months must be between 1 and 12"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not record entry"))
		}
		return
	}

	log.Info("recorded ledger entry", slog.String("id", entry.ID))
	render.JSON(w, r, response.OKWithData(entry))
}
