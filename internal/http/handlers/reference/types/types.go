// Package types реализует HTTP-обработчик выдачи справочника типов
// абонементов. Данные идут через кеш сервиса справочников, поэтому
// повторные открытия формы не нагружают хранилище.
package types

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/avdeevmax/gym-ledger/internal/http/response"
	"github.com/avdeevmax/gym-ledger/internal/lib/sl"
	"github.com/avdeevmax/gym-ledger/internal/models"
)

// Service описывает интерфейс чтения справочных данных.
type Service interface {
	MembershipTypes(ctx context.Context) ([]*models.MembershipType, error)
}

// Handler управляет HTTP-запросами на чтение типов абонементов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Типы абонементов
// @Description Возвращает справочник типов абонементов с базовой месячной ценой. Ответ кешируется на стороне сервиса.
// @Tags Reference
// @Produce  json
// @Success 200 {object} response.OKResponse "Список типов абонементов"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /membership-types [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reference.types"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	types, err := h.service.MembershipTypes(r.Context())
	if err != nil {
		log.Error("failed to list membership types", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list membership types"))
		return
	}

	log.Info("listed membership types", slog.Int("count", len(types)))
	render.JSON(w, r, response.OKWithData(types))
}
