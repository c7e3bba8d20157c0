// Package staff реализует HTTP-обработчик выдачи справочника сотрудников.
package staff

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

// Service описывает интерфейс чтения списка сотрудников.
type Service interface {
	Staff(ctx context.Context) ([]*models.StaffMember, error)
}

// Handler управляет HTTP-запросами на чтение списка сотрудников.
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
// @Summary Список сотрудников
// @Description Возвращает справочник сотрудников зала. Ответ кешируется на стороне сервиса.
// @Tags Reference
// @Produce  json
// @Success 200 {object} response.OKResponse "Список сотрудников"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /staff [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reference.staff"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	staff, err := h.service.Staff(r.Context())
	if err != nil {
		log.Error("failed to list staff", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list staff"))
		return
	}

	log.Info("listed staff", slog.Int("count", len(staff)))
	render.JSON(w, r, response.OKWithData(staff))
}
