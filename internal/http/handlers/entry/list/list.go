// Package list реализует HTTP-обработчик выдачи истории операций клиента
// постранично, с фильтром по действию и поиском по комментарию.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/avdeevmax/gym-ledger/internal/http/response"
	"github.com/avdeevmax/gym-ledger/internal/lib/paging"
	"github.com/avdeevmax/gym-ledger/internal/lib/sl"
	"github.com/avdeevmax/gym-ledger/internal/models"
)

// Параметры страницы по умолчанию.
const (
	DefaultPage     = 1
	DefaultPageSize = 50
)

// Service описывает интерфейс выборки истории клиента.
type Service interface {
	EntriesForMember(ctx context.Context, memberID string, f paging.Filter, page, pageSize int) (paging.Page[*models.LedgerEntry], error)
}

// Handler управляет HTTP-запросами на чтение истории операций.
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
// @Summary История операций клиента
// @Description Возвращает страницу записей журнала клиента. Фильтр по действию и поиск по комментарию применяются до нарезки на страницы, total отражает отфильтрованный набор.
// @Tags Ledger
// @Produce  json
// @Param memberID path string true "Идентификатор клиента"
// @Param page query int false "Номер страницы, с единицы" default(1)
// @Param page_size query int false "Размер страницы" default(50)
// @Param action query string false "Фильтр по действию: payment, extension, cancellation, refund или all"
// @Param search query string false "Подстрока для поиска по комментарию"
// @Success 200 {object} response.OKResponse "Страница записей журнала"
// @Failure 422 {object} response.ErrorResponse "Некорректные параметры страницы"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /members/{memberID}/entries [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.entry.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	memberID := chi.URLParam(r, "memberID")

	page, pageSize, err := pageParams(r)
	if err != nil {
		log.Error("invalid page params", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("page and page_size must be positive integers"))
		return
	}

	filter := paging.Filter{
		Status: r.URL.Query().Get("action"),
		Search: r.URL.Query().Get("search"),
	}

	result, err := h.service.EntriesForMember(r.Context(), memberID, filter, page, pageSize)
	if err != nil {
		log.Error("failed to list entries", sl.Err(err))
		if errors.Is(err, paging.ErrInvalidPage) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("page and page_size must be positive integers"))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list entries"))
		return
	}

	log.Info("listed member entries",
		slog.String("member_id", memberID),
		slog.Int("count", len(result.Data)),
		slog.Int("total", result.Total))
	render.JSON(w, r, response.OKWithData(result))
}

func pageParams(r *http.Request) (page, pageSize int, err error) {
	page, pageSize = DefaultPage, DefaultPageSize
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
	}
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		pageSize, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
	}
	return page, pageSize, nil
}
