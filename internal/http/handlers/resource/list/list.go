// Package list реализует HTTP-обработчик выдачи ресурсов зала (шкафчики,
// абонементы) постранично, с фильтром по статусу и поиском по номеру.
// Статус каждого ресурса пересчитан на момент запроса: истёкший период
// виден сразу, без фоновой записи в хранилище.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

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

// Service описывает интерфейс выборки ресурсов.
type Service interface {
	ListResources(ctx context.Context, f paging.Filter, page, pageSize int) (paging.Page[*models.Resource], error)
}

// Handler управляет HTTP-запросами на чтение списка ресурсов.
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
// @Summary Список ресурсов
// @Description Возвращает страницу ресурсов с актуальным статусом. Фильтр по статусу (available, occupied, expired, all) и поиск по номеру применяются до нарезки на страницы.
// @Tags Resources
// @Produce  json
// @Param page query int false "Номер страницы, с единицы" default(1)
// @Param page_size query int false "Размер страницы" default(50)
// @Param status query string false "Фильтр по статусу: available, occupied, expired или all"
// @Param search query string false "Подстрока для поиска по номеру ресурса"
// @Success 200 {object} response.OKResponse "Страница ресурсов"
// @Failure 422 {object} response.ErrorResponse "Некорректные параметры страницы"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /resources [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.resource.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	page, pageSize, err := pageParams(r)
	if err != nil {
		log.Error("invalid page params", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("page and page_size must be positive integers"))
		return
	}

	filter := paging.Filter{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
	}

	result, err := h.service.ListResources(r.Context(), filter, page, pageSize)
	if err != nil {
		log.Error("failed to list resources", sl.Err(err))
		if errors.Is(err, paging.ErrInvalidPage) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("page and page_size must be positive integers"))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list resources"))
		return
	}

	log.Info("listed resources",
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
