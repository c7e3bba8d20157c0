// Package quote реализует HTTP-обработчик расчёта стоимости за выбранную
// длительность. Обработчик не имеет состояния: считает цену по скидочной
// сетке и возвращает её, ничего не записывая в журнал.
package quote

import (
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
)

// Handler обрабатывает запросы расчёта стоимости.
type Handler struct {
	log      *slog.Logger
	validate *validator.Validate
}

// New создает новый Handler с переданным логгером.
func New(log *slog.Logger) *Handler {
	return &Handler{
		log:      log,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Рассчитать стоимость
// @Description Считает итоговую стоимость за выбранную длительность с учётом скидки: 6-11 месяцев — 5%, 12 месяцев — 10%.
// @Tags Pricing
// @Accept  json
// @Produce  json
// @Param request body models.DummyQuote true "Параметры расчёта"
// @Success 200 {object} response.OKResponse "Расчёт стоимости"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Некорректная длительность или цена"
// @Router /quote [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.quote"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyQuote
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	result, err := pricing.Quote(req.BaseMonthlyFee, req.Months)
	if err != nil {
		log.Error("failed to quote", sl.Err(err))
		switch {
		case errors.Is(err, pricing.ErrInvalidDuration):
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("months must be between 1 and 12"))
		case errors.Is(err, pricing.ErrInvalidFee):
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("base monthly fee must not be negative"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not quote"))
		}
		return
	}

	render.JSON(w, r, response.OKWithData(result))
}
