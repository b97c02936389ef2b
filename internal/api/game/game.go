package game

import (
	"errors"
	"net/http"

	dto "elephant_backend/internal/api/dto/game"
	"elephant_backend/internal/converter"
	"elephant_backend/internal/engine"
	"elephant_backend/internal/service"
	gameserv "elephant_backend/internal/service/game"
	"elephant_backend/pkg/req"
	"elephant_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Start начинает новую игровую сессию и возвращает ставку первого раунда
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.StartRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	result, err := h.serv.Start(r.Context(), payload.Balance)
	if err != nil {
		writeGameError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStartResponse(*result))
}

// Result принимает результат раунда и возвращает следующий раунд
// либо итог сессии
func (h *Handler) Result(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ResultRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	result, err := h.serv.Result(r.Context(), converter.ToRoundOutcome(payload))
	if err != nil {
		writeGameError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTurnResponse(*result))
}

// Reset отбрасывает активную сессию
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.Reset(r.Context()); err != nil {
		writeGameError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// State - снимок активной сессии
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	state, err := h.serv.State(r.Context())
	if err != nil {
		writeGameError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*state))
}

// Deposit обновляет сохраненный баланс пользователя
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DepositRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.serv.Deposit(r.Context(), payload.Amount); err != nil {
		writeGameError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Estimate - прогноз компаундинга на настроенные горизонты
func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.EstimateRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	est, err := h.serv.Estimate(r.Context(), converter.ToEstimateRequest(payload))
	if err != nil {
		writeGameError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToEstimateResponse(*est))
}

// writeGameError переводит ошибки ядра в HTTP статусы
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrInvalidBalance):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, engine.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, gameserv.ErrNoActiveSession):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, gameserv.ErrInvalidEstimateRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
