package converter

import (
	"time"

	dto "elephant_backend/internal/api/dto/game"
	"elephant_backend/internal/model"
)

func ToStartResponse(res model.StartResult) dto.StartResponse {
	return dto.StartResponse{
		Round:       res.Round,
		Stake:       res.Stake,
		BaseBalance: res.BaseBalance,
	}
}

func ToRoundOutcome(req dto.ResultRequest) model.RoundOutcome {
	return model.RoundOutcome(req.Outcome)
}

func ToTurnResponse(res model.TurnResult) dto.TurnResponse {
	var out dto.TurnResponse
	if res.Advance != nil {
		out.Advance = &dto.RoundAdvance{
			NextRound: res.Advance.NextRound,
			NextStake: res.Advance.NextStake,
		}
	}
	if res.Summary != nil {
		out.Summary = &dto.SessionSummary{
			RoundsPlayed:      res.Summary.RoundsPlayed,
			Wins:              res.Summary.Wins,
			Losses:            res.Summary.Losses,
			TotalStaked:       res.Summary.TotalStaked,
			NetProfit:         res.Summary.NetProfit,
			NetProfitAfterTax: res.Summary.NetProfitAfterTax,
			UpdatedBalance:    res.Summary.UpdatedBalance,
			Remark:            res.Summary.Remark,
		}
	}
	return out
}

func ToStateResponse(state model.GameState) dto.StateResponse {
	return dto.StateResponse{
		BaseBalance: state.BaseBalance,
		Round:       state.Round,
		Case:        state.Case,
		TotalStaked: state.TotalStaked,
		NetProfit:   state.NetProfit,
		Wins:        state.Wins,
		Losses:      state.Losses,
		Sequence:    state.Sequence,
		Terminal:    state.Terminal,
	}
}

func ToEstimateRequest(req dto.EstimateRequest) model.EstimateRequest {
	return model.EstimateRequest{
		Balance:        req.Balance,
		Days:           req.Days,
		SessionsPerDay: req.SessionsPerDay,
		Strategy:       model.EstimateStrategy(req.Strategy),
	}
}

func ToEstimateResponse(est model.Estimate) dto.EstimateResponse {
	history := make([]dto.EstimateDay, len(est.History))
	for i, d := range est.History {
		history[i] = dto.EstimateDay{
			Day:            d.Day,
			StartBalance:   d.StartBalance,
			SessionProfits: d.SessionProfits,
			EndBalance:     d.EndBalance,
		}
	}
	return dto.EstimateResponse{
		FinalBalance: est.FinalBalance,
		History:      history,
	}
}

func ToSummaryRecords(records []model.SummaryRecord) []dto.SummaryRecord {
	out := make([]dto.SummaryRecord, len(records))
	for i, r := range records {
		out[i] = dto.SummaryRecord{
			ID:             r.ID,
			UserID:         r.UserID,
			BaseBalance:    r.BaseBalance,
			RoundsPlayed:   r.RoundsPlayed,
			Wins:           r.Wins,
			Losses:         r.Losses,
			TotalStaked:    r.TotalStaked,
			NetProfit:      r.NetProfit,
			UpdatedBalance: r.UpdatedBalance,
			Remark:         r.Remark,
			CreatedAt:      r.CreatedAt.Format(time.RFC3339),
		}
	}
	return out
}
