package summary_repo

import (
	"context"

	"elephant_backend/internal/model"
	"elephant_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table             = "session_summaries"
	colID             = "id"
	colUserID         = "user_id"
	colBaseBalance    = "base_balance"
	colRoundsPlayed   = "rounds_played"
	colWins           = "wins"
	colLosses         = "losses"
	colTotalStaked    = "total_staked"
	colNetProfit      = "net_profit"
	colUpdatedBalance = "updated_balance"
	colRemark         = "remark"
	colCreatedAt      = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSummaryRepository(dbc *pgxpool.Pool) repository.SummaryRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateSummary - сохраняет итог завершенной сессии.
// Возвращает ID созданной записи
func (r *repo) CreateSummary(ctx context.Context, rec *model.SummaryRecord) (int, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUserID, colBaseBalance, colRoundsPlayed, colWins, colLosses,
			colTotalStaked, colNetProfit, colUpdatedBalance, colRemark).
		Values(rec.UserID, rec.BaseBalance, rec.RoundsPlayed, rec.Wins, rec.Losses,
			rec.TotalStaked, rec.NetProfit, rec.UpdatedBalance, rec.Remark).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// ListRecent - последние итоги сессий, новые первыми
func (r *repo) ListRecent(ctx context.Context, limit int) ([]model.SummaryRecord, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colBaseBalance, colRoundsPlayed, colWins, colLosses,
		colTotalStaked, colNetProfit, colUpdatedBalance, colRemark, colCreatedAt).
		From(table).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.SummaryRecord
	for rows.Next() {
		var rec model.SummaryRecord
		err = rows.Scan(&rec.ID, &rec.UserID, &rec.BaseBalance, &rec.RoundsPlayed,
			&rec.Wins, &rec.Losses, &rec.TotalStaked, &rec.NetProfit,
			&rec.UpdatedBalance, &rec.Remark, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
