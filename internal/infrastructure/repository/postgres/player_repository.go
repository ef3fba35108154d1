package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sportarena/api/internal/domain/player"
)

const (
	selectPlayers = `SELECT id, name, partner, age, sport_ids, skill_rating, base_price, preference,
		team_id, sold_price, created_at FROM players ORDER BY created_at, id`
	selectPlayerByID = `SELECT id, name, partner, age, sport_ids, skill_rating, base_price, preference,
		team_id, sold_price, created_at FROM players WHERE id = $1`
	insertPlayer = `INSERT INTO players (id, name, partner, age, sport_ids, skill_rating, base_price,
		preference, team_id, sold_price, created_at)
		VALUES (:id, :name, :partner, :age, :sport_ids, :skill_rating, :base_price,
		:preference, :team_id, :sold_price, :created_at)`
	// team_id and sold_price are written only by the settlement transaction.
	updatePlayer = `UPDATE players SET name = :name, partner = :partner, age = :age,
		sport_ids = :sport_ids, skill_rating = :skill_rating, base_price = :base_price,
		preference = :preference WHERE id = :id`
	deletePlayer = `DELETE FROM players WHERE id = $1`
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, selectPlayers); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, selectPlayerByID, playerID); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) error {
	if _, err := r.db.NamedExecContext(ctx, insertPlayer, playerToTableModel(item)); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	result, err := r.db.NamedExecContext(ctx, updatePlayer, playerToTableModel(item))
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("update player: no row for id %s", item.ID)
	}

	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) error {
	if _, err := r.db.ExecContext(ctx, deletePlayer, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	return nil
}
