package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sportarena/api/internal/domain/team"
)

const (
	selectTeams = `SELECT id, name, owner, contact, budget, spent, player_ids, active, created_at
		FROM teams ORDER BY created_at, id`
	selectTeamByID = `SELECT id, name, owner, contact, budget, spent, player_ids, active, created_at
		FROM teams WHERE id = $1`
	insertTeam = `INSERT INTO teams (id, name, owner, contact, budget, spent, player_ids, active, created_at)
		VALUES (:id, :name, :owner, :contact, :budget, :spent, :player_ids, :active, :created_at)`
	// spent and player_ids are written only by the settlement transaction;
	// a CRUD update carrying a stale snapshot must not touch them.
	updateTeam = `UPDATE teams SET name = :name, owner = :owner, contact = :contact, budget = :budget,
		active = :active WHERE id = :id`
	deleteTeam = `DELETE FROM teams WHERE id = $1`
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, selectTeams); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, selectTeamByID, teamID); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team by id: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	if _, err := r.db.NamedExecContext(ctx, insertTeam, teamToTableModel(item)); err != nil {
		return fmt.Errorf("insert team: %w", err)
	}

	return nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	result, err := r.db.NamedExecContext(ctx, updateTeam, teamToTableModel(item))
	if err != nil {
		return fmt.Errorf("update team: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("update team: no row for id %s", item.ID)
	}

	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	if _, err := r.db.ExecContext(ctx, deleteTeam, teamID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	return nil
}
