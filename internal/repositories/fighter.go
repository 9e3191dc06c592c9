package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/temmu/temmu-api/internal/logger"
	"github.com/temmu/temmu-api/internal/models"
	"github.com/temmu/temmu-api/internal/uow"
)

// FighterRepository persists fighters.
//
// Writes are staged on the unit of work carried by the context and become
// visible only after SaveChanges. Reads join the active unit of work when there
// is one so that a request sees its own staged changes.
type FighterRepository struct {
	db *sqlx.DB
}

func NewFighterRepository(db *sqlx.DB) *FighterRepository {
	return &FighterRepository{db: db}
}

func (r *FighterRepository) reader(ctx context.Context) sqlx.ExtContext {
	if u := uow.FromContext(ctx); u.Active() {
		return u.Tx()
	}
	return r.db
}

func (r *FighterRepository) writer(ctx context.Context) (*uow.UnitOfWork, error) {
	u := uow.FromContext(ctx)
	if !u.Active() {
		return nil, uow.ErrNoUnitOfWork
	}
	return u, nil
}

// GetAll returns every fighter ordered by id.
func (r *FighterRepository) GetAll(ctx context.Context) ([]models.FighterDB, error) {
	const query = `
		SELECT id, name, style, health_base, attack_multiplier, defense_multiplier,
		       speed, matches_played, wins
		FROM fighters
		ORDER BY id
	`

	fighters := []models.FighterDB{}
	err := sqlx.SelectContext(ctx, r.reader(ctx), &fighters, query)

	logger.FromContext(ctx).Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{},
		"result", len(fighters),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return fighters, nil
}

// GetByID returns the fighter with the given id, or nil when it does not exist.
func (r *FighterRepository) GetByID(ctx context.Context, id int64) (*models.FighterDB, error) {
	const query = `
		SELECT id, name, style, health_base, attack_multiplier, defense_multiplier,
		       speed, matches_played, wins
		FROM fighters
		WHERE id = $1
	`

	var fighter models.FighterDB
	err := sqlx.GetContext(ctx, r.reader(ctx), &fighter, query, id)

	logger.FromContext(ctx).Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", fighter.ID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fighter, nil
}

// Add stages an insert and assigns the store-generated id to f.
func (r *FighterRepository) Add(ctx context.Context, f *models.FighterDB) error {
	const query = `
		INSERT INTO fighters (name, style, health_base, attack_multiplier, defense_multiplier,
		                      speed, matches_played, wins)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	u, err := r.writer(ctx)
	if err != nil {
		return err
	}

	args := []any{f.Name, f.Style, f.HealthBase, f.AttackMultiplier, f.DefenseMultiplier,
		f.Speed, f.MatchesPlayed, f.Wins}

	var id int64
	err = u.Tx().QueryRowxContext(ctx, query, args...).Scan(&id)

	logger.FromContext(ctx).Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	if err != nil {
		return err
	}
	f.ID = id
	u.Add(1)
	return nil
}

// Update stages an overwrite of every editable column of the fighter f.ID.
func (r *FighterRepository) Update(ctx context.Context, f *models.FighterDB) error {
	const query = `
		UPDATE fighters
		SET name = $2, style = $3, health_base = $4, attack_multiplier = $5,
		    defense_multiplier = $6, speed = $7, matches_played = $8, wins = $9
		WHERE id = $1
	`

	args := []any{f.ID, f.Name, f.Style, f.HealthBase, f.AttackMultiplier, f.DefenseMultiplier,
		f.Speed, f.MatchesPlayed, f.Wins}
	return r.exec(ctx, query, args...)
}

// Delete stages the removal of the fighter id.
func (r *FighterRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM fighters WHERE id = $1`
	return r.exec(ctx, query, id)
}

func (r *FighterRepository) exec(ctx context.Context, query string, args ...any) error {
	u, err := r.writer(ctx)
	if err != nil {
		return err
	}

	res, err := u.Tx().ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.FromContext(ctx).Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	u.Add(rowsAffected)
	return nil
}

// SaveChanges commits the staged writes. It reports false when no row was changed.
func (r *FighterRepository) SaveChanges(ctx context.Context) (bool, error) {
	u, err := r.writer(ctx)
	if err != nil {
		return false, err
	}

	n, err := u.Commit()

	logger.FromContext(ctx).Infow("unit of work committed",
		"rows_affected", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}
