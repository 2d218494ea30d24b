package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mkalinina/nutritrack/internal/client/models"
	"github.com/mkalinina/nutritrack/internal/common"
	"github.com/mkalinina/nutritrack/internal/dbx"
	"github.com/mkalinina/nutritrack/internal/logging"
)

const (
	keyToken   = "token"
	keyFlow    = "flow"
	keyProfile = "profile"
)

type SQLiteRepository struct {
	db  *sql.DB
	log logging.Logger
}

func NewSQLiteRepository(db *sql.DB, log logging.Logger) *SQLiteRepository {
	return &SQLiteRepository{db: db, log: log}
}

func (r *SQLiteRepository) get(ctx context.Context, q dbx.DBTX, key string) (string, bool, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, true, nil
}

func (r *SQLiteRepository) set(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

// Load reads the persisted session. A token without a profile (a crash
// between writes of an older build) or a profile that fails to parse is
// treated as no session at all; the caller never sees an error for it.
func (r *SQLiteRepository) Load(ctx context.Context) (*Persisted, error) {
	token, ok, err := r.get(ctx, r.db, keyToken)
	if err != nil {
		return nil, err
	}
	if !ok || token == "" {
		return nil, nil
	}

	rawProfile, ok, err := r.get(ctx, r.db, keyProfile)
	if err != nil {
		return nil, err
	}
	if !ok {
		r.log.Warn(ctx, "persisted token has no profile, discarding session")
		return nil, nil
	}

	var profile models.Profile
	if err := json.Unmarshal([]byte(rawProfile), &profile); err != nil {
		r.log.Warn(ctx, "discarding session", "error", fmt.Errorf("%w: %v", common.ErrStorageCorrupt, err))
		return nil, nil
	}

	flow, _, err := r.get(ctx, r.db, keyFlow)
	if err != nil {
		return nil, err
	}

	return &Persisted{Token: token, Flow: models.Flow(flow), Profile: &profile}, nil
}

// Save writes token, flow and profile in a single transaction so a restart
// can never observe the token without its profile.
func (r *SQLiteRepository) Save(ctx context.Context, p *Persisted) error {
	raw, err := json.Marshal(p.Profile)
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := r.set(ctx, tx, keyToken, p.Token); err != nil {
			return err
		}
		if err := r.set(ctx, tx, keyFlow, string(p.Flow)); err != nil {
			return err
		}
		return r.set(ctx, tx, keyProfile, string(raw))
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
