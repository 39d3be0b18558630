// Package session owns the current authenticated user: a single in-memory
// slot persisted write-through to the local store. It is the one source of
// truth for "who is logged in".
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/healthdash/internal/client/models"
	"github.com/dmitrijs2005/healthdash/internal/client/repositories/localstore"
	"github.com/dmitrijs2005/healthdash/internal/common"
	"github.com/dmitrijs2005/healthdash/internal/dbx"
	"github.com/dmitrijs2005/healthdash/internal/logging"
)

// Manager holds the current session. The in-memory slot is only ever read or
// replaced wholesale, never partially mutated, so reads are always consistent.
// Storage failures degrade to "no session" and are never surfaced to callers
// of the read-side operations.
type Manager struct {
	db  *sql.DB
	log logging.Logger

	mu      sync.RWMutex
	current *models.AuthUser
}

// NewManager constructs a session Manager over the given local database.
func NewManager(db *sql.DB, log logging.Logger) *Manager {
	return &Manager{db: db, log: log.With("component", "session")}
}

func (m *Manager) repo() localstore.Repository {
	return localstore.NewSQLiteRepository(m.db)
}

// Current returns the authenticated user, or nil when nobody is logged in.
// On first access it lazily loads the user from the local store; a malformed
// stored record is purged and treated as absent.
func (m *Manager) Current(ctx context.Context) *models.AuthUser {
	m.mu.RLock()
	if m.current != nil {
		u := m.current
		m.mu.RUnlock()
		return u
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != nil {
		return m.current
	}

	raw, err := m.repo().Get(ctx, common.AuthUserKey)
	if err != nil {
		m.log.Warn(ctx, "failed to read stored session", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	var u models.AuthUser
	if err := json.Unmarshal(raw, &u); err != nil {
		m.log.Warn(ctx, "purging malformed stored session", "error", err)
		if err := m.repo().Delete(ctx, common.AuthUserKey); err != nil {
			m.log.Warn(ctx, "failed to purge stored session", "error", err)
		}
		return nil
	}

	m.current = &u
	return m.current
}

// SetCurrent replaces the session wholesale and writes it through to the
// local store. The in-memory slot is updated even if the durable write
// fails; the returned error is informational for the caller.
func (m *Manager) SetCurrent(ctx context.Context, u *models.AuthUser) error {
	m.mu.Lock()
	m.current = u
	m.mu.Unlock()

	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := m.repo().Set(ctx, common.AuthUserKey, raw); err != nil {
		m.log.Warn(ctx, "failed to persist session", "error", err)
		return err
	}
	return nil
}

// Clear drops the in-memory session and deletes every session-related key,
// unconditionally. It never fails visibly: storage errors are logged and
// swallowed, and calling Clear with no prior session is a no-op.
func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	err := dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := localstore.NewSQLiteRepository(tx)
		for _, key := range []string{common.AuthUserKey, common.AccessTokenKey, common.RefreshTokenKey} {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		m.log.Warn(ctx, "failed to clear stored session", "error", err)
	}
}

// IsAuthenticated reports whether a current user exists.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	return m.Current(ctx) != nil
}

// AuthHeaders returns the headers attached to every backend request:
// Content-Type unconditionally, plus the bearer Authorization header if and
// only if a current user with a non-empty token exists. It never fails.
func (m *Manager) AuthHeaders(ctx context.Context) map[string]string {
	headers := map[string]string{"Content-Type": "application/json"}
	if u := m.Current(ctx); u != nil && u.AccessToken != "" {
		headers["Authorization"] = "Bearer " + u.AccessToken
	}
	return headers
}
