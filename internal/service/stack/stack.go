// Package stack composes the postgres and redis controllers for the
// combined up/down/reset operations.
package stack

import (
	"os"

	"github.com/daleydeng/sub2api-devdb/internal/config"
	"github.com/daleydeng/sub2api-devdb/internal/service/postgres"
	"github.com/daleydeng/sub2api-devdb/internal/service/redis"
	"github.com/daleydeng/sub2api-devdb/internal/util"
)

// Stack drives both backing services as a unit.
type Stack struct {
	cfg config.Config
	pg  *postgres.Service
	rd  *redis.Service
}

// New creates a stack over both service controllers.
func New(cfg config.Config) *Stack {
	return &Stack{
		cfg: cfg,
		pg:  postgres.New(cfg.Postgres),
		rd:  redis.New(cfg.Redis),
	}
}

// Up starts PostgreSQL, then Redis. The first failure propagates; there is
// no rollback of a partially-started pair.
func (s *Stack) Up() error {
	if err := s.pg.Start(); err != nil {
		return err
	}
	return s.rd.Start()
}

// Down stops PostgreSQL, then Redis. Both stops are idempotent, so Down is
// safe to call regardless of current state.
func (s *Stack) Down() error {
	if err := s.pg.Stop(); err != nil {
		return err
	}
	return s.rd.Stop()
}

// Reset stops both services, wipes their data directories, and drives both
// back to running from a clean slate. Deletion failures are swallowed: the
// subsequent init/start calls surface any real problem.
func (s *Stack) Reset() error {
	if err := s.Down(); err != nil {
		return err
	}

	util.Log("Cleaning data...")
	os.RemoveAll(s.cfg.Postgres.DataDir)
	os.RemoveAll(s.cfg.Redis.Dir)

	if err := s.pg.Init(); err != nil {
		return err
	}
	if err := s.pg.Start(); err != nil {
		return err
	}
	if err := s.rd.Start(); err != nil {
		return err
	}

	util.Success("Reset complete")
	return nil
}

// Describe returns status-table rows for both services.
func (s *Stack) Describe() []util.StatusTableRow {
	return []util.StatusTableRow{
		s.pg.Describe(),
		s.rd.Describe(),
	}
}
