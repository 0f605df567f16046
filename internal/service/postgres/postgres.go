package postgres

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/daleydeng/sub2api-devdb/internal/config"
	"github.com/daleydeng/sub2api-devdb/internal/service"
	"github.com/daleydeng/sub2api-devdb/internal/util"
)

const (
	// markerFile signals that initdb has completed for the data directory
	markerFile = "PG_VERSION"
	// pidFile is written by the postmaster inside the data directory
	pidFile = "postmaster.pid"
	// logFile receives server output under pg_ctl
	logFile = "postgres.log"
	// pwFileName is the transient credential file consumed by initdb
	pwFileName = ".pgpass_init"

	// stopGrace is how long to wait for the OS to reap the postmaster
	// after the forced-kill fallback
	stopGrace = 1 * time.Second
)

// Service controls the lifecycle of the development PostgreSQL instance.
// All durable state (data directory, pid file, logs) belongs to PostgreSQL
// itself; the controller only observes it and re-derives state on each call.
type Service struct {
	cfg config.PostgresConfig
}

// New creates a PostgreSQL service controller.
func New(cfg config.PostgresConfig) *Service {
	return &Service{cfg: cfg}
}

// Initialized reports whether the data directory has completed initdb,
// keyed on the PG_VERSION marker file.
func (s *Service) Initialized() bool {
	return util.FileExists(filepath.Join(s.cfg.DataDir, markerFile))
}

// Init runs initdb against the configured data directory. Calling it on an
// already-initialized directory is a no-op. The administrative password is
// materialized into a transient credential file that is removed on every
// return path.
func (s *Service) Init() error {
	if s.Initialized() {
		util.Log("PostgreSQL data directory already initialized, skipping")
		return nil
	}

	util.Log("Initializing PostgreSQL data directory...")

	parent := filepath.Dir(s.cfg.DataDir)
	if err := util.MkdirAll(parent); err != nil {
		return err
	}

	pwfile := filepath.Join(parent, pwFileName)
	if err := os.WriteFile(pwfile, []byte(s.cfg.Password), 0600); err != nil {
		return fmt.Errorf("failed to write password file: %w", err)
	}
	defer os.Remove(pwfile)

	err := service.Run("initdb",
		"-D", s.cfg.DataDir,
		"-U", s.cfg.User,
		"--pwfile", pwfile,
		"--auth", "md5")
	if err != nil {
		return fmt.Errorf("initdb failed: %w", err)
	}

	util.Success("PostgreSQL initialized at %s", s.cfg.DataDir)
	return nil
}

// Start launches the postmaster via pg_ctl. The data directory must have
// been initialized first. Reachability is not polled here; use Check.
func (s *Service) Start() error {
	if !s.Initialized() {
		return fmt.Errorf("data directory %s is not initialized (run 'devdb pg init' first)", s.cfg.DataDir)
	}

	util.Log("Starting PostgreSQL...")

	opts := fmt.Sprintf("-p %d", s.cfg.Port)
	logPath := filepath.Join(s.cfg.DataDir, logFile)
	err := service.Run("pg_ctl", "start",
		"-D", s.cfg.DataDir,
		"-o", opts,
		"-l", logPath)
	if err != nil {
		return fmt.Errorf("PostgreSQL failed to start: %w", err)
	}

	util.Success("PostgreSQL started on %s:%d", s.cfg.Host, s.cfg.Port)
	return nil
}

// Stop shuts the postmaster down. A missing pid file means the server is
// already stopped, which is a no-op success. If the graceful fast-mode stop
// fails (e.g. the server is wedged in single-user recovery), a KILL is
// routed through pg_ctl using the previously-read pid, followed by a short
// grace period for the OS to reap the process. Stop never fails solely
// because the graceful path did.
func (s *Service) Stop() error {
	pid, ok := service.ReadPidFile(filepath.Join(s.cfg.DataDir, pidFile))
	if !ok {
		util.Warn("PostgreSQL not running, skipping")
		return nil
	}

	util.Log("Stopping PostgreSQL...")

	err := service.Run("pg_ctl", "stop", "-D", s.cfg.DataDir, "-m", "fast")
	if err != nil {
		var notFound *service.ToolNotFoundError
		if errors.As(err, &notFound) {
			return err
		}

		util.Warn("pg_ctl stop failed, sending KILL to pid %d...", pid)
		if killErr := service.Run("pg_ctl", "kill", "KILL", strconv.Itoa(pid)); killErr != nil {
			util.Warn("pg_ctl kill failed: %v", killErr)
		}
		time.Sleep(stopGrace)
	}

	util.Success("PostgreSQL stopped")
	return nil
}

// Describe returns a status-table row for the service, derived from the
// liveness probe and the pid file.
func (s *Service) Describe() util.StatusTableRow {
	endpoint := fmt.Sprintf("%s:%d/%s", s.cfg.Host, s.cfg.Port, s.cfg.Database)
	row := util.StatusTableRow{Name: "postgres"}

	if err := s.Probe(); err != nil {
		row.Status = "stopped"
		row.Detail = fmt.Sprintf("%s  (%v)", endpoint, err)
		if pid, ok := service.ReadPidFile(filepath.Join(s.cfg.DataDir, pidFile)); ok {
			if service.ProcessRunning(pid) {
				row.Detail += fmt.Sprintf("  [pid %d alive but unreachable]", pid)
			} else {
				row.Detail += fmt.Sprintf("  [stale pid file: %d]", pid)
			}
		}
		return row
	}

	row.Status = "running"
	row.Detail = endpoint
	row.Ok = true
	return row
}

// Status prints the current running/stopped state. Never an error.
func (s *Service) Status() {
	util.StatusTable([]util.StatusTableRow{s.Describe()})
}

// Check probes the server and errors when it is unreachable, for scripting
// against the exit code.
func (s *Service) Check() error {
	if err := s.Probe(); err != nil {
		return fmt.Errorf("PostgreSQL %s:%d is not reachable: %w", s.cfg.Host, s.cfg.Port, err)
	}
	util.Success("PostgreSQL %s:%d/%s is running", s.cfg.Host, s.cfg.Port, s.cfg.Database)
	return nil
}
