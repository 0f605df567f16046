package redis

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/daleydeng/sub2api-devdb/internal/config"
	"github.com/daleydeng/sub2api-devdb/internal/service"
	"github.com/daleydeng/sub2api-devdb/internal/util"
)

const (
	logFile = "redis.log"
	pidFile = "redis.pid"
)

// Service controls the lifecycle of the development Redis instance. Redis
// needs no initialization phase: the first Start creates its working
// directory. Once started the server daemonizes, so no process handle is
// retained; every operation re-probes state over the network.
type Service struct {
	cfg config.RedisConfig
}

// New creates a Redis service controller.
func New(cfg config.RedisConfig) *Service {
	return &Service{cfg: cfg}
}

// Start launches redis-server in daemonize mode with an explicit port, log
// file, pid file, and working directory. The launcher's console output is
// captured and surfaced on failure since the daemonized server reports
// startup problems there.
func (s *Service) Start() error {
	util.Log("Starting Redis...")

	if err := util.MkdirAll(s.cfg.Dir); err != nil {
		return err
	}

	dir, err := canonicalDir(s.cfg.Dir)
	if err != nil {
		return err
	}

	stdout, stderr, err := service.RunCaptured("redis-server",
		"--port", strconv.Itoa(s.cfg.Port),
		"--daemonize", "yes",
		"--logfile", filepath.Join(dir, logFile),
		"--pidfile", filepath.Join(dir, pidFile),
		"--dir", dir)
	if err != nil {
		if stderr != "" {
			util.Warn("redis-server stderr: %s", stderr)
		}
		if stdout != "" {
			util.Warn("redis-server stdout: %s", stdout)
		}
		return fmt.Errorf("Redis failed to start: %w", err)
	}

	util.Success("Redis started on %s:%d", s.cfg.Host, s.cfg.Port)
	return nil
}

// canonicalDir resolves the working directory to an absolute, symlink-free
// path. redis-server's argument parser rejects the Windows long-path prefix,
// so strip it.
func canonicalDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve redis dir %s: %w", dir, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	return strings.TrimPrefix(abs, `\\?\`), nil
}

// Stop shuts the server down without persisting a snapshot. An unreachable
// server is treated as already stopped; Stop never fails because the server
// was not running.
func (s *Service) Stop() error {
	if err := s.Probe(); err != nil {
		util.Warn("Redis not running, skipping")
		return nil
	}

	util.Log("Stopping Redis...")
	if err := s.shutdownNoSave(); err != nil {
		util.Warn("redis shutdown returned: %v", err)
	}
	util.Success("Redis stopped")
	return nil
}

// Describe returns a status-table row for the service.
func (s *Service) Describe() util.StatusTableRow {
	endpoint := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	row := util.StatusTableRow{Name: "redis"}

	if err := s.Probe(); err != nil {
		row.Status = "stopped"
		row.Detail = fmt.Sprintf("%s  (%v)", endpoint, err)
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
		return fmt.Errorf("Redis %s:%d is not reachable: %w", s.cfg.Host, s.cfg.Port, err)
	}
	util.Success("Redis %s:%d is running", s.cfg.Host, s.cfg.Port)
	return nil
}
