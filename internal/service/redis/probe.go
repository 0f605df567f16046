package redis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const probeTimeout = 3 * time.Second

// client builds a single-connection client for a probe or control command.
// Retries are disabled: operations are expected to be re-invoked externally
// on failure rather than looped internally.
func (s *Service) client() *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:         fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Password:     s.cfg.Password,
		DialTimeout:  probeTimeout,
		ReadTimeout:  probeTimeout,
		WriteTimeout: probeTimeout,
		PoolSize:     1,
		MaxRetries:   -1,
	})
}

// Probe connects and issues a PING with a bounded timeout. Both connection
// and command failures map to "not reachable".
func (s *Service) Probe() error {
	client := s.client()
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	return client.Ping(ctx).Err()
}

// shutdownNoSave issues SHUTDOWN NOSAVE to the running instance. A
// successful shutdown closes the connection without a reply, which the
// client surfaces as an I/O error; that is normalized to success here.
func (s *Service) shutdownNoSave() error {
	client := s.client()
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	err := client.ShutdownNoSave(ctx).Err()
	if err == nil || connClosed(err) {
		return nil
	}
	return err
}

// connClosed reports whether err looks like the server dropping the
// connection, the expected outcome of a successful SHUTDOWN.
func connClosed(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EPIPE) {
		return true
	}
	return strings.Contains(err.Error(), "connection reset")
}
