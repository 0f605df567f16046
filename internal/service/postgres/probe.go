package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/daleydeng/sub2api-devdb/internal/config"
)

const (
	// maintenanceDB is the database targeted by the liveness probe. The
	// application database may not exist until the installer has run, so
	// probing it would produce false negatives.
	maintenanceDB = "postgres"

	probeTimeout = 3 * time.Second
)

// probeDSN builds the keyword/value connection string for the liveness probe.
func probeDSN(cfg config.PostgresConfig) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable connect_timeout=%d",
		quoteDSNValue(cfg.Host), cfg.Port, quoteDSNValue(cfg.User),
		quoteDSNValue(cfg.Password), maintenanceDB,
		int(probeTimeout.Seconds()))
}

// quoteDSNValue single-quotes a keyword/value DSN value, escaping embedded
// quotes and backslashes. Empty values must be quoted to stay syntactically
// valid.
func quoteDSNValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// Probe attempts a bounded network handshake against the server. Success
// means the server is running and accepting connections.
func (s *Service) Probe() error {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	conn, err := pgx.Connect(ctx, probeDSN(s.cfg))
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	return conn.Ping(ctx)
}
