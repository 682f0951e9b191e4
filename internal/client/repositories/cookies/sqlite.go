package cookies

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
)

var _ Repository = (*SQLiteRepository)(nil)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, c Cookie) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cookies (host, path, name, value, host_only, expires, secure, http_only, same_site)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(host, path, name) DO UPDATE SET
			value = excluded.value,
			host_only = excluded.host_only,
			expires = excluded.expires,
			secure = excluded.secure,
			http_only = excluded.http_only,
			same_site = excluded.same_site
	`, c.Host, c.Path, c.Name, c.Value, c.HostOnly, unixOrZero(c.Expires), c.Secure, c.HTTPOnly, c.SameSite)
	if err != nil {
		return fmt.Errorf("failed to upsert cookie[%s%s %s]: %w", c.Host, c.Path, c.Name, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, host, path, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cookies WHERE host = ? AND path = ? AND name = ?`, host, path, name)
	if err != nil {
		return fmt.Errorf("failed to delete cookie[%s%s %s]: %w", host, path, name, err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]Cookie, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT host, path, name, value, host_only, expires, secure, http_only, same_site
		FROM cookies ORDER BY host, path, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cookies: %w", err)
	}
	defer rows.Close()

	var result []Cookie
	for rows.Next() {
		var (
			c       Cookie
			expires int64
		)
		if err := rows.Scan(&c.Host, &c.Path, &c.Name, &c.Value, &c.HostOnly, &expires, &c.Secure, &c.HTTPOnly, &c.SameSite); err != nil {
			return nil, fmt.Errorf("failed to scan cookie row: %w", err)
		}
		if expires != 0 {
			c.Expires = time.Unix(expires, 0)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cookie rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) DeleteExpired(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cookies WHERE expires != 0 AND expires <= ?`, now.Unix())
	if err != nil {
		return fmt.Errorf("failed to delete expired cookies: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cookies`)
	if err != nil {
		return fmt.Errorf("failed to clear cookies: %w", err)
	}
	return nil
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
