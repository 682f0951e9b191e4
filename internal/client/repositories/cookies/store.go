package cookies

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/dbx"
)

// Store is the transactional face of the cookie table used by the jar.
type Store struct {
	db      *sql.DB
	newRepo func(dbx.DBTX) Repository
	now     func() time.Time
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:      db,
		newRepo: func(q dbx.DBTX) Repository { return NewSQLiteRepository(q) },
		now:     time.Now,
	}
}

// Load drops expired cookies and returns the rest.
func (s *Store) Load(ctx context.Context) ([]Cookie, error) {
	var out []Cookie
	err := dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.newRepo(tx)
		if err := repo.DeleteExpired(ctx, s.now()); err != nil {
			return err
		}
		var err error
		out, err = repo.List(ctx)
		return err
	})
	return out, err
}

// Apply stores set and removes drop in one transaction.
func (s *Store) Apply(ctx context.Context, set []Cookie, drop []Cookie) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.newRepo(tx)
		for _, c := range set {
			if err := repo.Upsert(ctx, c); err != nil {
				return err
			}
		}
		for _, c := range drop {
			if err := repo.Delete(ctx, c.Host, c.Path, c.Name); err != nil {
				return err
			}
		}
		return nil
	})
}

// Clear removes every stored cookie.
func (s *Store) Clear(ctx context.Context) error {
	return s.newRepo(s.db).Clear(ctx)
}
