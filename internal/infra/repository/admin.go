package repository

import (
	"context"

	"couponhub/internal/domain/admin"
	"couponhub/internal/infra"
	"couponhub/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	findAdminByUsernameSQL = `SELECT id, username, password_hash FROM admins WHERE username = $1`

	upsertAdminSQL = `INSERT INTO admins (id, username, password_hash) VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash, updated_at = now()
		RETURNING id, username, password_hash`
)

type AdminRepository struct {
	db DBTX
}

func NewAdminRepository(db DBTX) *AdminRepository {
	return &AdminRepository{
		db: db,
	}
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username admin.Username) (*admin.Admin, error) {
	a, err := scanAdmin(r.db.QueryRow(ctx, findAdminByUsernameSQL, username.Value()))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("admin not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find admin by username", err)
	}
	return a, nil
}

func (r *AdminRepository) Upsert(ctx context.Context, a *admin.Admin) (*admin.Admin, error) {
	row := r.db.QueryRow(ctx, upsertAdminSQL,
		pgconv.UUIDToPgtype(a.ID()),
		a.Username().Value(),
		a.PasswordHash(),
	)

	saved, err := scanAdmin(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert admin", err)
	}
	return saved, nil
}

func scanAdmin(row pgx.Row) (*admin.Admin, error) {
	var (
		id           pgtype.UUID
		username     string
		passwordHash string
	)
	if err := row.Scan(&id, &username, &passwordHash); err != nil {
		return nil, err
	}

	name, err := admin.NewUsername(username)
	if err != nil {
		return nil, err
	}
	return admin.Reconstruct(pgconv.UUIDFromPgtype(id), name, passwordHash), nil
}
