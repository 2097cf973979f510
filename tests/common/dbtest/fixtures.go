//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"couponhub/internal/infra/db"
	"couponhub/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const resetTimeout = 10 * time.Second

// inserts an admin row directly, bypassing the repository under test
func CreateTestAdmin(t *testing.T, conn DBLike, username, plainPassword string) uuid.UUID {
	t.Helper()

	hash, err := password.HashPassword(plainPassword)
	require.NoError(t, err)

	adminID := uuid.New()
	ctx := context.Background()
	err = conn.QueryRow(ctx,
		`INSERT INTO admins (id, username, password_hash) VALUES ($1, $2, $3)
		 ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
		 RETURNING id`,
		adminID, username, hash).Scan(&adminID)
	require.NoError(t, err)

	return adminID
}

type CouponRow struct {
	Offer, Code, Link                 string
	Used, Today, ThumbsUp, ThumbsDown int64
	CreatedAt                         time.Time
}

func CreateTestCoupon(t *testing.T, conn DBLike, row CouponRow) uuid.UUID {
	t.Helper()

	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	couponID := uuid.New()
	_, err := conn.Exec(context.Background(),
		`INSERT INTO coupons (id, offer, code, link, used, today, thumbs_up, thumbs_down, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`,
		couponID, row.Offer, row.Code, row.Link, row.Used, row.Today, row.ThumbsUp, row.ThumbsDown, row.CreatedAt)
	require.NoError(t, err)

	return couponID
}

// empties every application table; the schema itself is kept
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), resetTimeout)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE coupons, admins")
	return err
}

func ResetMongo(database *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), resetTimeout)
	defer cancel()

	for _, name := range []string{db.CouponsCollection, db.AdminsCollection, db.CountersCollection} {
		if _, err := database.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return err
		}
	}
	return nil
}
