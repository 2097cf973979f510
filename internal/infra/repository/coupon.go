package repository

import (
	"context"
	"time"

	"couponhub/internal/domain/coupon"
	"couponhub/internal/infra"
	"couponhub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const couponColumns = `id, offer, code, link, used, today, thumbs_up, thumbs_down, created_at, updated_at`

const (
	listCouponsSQL = `SELECT ` + couponColumns + ` FROM coupons ORDER BY seq`

	getCouponByIDSQL = `SELECT ` + couponColumns + ` FROM coupons WHERE id = $1`

	createCouponSQL = `INSERT INTO coupons (` + couponColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	updateCouponSQL = `UPDATE coupons SET offer = $2, code = $3, link = $4, updated_at = $5
		WHERE id = $1 RETURNING ` + couponColumns

	deleteCouponSQL = `DELETE FROM coupons WHERE id = $1`
)

// One statement per counter so the add happens inside the row lock.
var incrementCouponSQL = map[coupon.Counter]string{
	coupon.CounterClick:      `UPDATE coupons SET used = used + 1, today = today + 1 WHERE id = $1`,
	coupon.CounterThumbsUp:   `UPDATE coupons SET thumbs_up = thumbs_up + 1 WHERE id = $1`,
	coupon.CounterThumbsDown: `UPDATE coupons SET thumbs_down = thumbs_down + 1 WHERE id = $1`,
}

type CouponRepository struct {
	db DBTX
}

func NewCouponRepository(db DBTX) *CouponRepository {
	return &CouponRepository{
		db: db,
	}
}

func (r *CouponRepository) List(ctx context.Context) ([]*coupon.Coupon, error) {
	rows, err := r.db.Query(ctx, listCouponsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	result := make([]*coupon.Coupon, 0)
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coupon rows", err)
	}

	return result, nil
}

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	content := c.Content()
	_, err := r.db.Exec(ctx, createCouponSQL,
		pgconv.UUIDToPgtype(c.ID()),
		content.Offer(),
		content.Code(),
		content.Link(),
		c.Used(),
		c.Today(),
		c.ThumbsUp(),
		c.ThumbsDown(),
		pgconv.TimeToPgtype(c.CreatedAt()),
		pgconv.TimeToPgtype(c.UpdatedAt()),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("coupon id already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

func (r *CouponRepository) Update(ctx context.Context, id uuid.UUID, content coupon.Content, now time.Time) (*coupon.Coupon, error) {
	row := r.db.QueryRow(ctx, updateCouponSQL,
		pgconv.UUIDToPgtype(id),
		content.Offer(),
		content.Code(),
		content.Link(),
		pgconv.TimeToPgtype(now),
	)

	c, err := scanCoupon(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update coupon", err)
	}
	return c, nil
}

func (r *CouponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, deleteCouponSQL, pgconv.UUIDToPgtype(id)); err != nil {
		return infra.WrapRepoErr("failed to delete coupon", err)
	}
	return nil
}

func (r *CouponRepository) FindByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	c, err := scanCoupon(r.db.QueryRow(ctx, getCouponByIDSQL, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by ID", err)
	}
	return c, nil
}

func (r *CouponRepository) Increment(ctx context.Context, id uuid.UUID, counter coupon.Counter) error {
	query, ok := incrementCouponSQL[counter]
	if !ok {
		return infra.WrapRepoErr("unsupported counter "+counter.String(), coupon.ErrUnknownCounter)
	}

	// Zero rows affected means the coupon is gone; that is not an error.
	if _, err := r.db.Exec(ctx, query, pgconv.UUIDToPgtype(id)); err != nil {
		return infra.WrapRepoErr("failed to increment coupon "+counter.String(), err)
	}
	return nil
}

func scanCoupon(row pgx.Row) (*coupon.Coupon, error) {
	var (
		id                                pgtype.UUID
		offer, code, link                 string
		used, today, thumbsUp, thumbsDown int64
		createdAt, updatedAt              pgtype.Timestamptz
	)

	if err := row.Scan(&id, &offer, &code, &link, &used, &today, &thumbsUp, &thumbsDown, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return coupon.Reconstruct(
		pgconv.UUIDFromPgtype(id),
		coupon.NewContent(offer, code, link),
		used, today, thumbsUp, thumbsDown,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
