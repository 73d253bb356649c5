package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/famhub/choreboard/internal/domain"
)

// memberColumns is the shared list of columns for member queries.
var memberColumns = []string{"name", "points", "avatar"}

// MemberRepository handles database operations for the member point ledger.
type MemberRepository struct {
	pool *pgxpool.Pool
}

// NewMemberRepository creates a new MemberRepository.
func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

// List retrieves all members ordered by name.
func (r *MemberRepository) List(ctx context.Context) ([]*domain.Member, error) {
	query, args, err := psql.
		Select(memberColumns...).
		From("members").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build List query for members: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, classifyStorageErr("query members", err)
	}
	defer rows.Close()

	var members []*domain.Member
	for rows.Next() {
		var member domain.Member
		if err := rows.Scan(&member.Name, &member.Points, &member.Avatar); err != nil {
			return nil, classifyStorageErr("scan member", err)
		}
		members = append(members, &member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return members, nil
}

// GetByName retrieves a member by name.
func (r *MemberRepository) GetByName(ctx context.Context, name string) (*domain.Member, error) {
	query, args, err := psql.
		Select(memberColumns...).
		From("members").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByName query for member %s: %w", name, err)
	}

	var member domain.Member
	err = r.pool.QueryRow(ctx, query, args...).Scan(&member.Name, &member.Points, &member.Avatar)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("member %s: %w", name, domain.ErrMemberNotFound)
		}
		return nil, classifyStorageErr("query member", err)
	}

	return &member, nil
}

// CreditPoints adds delta to the named member's balance within a transaction.
// An unknown member surfaces ErrMemberNotFound; the completion coordinator
// treats that as a skipped ledger entry rather than a failure.
func (r *MemberRepository) CreditPoints(ctx context.Context, tx pgx.Tx, name string, delta int) error {
	query, args, err := psql.
		Update("members").
		Set("points", sq.Expr("points + ?", delta)).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build CreditPoints query for member %s: %w", name, err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return classifyStorageErr(fmt.Sprintf("credit member %s", name), err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("member %s: %w", name, domain.ErrMemberNotFound)
	}

	return nil
}
