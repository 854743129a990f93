package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	authdomain "github.com/birqadam/volunteer-backend/internal/auth/domain"
)

// rowQuerier is satisfied by *pgxpool.Pool and pgx.Tx.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repo struct {
	db rowQuerier
}

func NewRepo(db rowQuerier) *Repo {
	return &Repo{db: db}
}

// GetOrganizer reads the account flags for uid.
func (r *Repo) GetOrganizer(ctx context.Context, uid string) (authdomain.Organizer, error) {
	if uid == "" {
		return authdomain.Organizer{}, fmt.Errorf("uid required")
	}

	const q = `
select id, uid, coalesce(email, ''), display_name, is_organizer, is_approved
from users
where uid = $1;
`
	var o authdomain.Organizer
	err := r.db.QueryRow(ctx, q, uid).
		Scan(&o.ID, &o.UID, &o.Email, &o.DisplayName, &o.IsOrganizer, &o.IsApproved)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return authdomain.Organizer{}, authdomain.ErrUserNotFound
		}
		return authdomain.Organizer{}, err
	}
	return o, nil
}
