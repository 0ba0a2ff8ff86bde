package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/foliogen/foliogen/internal/model"
	"github.com/foliogen/foliogen/internal/pkg/dbutil"
	appErr "github.com/foliogen/foliogen/internal/pkg/errors"
)

var portfolioFields = []string{"id", "user_id", "username", "template", "data", "published", "ctime", "mtime"}

type PortfolioRepo struct {
	db *sql.DB
}

func NewPortfolioRepo(db *sql.DB) *PortfolioRepo {
	return &PortfolioRepo{db: db}
}

func (r *PortfolioRepo) Create(ctx context.Context, p *model.Portfolio) error {
	data := map[string]interface{}{
		"id":        p.ID,
		"user_id":   p.UserID,
		"username":  p.Username,
		"template":  p.Template,
		"data":      p.Data,
		"published": p.Published,
		"ctime":     p.Ctime,
		"mtime":     p.Mtime,
	}
	sqlStr, args, err := builder.BuildInsert("portfolios", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		if dbutil.IsConflict(err) {
			return appErr.ErrConflict
		}
		return err
	}
	return nil
}

func (r *PortfolioRepo) GetByUserID(ctx context.Context, userID string) (*model.Portfolio, error) {
	return r.getOne(ctx, map[string]interface{}{"user_id": userID})
}

func (r *PortfolioRepo) GetByUsername(ctx context.Context, username string) (*model.Portfolio, error) {
	return r.getOne(ctx, map[string]interface{}{"username": username})
}

func (r *PortfolioRepo) Update(ctx context.Context, userID string, update map[string]interface{}) error {
	where := map[string]interface{}{"user_id": userID}
	sqlStr, args, err := builder.BuildUpdate("portfolios", where, update)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		if dbutil.IsConflict(err) {
			return appErr.ErrConflict
		}
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

func (r *PortfolioRepo) getOne(ctx context.Context, where map[string]interface{}) (*model.Portfolio, error) {
	sqlStr, args, err := builder.BuildSelect("portfolios", where, portfolioFields)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		return nil, appErr.ErrNotFound
	}
	var p model.Portfolio
	if err := rows.Scan(&p.ID, &p.UserID, &p.Username, &p.Template, &p.Data,
		&p.Published, &p.Ctime, &p.Mtime); err != nil {
		return nil, err
	}
	return &p, nil
}
