package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"github.com/foliogen/foliogen/internal/model"
	"github.com/foliogen/foliogen/internal/pkg/dbutil"
	appErr "github.com/foliogen/foliogen/internal/pkg/errors"
)

var resumeFields = []string{"id", "user_id", "file_name", "file_key", "parsed", "state", "ctime", "mtime"}

type ResumeRepo struct {
	db *sql.DB
}

func NewResumeRepo(db *sql.DB) *ResumeRepo {
	return &ResumeRepo{db: db}
}

func (r *ResumeRepo) Create(ctx context.Context, resume *model.Resume) error {
	data := map[string]interface{}{
		"id":        resume.ID,
		"user_id":   resume.UserID,
		"file_name": resume.FileName,
		"file_key":  resume.FileKey,
		"parsed":    resume.Parsed,
		"state":     resume.State,
		"ctime":     resume.Ctime,
		"mtime":     resume.Mtime,
	}
	sqlStr, args, err := builder.BuildInsert("resumes", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *ResumeRepo) GetByID(ctx context.Context, userID, id string) (*model.Resume, error) {
	return r.getOne(ctx, map[string]interface{}{"id": id, "user_id": userID})
}

func (r *ResumeRepo) GetLatestByUser(ctx context.Context, userID string) (*model.Resume, error) {
	return r.getOne(ctx, map[string]interface{}{
		"user_id":  userID,
		"state":    model.ResumeStateActive,
		"_orderby": "ctime desc",
		"_limit":   []uint{0, 1},
	})
}

func (r *ResumeRepo) ListByUser(ctx context.Context, userID string, offset, limit uint) ([]*model.Resume, error) {
	where := map[string]interface{}{
		"user_id":  userID,
		"_orderby": "ctime desc",
		"_limit":   []uint{offset, limit},
	}
	sqlStr, args, err := builder.BuildSelect("resumes", where, resumeFields)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var items []*model.Resume
	for rows.Next() {
		item, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// MarkSuperseded retires every other active resume of the user; the newest
// upload is the single source for portfolio generation.
func (r *ResumeRepo) MarkSuperseded(ctx context.Context, userID, keepID string, mtime int64) error {
	where := map[string]interface{}{
		"user_id": userID,
		"id !=":   keepID,
		"state":   model.ResumeStateActive,
	}
	update := map[string]interface{}{
		"state": model.ResumeStateSuperseded,
		"mtime": mtime,
	}
	sqlStr, args, err := builder.BuildUpdate("resumes", where, update)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

// ListStale returns superseded resumes last touched before the cutoff.
func (r *ResumeRepo) ListStale(ctx context.Context, cutoff int64, limit uint) ([]*model.Resume, error) {
	where := map[string]interface{}{
		"state":    model.ResumeStateSuperseded,
		"mtime <":  cutoff,
		"_orderby": "mtime asc",
		"_limit":   []uint{0, limit},
	}
	sqlStr, args, err := builder.BuildSelect("resumes", where, resumeFields)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var items []*model.Resume
	for rows.Next() {
		item, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *ResumeRepo) Delete(ctx context.Context, id string) error {
	sqlStr, args, err := builder.BuildDelete("resumes", map[string]interface{}{"id": id})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *ResumeRepo) getOne(ctx context.Context, where map[string]interface{}) (*model.Resume, error) {
	sqlStr, args, err := builder.BuildSelect("resumes", where, resumeFields)
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
	return scanResume(rows)
}

func scanResume(rows *sql.Rows) (*model.Resume, error) {
	var item model.Resume
	if err := rows.Scan(&item.ID, &item.UserID, &item.FileName, &item.FileKey,
		&item.Parsed, &item.State, &item.Ctime, &item.Mtime); err != nil {
		return nil, err
	}
	return &item, nil
}
