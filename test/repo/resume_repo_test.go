package repo_test

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foliogen/foliogen/internal/model"
	appErr "github.com/foliogen/foliogen/internal/pkg/errors"
	"github.com/foliogen/foliogen/internal/pkg/timeutil"
	"github.com/foliogen/foliogen/internal/repo"
	"github.com/foliogen/foliogen/test/testutil"
)

func randID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func createTestUser(t *testing.T, users *repo.UserRepo) *model.User {
	t.Helper()
	now := timeutil.NowUnix()
	user := &model.User{
		ID:           "user-" + randID(),
		Email:        randID() + "@example.com",
		PasswordHash: "hash",
		Ctime:        now,
		Mtime:        now,
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestUserRepoConflictOnDuplicateEmail(t *testing.T) {
	db, cleanup := testutil.OpenTestDB(t)
	defer cleanup()

	users := repo.NewUserRepo(db)
	user := createTestUser(t, users)

	dup := &model.User{
		ID:           "user-" + randID(),
		Email:        user.Email,
		PasswordHash: "hash",
		Ctime:        user.Ctime,
		Mtime:        user.Mtime,
	}
	require.ErrorIs(t, users.Create(context.Background(), dup), appErr.ErrConflict)

	fetched, err := users.GetByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	require.Equal(t, user.ID, fetched.ID)
}

func TestResumeRepoSupersedeFlow(t *testing.T) {
	db, cleanup := testutil.OpenTestDB(t)
	defer cleanup()

	users := repo.NewUserRepo(db)
	resumes := repo.NewResumeRepo(db)
	ctx := context.Background()
	user := createTestUser(t, users)

	first := &model.Resume{
		ID:       "res-" + randID(),
		UserID:   user.ID,
		FileName: "old.pdf",
		FileKey:  user.ID + "_old.pdf",
		Parsed:   `{"name":"Jane"}`,
		State:    model.ResumeStateActive,
		Ctime:    timeutil.NowUnix() - 10,
		Mtime:    timeutil.NowUnix() - 10,
	}
	require.NoError(t, resumes.Create(ctx, first))

	second := &model.Resume{
		ID:       "res-" + randID(),
		UserID:   user.ID,
		FileName: "new.pdf",
		FileKey:  user.ID + "_new.pdf",
		Parsed:   `{"name":"Jane Doe"}`,
		State:    model.ResumeStateActive,
		Ctime:    timeutil.NowUnix(),
		Mtime:    timeutil.NowUnix(),
	}
	require.NoError(t, resumes.Create(ctx, second))
	require.NoError(t, resumes.MarkSuperseded(ctx, user.ID, second.ID, timeutil.NowUnix()))

	latest, err := resumes.GetLatestByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, second.ID, latest.ID)

	fetched, err := resumes.GetByID(ctx, user.ID, first.ID)
	require.NoError(t, err)
	require.Equal(t, model.ResumeStateSuperseded, fetched.State)

	_, err = resumes.GetByID(ctx, "other-user", first.ID)
	require.ErrorIs(t, err, appErr.ErrNotFound)

	items, err := resumes.ListByUser(ctx, user.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, second.ID, items[0].ID)
}

func TestResumeRepoStaleCleanup(t *testing.T) {
	db, cleanup := testutil.OpenTestDB(t)
	defer cleanup()

	users := repo.NewUserRepo(db)
	resumes := repo.NewResumeRepo(db)
	ctx := context.Background()
	user := createTestUser(t, users)

	stale := &model.Resume{
		ID:       "res-" + randID(),
		UserID:   user.ID,
		FileName: "stale.pdf",
		FileKey:  user.ID + "_stale.pdf",
		Parsed:   `{}`,
		State:    model.ResumeStateSuperseded,
		Ctime:    timeutil.NowUnix() - 7200,
		Mtime:    timeutil.NowUnix() - 7200,
	}
	require.NoError(t, resumes.Create(ctx, stale))

	found, err := resumes.ListStale(ctx, timeutil.NowUnix()-3600, 100)
	require.NoError(t, err)
	ids := make(map[string]struct{})
	for _, item := range found {
		ids[item.ID] = struct{}{}
	}
	require.Contains(t, ids, stale.ID)

	require.NoError(t, resumes.Delete(ctx, stale.ID))
	_, err = resumes.GetByID(ctx, user.ID, stale.ID)
	require.ErrorIs(t, err, appErr.ErrNotFound)
}
