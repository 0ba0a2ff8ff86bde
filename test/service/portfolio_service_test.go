package service_test

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/foliogen/foliogen/internal/extract"
	"github.com/foliogen/foliogen/internal/model"
	appErr "github.com/foliogen/foliogen/internal/pkg/errors"
	"github.com/foliogen/foliogen/internal/pkg/timeutil"
	"github.com/foliogen/foliogen/internal/repo"
	"github.com/foliogen/foliogen/internal/service"
	"github.com/foliogen/foliogen/test/testutil"
)

func randName() string {
	buf := make([]byte, 6)
	_, _ = rand.Read(buf)
	return "u" + hex.EncodeToString(buf)
}

func seedUser(t *testing.T, users *repo.UserRepo) *model.User {
	t.Helper()
	now := timeutil.NowUnix()
	user := &model.User{
		ID:           "user-" + randName(),
		Email:        randName() + "@example.com",
		PasswordHash: "hash",
		Ctime:        now,
		Mtime:        now,
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestPortfolioLifecycle(t *testing.T) {
	db, cleanup := testutil.OpenTestDB(t)
	defer cleanup()

	ctx := context.Background()
	users := repo.NewUserRepo(db)
	resumes := repo.NewResumeRepo(db)
	portfolios := service.NewPortfolioService(repo.NewPortfolioRepo(db), resumes, 16, time.Minute)
	user := seedUser(t, users)
	username := randName()

	// Seeded from the latest parsed resume.
	parsed := extract.NewParsedResume()
	parsed.Name = "Jane Doe"
	parsed.Skills = []string{"Golang", "PostgreSQL"}
	parsedJSON, err := json.Marshal(parsed)
	require.NoError(t, err)
	now := timeutil.NowUnix()
	require.NoError(t, resumes.Create(ctx, &model.Resume{
		ID:       "res-" + randName(),
		UserID:   user.ID,
		FileName: "cv.pdf",
		FileKey:  user.ID + "_cv.pdf",
		Parsed:   string(parsedJSON),
		State:    model.ResumeStateActive,
		Ctime:    now,
		Mtime:    now,
	}))

	p, err := portfolios.Create(ctx, user.ID, username)
	require.NoError(t, err)
	require.Equal(t, username, p.Username)
	require.Contains(t, p.Data, "Jane Doe")
	require.False(t, p.Published)

	// Unpublished portfolios are invisible on the public side.
	_, err = portfolios.PublicGet(ctx, username)
	require.ErrorIs(t, err, appErr.ErrNotFound)

	require.NoError(t, portfolios.SetPublished(ctx, user.ID, true))
	pub, err := portfolios.PublicGet(ctx, username)
	require.NoError(t, err)
	require.Equal(t, "Jane Doe", pub.Resume.Name)
	require.Equal(t, []string{"Golang", "PostgreSQL"}, pub.Resume.Skills)

	// Edits invalidate the public cache.
	edited := *parsed
	edited.Name = "Jane A. Doe"
	editedJSON, err := json.Marshal(&edited)
	require.NoError(t, err)
	require.NoError(t, portfolios.UpdateData(ctx, user.ID, editedJSON))

	pub, err = portfolios.PublicGet(ctx, username)
	require.NoError(t, err)
	require.Equal(t, "Jane A. Doe", pub.Resume.Name)

	require.NoError(t, portfolios.UpdateTemplate(ctx, user.ID, "minimal"))
	require.ErrorIs(t, portfolios.UpdateTemplate(ctx, user.ID, "nonexistent"), appErr.ErrInvalid)

	require.NoError(t, portfolios.SetPublished(ctx, user.ID, false))
	_, err = portfolios.PublicGet(ctx, username)
	require.ErrorIs(t, err, appErr.ErrNotFound)
}

func TestPortfolioCreateValidation(t *testing.T) {
	db, cleanup := testutil.OpenTestDB(t)
	defer cleanup()

	ctx := context.Background()
	users := repo.NewUserRepo(db)
	portfolios := service.NewPortfolioService(repo.NewPortfolioRepo(db), repo.NewResumeRepo(db), 16, time.Minute)
	user := seedUser(t, users)

	for _, bad := range []string{"", "ab", "Has Spaces", "UPPER", "-leading", "way-too-long-" + randName() + randName() + randName()} {
		_, err := portfolios.Create(ctx, user.ID, bad)
		require.ErrorIs(t, err, appErr.ErrInvalid, "username %q", bad)
	}

	username := randName()
	_, err := portfolios.Create(ctx, user.ID, username)
	require.NoError(t, err)

	// Username is globally unique.
	other := seedUser(t, users)
	_, err = portfolios.Create(ctx, other.ID, username)
	require.ErrorIs(t, err, appErr.ErrConflict)
}
