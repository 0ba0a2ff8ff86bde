package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/foliogen/foliogen/internal/extract"
	"github.com/foliogen/foliogen/internal/filestore"
	"github.com/foliogen/foliogen/internal/model"
	"github.com/foliogen/foliogen/internal/pdfio"
	appErr "github.com/foliogen/foliogen/internal/pkg/errors"
	"github.com/foliogen/foliogen/internal/pkg/timeutil"
	"github.com/foliogen/foliogen/internal/repo"
)

type ResumeService struct {
	resumes *repo.ResumeRepo
	store   filestore.Store
	maxSize int64
}

func NewResumeService(resumes *repo.ResumeRepo, store filestore.Store, maxSize int64) *ResumeService {
	return &ResumeService{resumes: resumes, store: store, maxSize: maxSize}
}

// memFile adapts an in-memory buffer to the store's seekable reader.
type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

// Upload validates and parses one resume PDF, persists both the source file
// and the extraction result, and retires the user's previous uploads.
// Parsing never fails the upload on heuristic grounds; only an unreadable
// file does.
func (s *ResumeService) Upload(ctx context.Context, userID, fileName string, r io.Reader, size int64) (*model.Resume, *extract.ParsedResume, error) {
	if size <= 0 {
		return nil, nil, appErr.ErrInvalidFile
	}
	if s.maxSize > 0 && size > s.maxSize {
		return nil, nil, appErr.ErrFileTooLarge
	}
	if strings.ToLower(filepath.Ext(fileName)) != ".pdf" {
		return nil, nil, appErr.ErrInvalidFile
	}

	data, err := io.ReadAll(io.LimitReader(r, size))
	if err != nil {
		return nil, nil, err
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return nil, nil, appErr.ErrInvalidFile
	}

	pages, err := pdfio.Decode(ctx, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, nil, err
	}

	parsed := extract.Parse(ctx, pages)
	parsedJSON, err := json.Marshal(parsed)
	if err != nil {
		return nil, nil, err
	}

	key := userID + "_" + newFileToken() + ".pdf"
	if err := s.store.Save(ctx, key, memFile{bytes.NewReader(data)}, int64(len(data))); err != nil {
		return nil, nil, err
	}

	now := timeutil.NowUnix()
	resume := &model.Resume{
		ID:       newID(),
		UserID:   userID,
		FileName: fileName,
		FileKey:  key,
		Parsed:   string(parsedJSON),
		State:    model.ResumeStateActive,
		Ctime:    now,
		Mtime:    now,
	}
	if err := s.resumes.Create(ctx, resume); err != nil {
		return nil, nil, err
	}
	if err := s.resumes.MarkSuperseded(ctx, userID, resume.ID, now); err != nil {
		logutil.GetLogger(ctx).Warn("supersede previous resumes failed",
			zap.String("user_id", userID), zap.Error(err))
	}
	logutil.GetLogger(ctx).Info("resume uploaded",
		zap.String("user_id", userID),
		zap.String("resume_id", resume.ID),
		zap.Int("size", len(data)))
	return resume, parsed, nil
}

func (s *ResumeService) Latest(ctx context.Context, userID string) (*model.Resume, *extract.ParsedResume, error) {
	resume, err := s.resumes.GetLatestByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	parsed, err := decodeParsed(resume.Parsed)
	if err != nil {
		return nil, nil, err
	}
	return resume, parsed, nil
}

func (s *ResumeService) List(ctx context.Context, userID string, offset, limit uint) ([]*model.Resume, error) {
	if limit == 0 || limit > 100 {
		limit = 20
	}
	return s.resumes.ListByUser(ctx, userID, offset, limit)
}

func (s *ResumeService) Get(ctx context.Context, userID, id string) (*model.Resume, *extract.ParsedResume, error) {
	resume, err := s.resumes.GetByID(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}
	parsed, err := decodeParsed(resume.Parsed)
	if err != nil {
		return nil, nil, err
	}
	return resume, parsed, nil
}

func decodeParsed(raw string) (*extract.ParsedResume, error) {
	parsed := extract.NewParsedResume()
	if raw == "" {
		return parsed, nil
	}
	if err := json.Unmarshal([]byte(raw), parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}
