package service

import (
	"context"
	"encoding/json"
	"regexp"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/foliogen/foliogen/internal/extract"
	"github.com/foliogen/foliogen/internal/model"
	appErr "github.com/foliogen/foliogen/internal/pkg/errors"
	"github.com/foliogen/foliogen/internal/pkg/timeutil"
	"github.com/foliogen/foliogen/internal/repo"
)

var usernameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{2,29}$`)

var knownTemplates = map[string]struct{}{
	"default": {},
	"minimal": {},
	"dark":    {},
}

type PortfolioService struct {
	portfolios *repo.PortfolioRepo
	resumes    *repo.ResumeRepo
	cache      *expirable.LRU[string, *PublicPortfolio]
}

// PublicPortfolio is the read-only payload served on the public page.
type PublicPortfolio struct {
	Username    string               `json:"username"`
	Template    string               `json:"template"`
	Resume      extract.ParsedResume `json:"resume"`
	SummaryHTML string               `json:"summary_html"`
}

func NewPortfolioService(portfolios *repo.PortfolioRepo, resumes *repo.ResumeRepo, cacheSize int, cacheTTL time.Duration) *PortfolioService {
	return &PortfolioService{
		portfolios: portfolios,
		resumes:    resumes,
		cache:      expirable.NewLRU[string, *PublicPortfolio](cacheSize, nil, cacheTTL),
	}
}

// Create claims a username and seeds the portfolio from the user's latest
// parsed resume, or from an empty record when nothing was uploaded yet.
func (s *PortfolioService) Create(ctx context.Context, userID, username string) (*model.Portfolio, error) {
	if !usernameRe.MatchString(username) {
		return nil, appErr.ErrInvalid
	}
	seed := extract.NewParsedResume()
	if resume, err := s.resumes.GetLatestByUser(ctx, userID); err == nil {
		if parsed, err := decodeParsed(resume.Parsed); err == nil {
			seed = parsed
		}
	}
	data, err := json.Marshal(seed)
	if err != nil {
		return nil, err
	}
	now := timeutil.NowUnix()
	p := &model.Portfolio{
		ID:       newID(),
		UserID:   userID,
		Username: username,
		Template: "default",
		Data:     string(data),
		Ctime:    now,
		Mtime:    now,
	}
	if err := s.portfolios.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PortfolioService) Get(ctx context.Context, userID string) (*model.Portfolio, error) {
	return s.portfolios.GetByUserID(ctx, userID)
}

// UpdateData replaces the editable portfolio content. The payload must stay
// a valid ParsedResume shape so the public renderer never sees free-form
// JSON.
func (s *PortfolioService) UpdateData(ctx context.Context, userID string, raw json.RawMessage) error {
	var content extract.ParsedResume
	if err := json.Unmarshal(raw, &content); err != nil {
		return appErr.ErrInvalid
	}
	normalized, err := json.Marshal(&content)
	if err != nil {
		return err
	}
	update := map[string]interface{}{
		"data":  string(normalized),
		"mtime": timeutil.NowUnix(),
	}
	if err := s.portfolios.Update(ctx, userID, update); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *PortfolioService) UpdateTemplate(ctx context.Context, userID, template string) error {
	if _, ok := knownTemplates[template]; !ok {
		return appErr.ErrInvalid
	}
	update := map[string]interface{}{
		"template": template,
		"mtime":    timeutil.NowUnix(),
	}
	if err := s.portfolios.Update(ctx, userID, update); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *PortfolioService) SetPublished(ctx context.Context, userID string, published bool) error {
	update := map[string]interface{}{
		"published": published,
		"mtime":     timeutil.NowUnix(),
	}
	if err := s.portfolios.Update(ctx, userID, update); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

// RefreshFromResume re-seeds the portfolio content from the latest upload,
// discarding manual edits.
func (s *PortfolioService) RefreshFromResume(ctx context.Context, userID string) (*model.Portfolio, error) {
	resume, err := s.resumes.GetLatestByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	parsed, err := decodeParsed(resume.Parsed)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(parsed)
	if err != nil {
		return nil, err
	}
	update := map[string]interface{}{
		"data":  string(data),
		"mtime": timeutil.NowUnix(),
	}
	if err := s.portfolios.Update(ctx, userID, update); err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID)
	return s.portfolios.GetByUserID(ctx, userID)
}

// PublicGet serves a published portfolio by username, with a short-lived
// cache in front of the database since public pages dominate read traffic.
func (s *PortfolioService) PublicGet(ctx context.Context, username string) (*PublicPortfolio, error) {
	if cached, ok := s.cache.Get(username); ok {
		return cached, nil
	}
	p, err := s.portfolios.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !p.Published {
		return nil, appErr.ErrNotFound
	}
	content, err := decodeParsed(p.Data)
	if err != nil {
		return nil, err
	}
	summaryHTML, err := renderMarkdown(content.Summary)
	if err != nil {
		logutil.GetLogger(ctx).Warn("render summary failed",
			zap.String("username", username), zap.Error(err))
		summaryHTML = ""
	}
	pub := &PublicPortfolio{
		Username:    p.Username,
		Template:    p.Template,
		Resume:      *content,
		SummaryHTML: summaryHTML,
	}
	s.cache.Add(username, pub)
	return pub, nil
}

func (s *PortfolioService) invalidate(ctx context.Context, userID string) {
	p, err := s.portfolios.GetByUserID(ctx, userID)
	if err != nil {
		return
	}
	s.cache.Remove(p.Username)
}
