package template

import (
	"context"
	"strings"
	"time"

	"github.com/baechuer/leads-api/internal/domain"
	zlog "github.com/rs/zerolog/log"
)

// Service exposes message and subject templates read-only.
// Usage counters are written by the outreach sender, so list results
// are only cached for a short TTL.
type Service struct {
	repo  TemplateRepo
	cache Cache
	ttl   time.Duration
}

// New builds the service. cache may be nil, which disables caching.
func New(repo TemplateRepo, cache Cache, ttl time.Duration) *Service {
	return &Service{repo: repo, cache: cache, ttl: ttl}
}

type MessageFilter struct {
	Search   string
	Industry string
}

func (f *MessageFilter) Normalize() {
	f.Search = strings.TrimSpace(f.Search)
	f.Industry = strings.TrimSpace(f.Industry)
}

type SubjectFilter struct {
	Search string
}

func (f *SubjectFilter) Normalize() {
	f.Search = strings.TrimSpace(f.Search)
}

func (s *Service) ListMessages(ctx context.Context, f MessageFilter) ([]domain.MessageTemplate, error) {
	f.Normalize()
	key := cacheKeyMessageList(f)

	var cached []domain.MessageTemplate
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	items, err := s.repo.ListMessages(ctx, f)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, items)
	return items, nil
}

func (s *Service) GetMessage(ctx context.Context, id int64) (domain.MessageTemplate, error) {
	return s.repo.GetMessage(ctx, id)
}

func (s *Service) ListSubjects(ctx context.Context, f SubjectFilter) ([]domain.SubjectTemplate, error) {
	f.Normalize()
	key := cacheKeySubjectList(f)

	var cached []domain.SubjectTemplate
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	items, err := s.repo.ListSubjects(ctx, f)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, items)
	return items, nil
}

func (s *Service) GetSubject(ctx context.Context, id int64) (domain.SubjectTemplate, error) {
	return s.repo.GetSubject(ctx, id)
}

func (s *Service) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.cache == nil || s.ttl <= 0 {
		return false
	}
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		zlog.Warn().Err(err).Str("key", key).Msg("cache get failed")
		return false
	}
	if found {
		zlog.Debug().Str("key", key).Msg("cache hit")
	}
	return found
}

func (s *Service) cacheSet(ctx context.Context, key string, val any) {
	if s.cache == nil || s.ttl <= 0 {
		return
	}
	if err := s.cache.Set(ctx, key, val, s.ttl); err != nil {
		zlog.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}
