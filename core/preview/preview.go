// Package preview produces plain views of stored articles and ad-hoc
// markup. Conversion always runs at read time from the stored markup.
package preview

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/adarshpam3/contentcrafty-sub000/core"
	"github.com/adarshpam3/contentcrafty-sub000/core/store"
)

// ArticleGetter loads a stored article.
type ArticleGetter interface {
	GetArticle(ctx context.Context, id string) (*store.Article, error)
}

// Service ties sanitizing and conversion together.
type Service struct {
	converter core.Converter
	sanitizer core.Extractor // optional
	logger    *zap.Logger
	now       func() time.Time
}

// New creates a Service. A nil sanitizer converts markup untouched.
func New(converter core.Converter, sanitizer core.Extractor, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		converter: converter,
		sanitizer: sanitizer,
		logger:    logger,
		now:       time.Now,
	}
}

// FromMarkup builds the plain view of raw markup. When sanitizing fails the
// raw markup is converted as-is; the converter tolerates anything.
func (s *Service) FromMarkup(meta core.ArticleMeta, markup string) core.PlainView {
	clean := markup
	if s.sanitizer != nil {
		out, err := s.sanitizer.Extract(markup)
		if err != nil {
			s.logger.Warn("sanitize failed, converting raw markup",
				zap.String("source", meta.Source), zap.Error(err))
		} else {
			clean = out
		}
	}

	meta.ConvertedAt = s.now().UTC().Format(time.RFC3339)
	text := s.converter.Convert(clean)
	s.logger.Debug("converted markup",
		zap.String("source", meta.Source),
		zap.Int("markup_bytes", len(markup)),
		zap.Int("text_bytes", len(text)))

	return core.PlainView{Meta: meta, Markup: clean, Text: text}
}

// Article loads an article and builds its plain view.
func (s *Service) Article(ctx context.Context, articles ArticleGetter, id string) (core.PlainView, error) {
	a, err := articles.GetArticle(ctx, id)
	if err != nil {
		return core.PlainView{}, fmt.Errorf("load article: %w", err)
	}
	meta := core.ArticleMeta{
		ID:        a.ID,
		ProjectID: a.ProjectID,
		Kind:      string(a.Kind),
		Title:     a.Title,
		Source:    "article:" + a.ID,
	}
	return s.FromMarkup(meta, a.Markup), nil
}
