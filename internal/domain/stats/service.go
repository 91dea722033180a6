package stats

import (
	"context"

	"github.com/shopspring/decimal"

	"gestock/internal/core/apperror"
	"gestock/pkg/logger"
)

// Service builds movement summaries.
type Service struct {
	repo Repository
}

// NewService creates a statistics service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Summarize aggregates the movement history of one kind, optionally
// restricted to a date window. The window must be either fully set or
// fully absent, with From not after To.
func (s *Service) Summarize(ctx context.Context, kind Kind, filter Filter) (*Summary, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	groups, err := s.repo.GroupByArticle(ctx, kind, filter)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Articles: make([]ArticleGroup, 0, len(groups))}
	for i := range groups {
		enrich(&groups[i], kind)
		summary.TotalQuantity += groups[i].Quantity
	}
	summary.Articles = groups
	if summary.Articles == nil {
		summary.Articles = []ArticleGroup{}
	}

	// Groups arrive ordered by quantity descending.
	if len(summary.Articles) > 0 {
		summary.MostMoved = &summary.Articles[0]
	}

	// The persisted-solde figure only belongs to the overall outbound
	// view; windowed queries report the per-group figures alone.
	if kind == KindOutbound && filter.IsZero() {
		total, err := s.repo.SumSolde(ctx)
		if err != nil {
			return nil, err
		}
		summary.SoldeTotal = &total
	}

	logger.Debug(ctx, "movement summary built",
		"kind", string(kind),
		"groups", len(summary.Articles),
		"total_quantity", summary.TotalQuantity,
	)
	return summary, nil
}

// enrich derives the monetary figures for one group from the article's
// current price. Articles that no longer exist carry no price and get
// no monetary figures.
func enrich(g *ArticleGroup, kind Kind) {
	qty := decimal.NewFromInt(g.Quantity)
	switch kind {
	case KindInbound:
		if g.PriceInit != nil {
			v := g.PriceInit.Mul(qty)
			g.SoldeUse = &v
		}
		g.PriceSell = nil
	case KindOutbound:
		if g.PriceSell != nil {
			v := g.PriceSell.Mul(qty)
			g.Solde = &v
		}
		g.PriceInit = nil
	}
}

func validateFilter(f Filter) error {
	if (f.From == nil) != (f.To == nil) {
		return apperror.NewValidation("start_date and end_date must be provided together")
	}
	if f.From != nil && f.From.After(*f.To) {
		return apperror.NewValidation("start_date must not be after end_date")
	}
	return nil
}
