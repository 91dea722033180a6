package movements

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestock/internal/core/apperror"
	"gestock/internal/core/id"
	"gestock/internal/domain/catalogs/article"
)

// --- Fakes ---

// fakeArticleStore keeps articles in memory. GetForUpdate returns a
// copy, like a real row scan would.
type fakeArticleStore struct {
	articles map[id.ID]*article.Article
}

func newFakeArticleStore(arts ...*article.Article) *fakeArticleStore {
	s := &fakeArticleStore{articles: make(map[id.ID]*article.Article)}
	for _, a := range arts {
		s.articles[a.ID] = a
	}
	return s
}

func (s *fakeArticleStore) GetForUpdate(ctx context.Context, artID id.ID) (*article.Article, error) {
	stored, ok := s.articles[artID]
	if !ok {
		return nil, apperror.NewNotFound("article", artID.String())
	}
	cp := *stored
	return &cp, nil
}

func (s *fakeArticleStore) AdjustQuantity(ctx context.Context, artID id.ID, delta int64) error {
	stored, ok := s.articles[artID]
	if !ok {
		return apperror.NewNotFound("article", artID.String())
	}
	if stored.AvailableQuantity+delta < 0 {
		return article.ErrQuantityGuard
	}
	stored.AvailableQuantity += delta
	return nil
}

func (s *fakeArticleStore) quantity(artID id.ID) int64 {
	return s.articles[artID].AvailableQuantity
}

type fakeEntryRepo struct {
	entries []*StockEntry
}

func (r *fakeEntryRepo) Create(ctx context.Context, entry *StockEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

type fakeExitRepo struct {
	exits []*StockExit
}

func (r *fakeExitRepo) Create(ctx context.Context, exit *StockExit) error {
	r.exits = append(r.exits, exit)
	return nil
}

func newTestArticle(priceSell string, available int64) *article.Article {
	return &article.Article{
		ID:                id.New(),
		Name:              "Stylo",
		PriceInit:         decimal.RequireFromString(priceSell).Div(decimal.RequireFromString("1.1")).Round(2),
		PriceSell:         decimal.RequireFromString(priceSell),
		AvailableQuantity: available,
		CategorieID:       id.New(),
	}
}

// --- Tests ---

func TestLedger_ApplyEntry(t *testing.T) {
	ctx := context.Background()
	art := newTestArticle("10", 5)
	store := newFakeArticleStore(art)
	entries := &fakeEntryRepo{}
	ledger := NewLedger(store, entries, &fakeExitRepo{})

	entry, err := ledger.ApplyEntry(ctx, art.ID, 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), entry.Quantity)
	assert.Equal(t, art.ID, entry.ArticleID)
	assert.Equal(t, int64(12), store.quantity(art.ID))
	assert.Len(t, entries.entries, 1)
}

func TestLedger_ApplyEntry_UnknownArticle(t *testing.T) {
	ledger := NewLedger(newFakeArticleStore(), &fakeEntryRepo{}, &fakeExitRepo{})

	_, err := ledger.ApplyEntry(context.Background(), id.New(), 1)
	assert.True(t, apperror.IsNotFound(err))
}

func TestLedger_ApplyExit(t *testing.T) {
	ctx := context.Background()
	art := newTestArticle("10", 100)
	store := newFakeArticleStore(art)
	exits := &fakeExitRepo{}
	ledger := NewLedger(store, &fakeEntryRepo{}, exits)

	exit, err := ledger.ApplyExit(ctx, art.ID, 30)
	require.NoError(t, err)

	assert.Equal(t, int64(30), exit.Quantity)
	assert.True(t, exit.Solde.Equal(decimal.RequireFromString("300")),
		"solde = %s, want 300", exit.Solde)
	assert.Equal(t, int64(70), store.quantity(art.ID))
	assert.Len(t, exits.exits, 1)
}

func TestLedger_ApplyExit_InsufficientStock(t *testing.T) {
	ctx := context.Background()
	art := newTestArticle("10", 5)
	store := newFakeArticleStore(art)
	exits := &fakeExitRepo{}
	ledger := NewLedger(store, &fakeEntryRepo{}, exits)

	_, err := ledger.ApplyExit(ctx, art.ID, 6)
	require.Error(t, err)
	assert.True(t, apperror.IsInsufficientStock(err))

	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, int64(5), appErr.Details["available_quantity"])

	// Nothing moved
	assert.Equal(t, int64(5), store.quantity(art.ID))
	assert.Empty(t, exits.exits)
}

func TestLedger_ApplyExit_ExactQuantity(t *testing.T) {
	ctx := context.Background()
	art := newTestArticle("2.50", 4)
	store := newFakeArticleStore(art)
	ledger := NewLedger(store, &fakeEntryRepo{}, &fakeExitRepo{})

	exit, err := ledger.ApplyExit(ctx, art.ID, 4)
	require.NoError(t, err)

	assert.True(t, exit.Solde.Equal(decimal.RequireFromString("10")))
	assert.Equal(t, int64(0), store.quantity(art.ID))
}
