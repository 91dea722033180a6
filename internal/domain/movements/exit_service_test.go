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

// fakeTxManager mimics transaction semantics over the in-memory fakes:
// on error it restores the state captured at the start, like a rollback
// would.
type fakeTxManager struct {
	store   *fakeArticleStore
	entries *fakeEntryRepo
	exits   *fakeExitRepo

	rollbacks int
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	quantities := make(map[id.ID]int64, len(m.store.articles))
	for artID, art := range m.store.articles {
		quantities[artID] = art.AvailableQuantity
	}
	entryCount := len(m.entries.entries)
	exitCount := len(m.exits.exits)

	err := fn(ctx)
	if err != nil {
		for artID, qty := range quantities {
			m.store.articles[artID].AvailableQuantity = qty
		}
		m.entries.entries = m.entries.entries[:entryCount]
		m.exits.exits = m.exits.exits[:exitCount]
		m.rollbacks++
	}
	return err
}

type exitFixture struct {
	store   *fakeArticleStore
	exits   *fakeExitRepo
	tx      *fakeTxManager
	service *ExitService
}

func newExitFixture(arts ...*article.Article) *exitFixture {
	store := newFakeArticleStore(arts...)
	entries := &fakeEntryRepo{}
	exits := &fakeExitRepo{}
	tx := &fakeTxManager{store: store, entries: entries, exits: exits}
	ledger := NewLedger(store, entries, exits)
	return &exitFixture{
		store:   store,
		exits:   exits,
		tx:      tx,
		service: NewExitService(ledger, tx),
	}
}

func TestExitService_Record(t *testing.T) {
	art := newTestArticle("10", 100)
	f := newExitFixture(art)

	exit, err := f.service.Record(context.Background(), Line{ArticleID: art.ID, Quantity: 10})
	require.NoError(t, err)

	assert.True(t, exit.Solde.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, int64(90), f.store.quantity(art.ID))
}

func TestExitService_Record_Insufficient(t *testing.T) {
	art := newTestArticle("10", 3)
	f := newExitFixture(art)

	_, err := f.service.Record(context.Background(), Line{ArticleID: art.ID, Quantity: 4})
	assert.True(t, apperror.IsInsufficientStock(err))
	assert.Equal(t, int64(3), f.store.quantity(art.ID))
	assert.Empty(t, f.exits.exits)
}

func TestExitService_RecordBatch_AllLinesSucceed(t *testing.T) {
	art := newTestArticle("10", 100)
	f := newExitFixture(art)

	result, err := f.service.RecordBatch(context.Background(), []Line{
		{ArticleID: art.ID, Quantity: 10},
		{ArticleID: art.ID, Quantity: 20},
	})
	require.NoError(t, err)

	assert.False(t, result.RolledBack)
	assert.Empty(t, result.Errors)
	assert.Len(t, result.Exits, 2)
	assert.True(t, result.SoldeTotal.Equal(decimal.RequireFromString("300")),
		"soldeTotal = %s, want 300", result.SoldeTotal)
	assert.Equal(t, int64(70), f.store.quantity(art.ID))
	assert.Len(t, f.exits.exits, 2)
}

func TestExitService_RecordBatch_RollsBackOnAnyFailure(t *testing.T) {
	art := newTestArticle("10", 100)
	f := newExitFixture(art)

	result, err := f.service.RecordBatch(context.Background(), []Line{
		{ArticleID: art.ID, Quantity: 10},
		{ArticleID: art.ID, Quantity: 200},
	})
	require.NoError(t, err)

	assert.True(t, result.RolledBack)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, art.ID, result.Errors[0].ArticleID)
	// Captured under the lock, after the first line had been applied
	assert.Equal(t, int64(90), result.Errors[0].AvailableQuantity)

	// The would-have-been outcome is still reported
	assert.Len(t, result.Exits, 1)
	assert.True(t, result.SoldeTotal.Equal(decimal.RequireFromString("100")))

	// But nothing was persisted
	assert.Equal(t, int64(100), f.store.quantity(art.ID))
	assert.Empty(t, f.exits.exits)
	assert.Equal(t, 1, f.tx.rollbacks)
}

func TestExitService_RecordBatch_CollectsEveryShortage(t *testing.T) {
	a := newTestArticle("10", 1)
	b := newTestArticle("20", 2)
	f := newExitFixture(a, b)

	result, err := f.service.RecordBatch(context.Background(), []Line{
		{ArticleID: a.ID, Quantity: 5},
		{ArticleID: b.ID, Quantity: 5},
	})
	require.NoError(t, err)

	assert.True(t, result.RolledBack)
	assert.Len(t, result.Errors, 2)
	assert.Equal(t, int64(1), result.Errors[0].AvailableQuantity)
	assert.Equal(t, int64(2), result.Errors[1].AvailableQuantity)
}

func TestExitService_RecordBatch_UnknownArticleFailsRequest(t *testing.T) {
	art := newTestArticle("10", 100)
	f := newExitFixture(art)

	_, err := f.service.RecordBatch(context.Background(), []Line{
		{ArticleID: art.ID, Quantity: 10},
		{ArticleID: id.New(), Quantity: 1},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	// Rolled back with the error
	assert.Equal(t, int64(100), f.store.quantity(art.ID))
	assert.Empty(t, f.exits.exits)
}

func TestExitService_RecordBatch_ValidatesLines(t *testing.T) {
	f := newExitFixture()

	_, err := f.service.RecordBatch(context.Background(), nil)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)

	_, err = f.service.RecordBatch(context.Background(), []Line{{ArticleID: id.New(), Quantity: 0}})
	assert.Error(t, err)
}
