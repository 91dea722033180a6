package movements

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestock/internal/core/apperror"
	"gestock/internal/core/id"
	"gestock/internal/domain/catalogs/article"
)

type entryFixture struct {
	store   *fakeArticleStore
	entries *fakeEntryRepo
	service *EntryService
}

func newEntryFixture(arts ...*article.Article) *entryFixture {
	store := newFakeArticleStore(arts...)
	entries := &fakeEntryRepo{}
	exits := &fakeExitRepo{}
	tx := &fakeTxManager{store: store, entries: entries, exits: exits}
	ledger := NewLedger(store, entries, exits)
	return &entryFixture{
		store:   store,
		entries: entries,
		service: NewEntryService(ledger, tx),
	}
}

func TestEntryService_Record(t *testing.T) {
	art := newTestArticle("10", 5)
	f := newEntryFixture(art)

	entry, err := f.service.Record(context.Background(), Line{ArticleID: art.ID, Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, int64(3), entry.Quantity)
	assert.Equal(t, int64(8), f.store.quantity(art.ID))
}

func TestEntryService_RecordBatch(t *testing.T) {
	a := newTestArticle("10", 0)
	b := newTestArticle("20", 5)
	f := newEntryFixture(a, b)

	entries, err := f.service.RecordBatch(context.Background(), []Line{
		{ArticleID: a.ID, Quantity: 10},
		{ArticleID: b.ID, Quantity: 5},
		{ArticleID: a.ID, Quantity: 2},
	})
	require.NoError(t, err)

	assert.Len(t, entries, 3)
	assert.Equal(t, int64(12), f.store.quantity(a.ID))
	assert.Equal(t, int64(10), f.store.quantity(b.ID))
}

func TestEntryService_RecordBatch_UnknownArticleRollsBack(t *testing.T) {
	art := newTestArticle("10", 5)
	f := newEntryFixture(art)

	_, err := f.service.RecordBatch(context.Background(), []Line{
		{ArticleID: art.ID, Quantity: 3},
		{ArticleID: id.New(), Quantity: 1},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))

	assert.Equal(t, int64(5), f.store.quantity(art.ID))
	assert.Empty(t, f.entries.entries)
}

func TestValidateLines(t *testing.T) {
	ctx := context.Background()

	assert.Error(t, ValidateLines(ctx, nil))
	assert.Error(t, ValidateLines(ctx, []Line{}))
	assert.Error(t, ValidateLines(ctx, []Line{{ArticleID: id.New(), Quantity: 0}}))
	assert.Error(t, ValidateLines(ctx, []Line{{ArticleID: id.Nil(), Quantity: 1}}))
	assert.NoError(t, ValidateLines(ctx, []Line{{ArticleID: id.New(), Quantity: 1}}))
}
