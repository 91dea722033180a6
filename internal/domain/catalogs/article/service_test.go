package article

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestock/internal/core/apperror"
	"gestock/internal/core/id"
)

type fakeRepo struct {
	articles map[id.ID]*Article
	byName   map[string]id.ID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		articles: make(map[id.ID]*Article),
		byName:   make(map[string]id.ID),
	}
}

func (r *fakeRepo) Create(ctx context.Context, art *Article) error {
	r.articles[art.ID] = art
	r.byName[art.Name] = art.ID
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, artID id.ID) (*Article, error) {
	art, ok := r.articles[artID]
	if !ok {
		return nil, apperror.NewNotFound("article", artID.String())
	}
	return art, nil
}

func (r *fakeRepo) GetForUpdate(ctx context.Context, artID id.ID) (*Article, error) {
	return r.GetByID(ctx, artID)
}

func (r *fakeRepo) List(ctx context.Context) ([]*Article, error) {
	out := make([]*Article, 0, len(r.articles))
	for _, art := range r.articles {
		out = append(out, art)
	}
	return out, nil
}

func (r *fakeRepo) Update(ctx context.Context, art *Article) error {
	if _, ok := r.articles[art.ID]; !ok {
		return apperror.NewNotFound("article", art.ID.String())
	}
	r.articles[art.ID] = art
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, artID id.ID) error {
	if _, ok := r.articles[artID]; !ok {
		return apperror.NewNotFound("article", artID.String())
	}
	delete(r.articles, artID)
	return nil
}

func (r *fakeRepo) ExistsByName(ctx context.Context, name string, excludeID id.ID) (bool, error) {
	owner, ok := r.byName[name]
	return ok && owner != excludeID, nil
}

func (r *fakeRepo) AdjustQuantity(ctx context.Context, artID id.ID, delta int64) error {
	art, ok := r.articles[artID]
	if !ok {
		return apperror.NewNotFound("article", artID.String())
	}
	if art.AvailableQuantity+delta < 0 {
		return ErrQuantityGuard
	}
	art.AvailableQuantity += delta
	return nil
}

type fakeCategoryChecker struct {
	known map[id.ID]bool
}

func (c *fakeCategoryChecker) Exists(ctx context.Context, catID id.ID) (bool, error) {
	return c.known[catID], nil
}

func newTestService() (*Service, *fakeRepo, id.ID) {
	repo := newFakeRepo()
	catID := id.New()
	checker := &fakeCategoryChecker{known: map[id.ID]bool{catID: true}}
	return NewService(repo, checker), repo, catID
}

func TestService_Create_DerivesSellPrice(t *testing.T) {
	svc, _, catID := newTestService()

	art := NewArticle("Écran", decimal.RequireFromString("200"), 3, catID)
	// A tampered sale price must not survive
	art.PriceSell = decimal.RequireFromString("999")

	require.NoError(t, svc.Create(context.Background(), art))
	assert.True(t, art.PriceSell.Equal(decimal.RequireFromString("220")))
}

func TestService_Create_DuplicateName(t *testing.T) {
	svc, _, catID := newTestService()
	ctx := context.Background()

	first := NewArticle("Écran", decimal.RequireFromString("200"), 3, catID)
	require.NoError(t, svc.Create(ctx, first))

	second := NewArticle("Écran", decimal.RequireFromString("100"), 1, catID)
	err := svc.Create(ctx, second)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
}

func TestService_Create_UnknownCategory(t *testing.T) {
	svc, _, _ := newTestService()

	art := NewArticle("Écran", decimal.RequireFromString("200"), 3, id.New())
	err := svc.Create(context.Background(), art)
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_Update_RederivesSellPrice(t *testing.T) {
	svc, _, catID := newTestService()
	ctx := context.Background()

	art := NewArticle("Écran", decimal.RequireFromString("200"), 3, catID)
	require.NoError(t, svc.Create(ctx, art))

	art.PriceInit = decimal.RequireFromString("300")
	before := art.UpdatedAt
	time.Sleep(time.Millisecond)
	require.NoError(t, svc.Update(ctx, art))

	assert.True(t, art.PriceSell.Equal(decimal.RequireFromString("330")))
	assert.True(t, art.UpdatedAt.After(before))
}
