package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cececo-dev/cececo-hub/database/models"
	"github.com/cececo-dev/cececo-hub/dtos"
)

type fakeNewsItemRepository struct {
	items   map[int]models.NewsItem
	created []models.NewsItem
	saved   []models.NewsItem
}

func newFakeNewsItemRepository() *fakeNewsItemRepository {
	return &fakeNewsItemRepository{items: map[int]models.NewsItem{}}
}

func (f *fakeNewsItemRepository) ListApproved(filter dtos.NewsFilter) ([]models.NewsItem, int64, error) {
	var out []models.NewsItem
	for _, item := range f.items {
		if item.Status == models.ReviewStatusApproved {
			out = append(out, item)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeNewsItemRepository) Pending(limit int) ([]models.NewsItem, error) {
	return nil, nil
}

func (f *fakeNewsItemRepository) Read(id int) (models.NewsItem, error) {
	if item, ok := f.items[id]; ok {
		return item, nil
	}
	return models.NewsItem{}, gorm.ErrRecordNotFound
}

func (f *fakeNewsItemRepository) Create(item *models.NewsItem) error {
	f.created = append(f.created, *item)
	return nil
}

func (f *fakeNewsItemRepository) Save(item *models.NewsItem) error {
	f.saved = append(f.saved, *item)
	return nil
}

func (f *fakeNewsItemRepository) ExistsBySourceURL(url string) (bool, error) {
	return false, nil
}

func (f *fakeNewsItemRepository) Search(q string, countryID *int, limit int) ([]models.NewsItem, error) {
	return nil, nil
}

type fakeIngestService struct {
	lastOpts dtos.IngestOptions
}

func (f *fakeIngestService) Ingest(ctx context.Context, opts dtos.IngestOptions) (dtos.IngestResult, error) {
	f.lastOpts = opts
	return dtos.IngestResult{}, nil
}

func newTestNewsController(repo *fakeNewsItemRepository) (*NewsController, *fakeIngestService) {
	ingest := &fakeIngestService{}
	controller := NewNewsController(repo, &fakeCountryRepository{}, ingest)
	return controller, ingest
}

func TestNewsControllerCreate(t *testing.T) {
	t.Run("missing required fields fail validation", func(t *testing.T) {
		repo := newFakeNewsItemRepository()
		controller, _ := newTestNewsController(repo)

		ctx, _ := requestContext(http.MethodPost, "/", `{"impactType":"policy"}`)
		assert.Equal(t, http.StatusBadRequest, httpErrorCode(t, controller.Create(ctx)))
		assert.Empty(t, repo.created)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		repo := newFakeNewsItemRepository()
		controller, _ := newTestNewsController(repo)

		ctx, _ := requestContext(http.MethodPost, "/", `{"impactType":`)
		assert.Equal(t, http.StatusBadRequest, httpErrorCode(t, controller.Create(ctx)))
		assert.Empty(t, repo.created)
	})

	t.Run("valid item is stored with a computed impact score", func(t *testing.T) {
		repo := newFakeNewsItemRepository()
		controller, _ := newTestNewsController(repo)

		ctx, rec := requestContext(http.MethodPost, "/",
			`{"impactType":"policy","title":"Net metering adopted","summary":"New net metering rules enter into force."}`)
		require.NoError(t, controller.Create(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, repo.created, 1)
		assert.Equal(t, models.ReviewStatusApproved, repo.created[0].Status)
		assert.Positive(t, repo.created[0].ImpactScore)
		assert.False(t, repo.created[0].PublishedAt.IsZero())
	})

	t.Run("pending status is honored", func(t *testing.T) {
		repo := newFakeNewsItemRepository()
		controller, _ := newTestNewsController(repo)

		ctx, _ := requestContext(http.MethodPost, "/",
			`{"status":"pending","impactType":"policy","title":"Draft strategy","summary":"A draft strategy is out for comments."}`)
		require.NoError(t, controller.Create(ctx))
		require.Len(t, repo.created, 1)
		assert.Equal(t, models.ReviewStatusPending, repo.created[0].Status)
	})
}

func TestNewsControllerReview(t *testing.T) {
	t.Run("unknown item is a 404", func(t *testing.T) {
		controller, _ := newTestNewsController(newFakeNewsItemRepository())

		ctx, _ := requestContext(http.MethodPost, "/", "")
		ctx.SetParamNames("newsID")
		ctx.SetParamValues("42")
		assert.Equal(t, http.StatusNotFound, httpErrorCode(t, controller.Approve(ctx)))
	})

	t.Run("approve flips the status", func(t *testing.T) {
		repo := newFakeNewsItemRepository()
		repo.items[5] = models.NewsItem{Model: models.Model{ID: 5}, Status: models.ReviewStatusPending}
		controller, _ := newTestNewsController(repo)

		ctx, rec := requestContext(http.MethodPost, "/", "")
		ctx.SetParamNames("newsID")
		ctx.SetParamValues("5")
		require.NoError(t, controller.Approve(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, repo.saved, 1)
		assert.Equal(t, models.ReviewStatusApproved, repo.saved[0].Status)
	})
}

func TestNewsControllerIngestParams(t *testing.T) {
	t.Run("non-positive limits are rejected", func(t *testing.T) {
		controller, _ := newTestNewsController(newFakeNewsItemRepository())

		for _, target := range []string{"/?per_country=0", "/?global_limit=-5", "/?per_country=x"} {
			ctx, _ := requestContext(http.MethodPost, target, "")
			assert.Equal(t, http.StatusBadRequest, httpErrorCode(t, controller.Ingest(ctx)))
		}
	})

	t.Run("trust_fetch_country defaults to true", func(t *testing.T) {
		controller, ingest := newTestNewsController(newFakeNewsItemRepository())

		ctx, _ := requestContext(http.MethodPost, "/?timespan=3d", "")
		require.NoError(t, controller.Ingest(ctx))
		assert.True(t, ingest.lastOpts.TrustFetchCountry)
		assert.Equal(t, "3d", ingest.lastOpts.Timespan)

		ctx, _ = requestContext(http.MethodPost, "/?trust_fetch_country=false", "")
		require.NoError(t, controller.Ingest(ctx))
		assert.False(t, ingest.lastOpts.TrustFetchCountry)
	})
}
