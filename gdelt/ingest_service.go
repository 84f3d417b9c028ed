package gdelt

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/cececo-dev/cececo-hub/database"
	"github.com/cececo-dev/cececo-hub/database/models"
	"github.com/cececo-dev/cececo-hub/dtos"
	"github.com/cececo-dev/cececo-hub/shared"
)

const (
	defaultPerCountry  = 500
	defaultGlobalLimit = 2000
	defaultTimespan    = "7d"
)

type ingestService struct {
	client             *Client
	countryRepository  shared.CountryRepository
	newsItemRepository shared.NewsItemRepository
}

func NewIngestService(client *Client, countryRepository shared.CountryRepository, newsItemRepository shared.NewsItemRepository) *ingestService {
	return &ingestService{
		client:             client,
		countryRepository:  countryRepository,
		newsItemRepository: newsItemRepository,
	}
}

type fetchedArticle struct {
	article Article
	// country the fetch was filtered on, nil for the global fetch
	fetchCountry *models.Country
}

// Ingest pulls articles per country plus one unfiltered batch, attributes
// each one to a country, deduplicates by URL and persists everything that
// is not already stored. A failing upstream call only costs its own batch.
func (s *ingestService) Ingest(ctx context.Context, opts dtos.IngestOptions) (dtos.IngestResult, error) {
	if opts.PerCountry <= 0 {
		opts.PerCountry = defaultPerCountry
	}
	if opts.GlobalLimit <= 0 {
		opts.GlobalLimit = defaultGlobalLimit
	}
	if opts.Timespan == "" {
		opts.Timespan = defaultTimespan
	}

	countries, err := s.countryRepository.All()
	if err != nil {
		return dtos.IngestResult{}, err
	}

	// one result slot per country plus the trailing global slot, so the
	// merge below runs in a fixed order regardless of fetch timing
	batches := make([][]Article, len(countries)+1)
	g, groupCtx := errgroup.WithContext(ctx)
	for i, country := range countries {
		i, country := i, country
		g.Go(func() error {
			batches[i] = s.client.Fetch(groupCtx, FetchOptions{
				CountryISO2: country.ISO2,
				SearchQuery: opts.SearchQuery,
				MaxRecords:  opts.PerCountry,
				Timespan:    opts.Timespan,
			})
			return nil
		})
	}
	g.Go(func() error {
		batches[len(countries)] = s.client.Fetch(groupCtx, FetchOptions{
			SearchQuery: opts.SearchQuery,
			MaxRecords:  opts.GlobalLimit,
			Timespan:    opts.Timespan,
		})
		return nil
	})
	if err := g.Wait(); err != nil {
		return dtos.IngestResult{}, err
	}

	seenURLs := make(map[string]struct{})
	var fetched []fetchedArticle
	for i := range countries {
		for _, article := range batches[i] {
			if link := article.Link(); link != "" {
				if _, seen := seenURLs[link]; seen {
					continue
				}
				seenURLs[link] = struct{}{}
				fetched = append(fetched, fetchedArticle{article: article, fetchCountry: &countries[i]})
			}
		}
	}
	for _, article := range batches[len(countries)] {
		if link := article.Link(); link != "" {
			if _, seen := seenURLs[link]; seen {
				continue
			}
			seenURLs[link] = struct{}{}
			fetched = append(fetched, fetchedArticle{article: article})
		}
	}

	result := dtos.IngestResult{TotalFetched: len(fetched)}
	for _, fa := range fetched {
		attribution := s.attribute(fa, countries, opts.TrustFetchCountry)
		item := MapArticle(fa.article, attribution.CountryID)

		if item.SourceURL != nil {
			exists, err := s.newsItemRepository.ExistsBySourceURL(*item.SourceURL)
			if err != nil {
				slog.Warn("could not check for existing news item", "url", *item.SourceURL, "err", err)
				result.Skipped++
				continue
			}
			if exists {
				result.Skipped++
				continue
			}
		}

		item.Status = models.ReviewStatusPending
		if opts.AutoApprove {
			item.Status = models.ReviewStatusApproved
		}

		if err := s.newsItemRepository.Create(&item); err != nil {
			if !database.IsDuplicateKeyError(err) {
				slog.Warn("could not store news item", "title", item.Title, "err", err)
			}
			result.Skipped++
			continue
		}
		result.Inserted++
	}

	return result, nil
}

// attribute decides which country a fetched article belongs to. When the
// fetch was filtered on a country and the content resolver disagrees, the
// fetch filter wins unless trustFetchCountry is off.
func (s *ingestService) attribute(fa fetchedArticle, countries []models.Country, trustFetchCountry bool) Attribution {
	resolved := ResolveCountry(fa.article, countries)
	if fa.fetchCountry == nil {
		return resolved
	}
	if resolved.CountryID != nil && *resolved.CountryID == fa.fetchCountry.ID {
		return resolved
	}
	if trustFetchCountry {
		return attributed(*fa.fetchCountry)
	}
	return resolved
}
