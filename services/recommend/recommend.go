package recommend

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/webtor-io/lazymap"
	"github.com/webtor-io/mood-anime/models"
	"github.com/webtor-io/mood-anime/services/jikan"
	"github.com/webtor-io/mood-anime/services/metrics"
)

const (
	freshnessFlag   = "recommend-freshness"
	errorExpireFlag = "recommend-error-expire"
	timeoutFlag     = "recommend-timeout"
)

const (
	queryLimit    = 10
	minScore      = 7
	MaxResults    = 5
	DefaultExpire = 5 * time.Minute

	// defaultKey memoizes every mood outside the table under one entry.
	defaultKey = "default"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.DurationFlag{
			Name:   freshnessFlag,
			Usage:  "how long recommendations for a mood are reused",
			EnvVar: "RECOMMEND_FRESHNESS",
			Value:  DefaultExpire,
		},
		cli.DurationFlag{
			Name:   errorExpireFlag,
			Usage:  "how long a failed lookup is shared with concurrent callers",
			EnvVar: "RECOMMEND_ERROR_EXPIRE",
			Value:  time.Second,
		},
		cli.DurationFlag{
			Name:   timeoutFlag,
			Usage:  "catalog lookup timeout, independent of the caller",
			EnvVar: "RECOMMEND_TIMEOUT",
			Value:  30 * time.Second,
		},
	)
}

// Catalog is the subset of the Jikan client used for lookups.
type Catalog interface {
	Search(ctx context.Context, q *jikan.SearchQuery) (*jikan.SearchResponse, error)
}

// TransportFailure means the primary catalog request did not succeed.
type TransportFailure struct {
	Mood string
	Err  error
}

func (e *TransportFailure) Error() string {
	return fmt.Sprintf("failed to fetch recommendations for mood %q: %v", e.Mood, e.Err)
}

func (e *TransportFailure) Unwrap() error {
	return e.Err
}

func (e *TransportFailure) Cause() error {
	return e.Err
}

type Fetcher struct {
	catalog Catalog
	cache   *lazymap.LazyMap[[]models.Movie]
	timeout time.Duration
}

func New(c *cli.Context, cat Catalog) *Fetcher {
	return NewFetcher(cat, c.Duration(freshnessFlag), c.Duration(errorExpireFlag), c.Duration(timeoutFlag))
}

// NewFetcher memoizes results for expire and failures for errorExpire. Each
// catalog lookup is bounded by timeout rather than by the caller's context.
func NewFetcher(cat Catalog, expire time.Duration, errorExpire time.Duration, timeout time.Duration) *Fetcher {
	return &Fetcher{
		catalog: cat,
		cache: lazymap.New[[]models.Movie](&lazymap.Config{
			Expire:      expire,
			StoreErrors: true,
			ErrorExpire: errorExpire,
		}),
		timeout: timeout,
	}
}

func cacheKey(mood string) string {
	m, ok := models.ParseMood(mood)
	if !ok {
		return defaultKey
	}
	return m.String()
}

// Fetch returns up to MaxResults movies for the mood. Results are memoized
// per mood for the freshness window.
func (s *Fetcher) Fetch(ctx context.Context, mood string) ([]models.Movie, error) {
	metrics.RecommendationRequests.Inc()
	key := cacheKey(mood)
	list, err := s.cache.Get(key, func() ([]models.Movie, error) {
		// shared by every waiter on key, so the first caller's cancellation
		// must not end it
		lctx := context.WithoutCancel(ctx)
		if s.timeout > 0 {
			var cancel context.CancelFunc
			lctx, cancel = context.WithTimeout(lctx, s.timeout)
			defer cancel()
		}
		return s.fetch(lctx, key)
	})
	if err != nil {
		return nil, err
	}
	return append([]models.Movie(nil), list...), nil
}

func (s *Fetcher) fetch(ctx context.Context, mood string) ([]models.Movie, error) {
	metrics.RecommendationFetches.WithLabelValues(mood).Inc()
	genres := models.ResolveFilters(mood)
	l := log.WithField("mood", mood).WithField("genres", models.JoinGenres(genres))

	resp, err := s.catalog.Search(ctx, &jikan.SearchQuery{
		Type:     jikan.AnimeTypeMovie,
		OrderBy:  jikan.OrderByScore,
		Sort:     jikan.SortDesc,
		Limit:    queryLimit,
		MinScore: minScore,
		Genres:   genres,
	})
	metrics.RecordCatalogRequest(metrics.QueryPrimary, err)
	if err != nil {
		l.WithError(err).Error("failed to fetch recommendations")
		return nil, &TransportFailure{Mood: mood, Err: err}
	}
	list := resp.Data

	if len(list) == 0 && len(genres) > 0 {
		l.Info("no scored movies found, falling back to popularity")
		list = s.fallback(ctx, genres[0], l)
	}

	if len(list) > MaxResults {
		list = list[:MaxResults]
	}
	l.WithField("count", len(list)).Debug("recommendations fetched")
	return list, nil
}

func (s *Fetcher) fallback(ctx context.Context, genre models.GenreFilter, l *log.Entry) []models.Movie {
	resp, err := s.catalog.Search(ctx, &jikan.SearchQuery{
		Type:    jikan.AnimeTypeMovie,
		OrderBy: jikan.OrderByPopularity,
		Sort:    jikan.SortAsc,
		Limit:   queryLimit,
		Genres:  []models.GenreFilter{genre},
	})
	metrics.RecordCatalogRequest(metrics.QueryFallback, err)
	if err != nil {
		l.WithError(err).Warn("fallback request failed")
		return nil
	}
	return resp.Data
}
