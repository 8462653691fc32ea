package jikan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webtor-io/mood-anime/models"
)

func TestApi_Search_Params(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4/anime", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "movie", q.Get("type"))
		assert.Equal(t, "score", q.Get("order_by"))
		assert.Equal(t, "desc", q.Get("sort"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "7", q.Get("min_score"))
		assert.Equal(t, "22,8,25", q.Get("genres"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"mal_id":199,"title":"Spirited Away","synopsis":"A girl...","score":8.77,"year":2001,"duration":"2 hr 4 min","genres":[{"mal_id":2,"name":"Adventure"}],"images":{"jpg":{"large_image_url":"https://cdn/199.jpg"}}}]}`))
	}))
	defer server.Close()

	api := NewWithURL(&http.Client{}, server.URL, 0)
	res, err := api.Search(context.Background(), &SearchQuery{
		Type:     AnimeTypeMovie,
		OrderBy:  OrderByScore,
		Sort:     SortDesc,
		Limit:    10,
		MinScore: 7,
		Genres:   models.ResolveFilters("romantic"),
	})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	m := res.Data[0]
	assert.Equal(t, 199, m.MalID)
	assert.Equal(t, "Spirited Away", m.Title)
	assert.Equal(t, 2001, m.GetIntYear())
	assert.Equal(t, "https://cdn/199.jpg", m.GetImageURL())
	assert.Equal(t, []string{"Adventure"}, m.GenreNames(3))
}

func TestApi_Search_OmitsMinScore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.False(t, q.Has("min_score"))
		assert.Equal(t, "popularity", q.Get("order_by"))
		assert.Equal(t, "asc", q.Get("sort"))
		assert.Equal(t, "36", q.Get("genres"))
		_, _ = w.Write([]byte(`{"data":null}`))
	}))
	defer server.Close()

	api := NewWithURL(&http.Client{}, server.URL, 0)
	res, err := api.Search(context.Background(), &SearchQuery{
		Type:    AnimeTypeMovie,
		OrderBy: OrderByPopularity,
		Sort:    SortAsc,
		Limit:   10,
		Genres:  []models.GenreFilter{models.GenreSliceOfLife},
	})
	require.NoError(t, err)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}

func TestApi_Search_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	api := NewWithURL(&http.Client{}, server.URL, 0)
	_, err := api.Search(context.Background(), &SearchQuery{Type: AnimeTypeMovie})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestApi_Search_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":`))
	}))
	defer server.Close()

	api := NewWithURL(&http.Client{}, server.URL, 0)
	_, err := api.Search(context.Background(), &SearchQuery{})
	require.Error(t, err)
}

func TestApi_Search_RateLimitRespectsContext(t *testing.T) {
	api := NewWithURL(&http.Client{}, "http://127.0.0.1:1", 0.001)
	// drain the single burst token
	require.True(t, api.limiter.Allow())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := api.Search(ctx, &SearchQuery{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
}
