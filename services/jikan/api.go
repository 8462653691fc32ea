package jikan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/webtor-io/mood-anime/models"
	"golang.org/x/time/rate"
)

const (
	jikanApiHostFlag   = "jikan-api-host"
	jikanApiPortFlag   = "jikan-api-port"
	jikanApiSecureFlag = "jikan-api-secure"
	jikanApiRateFlag   = "jikan-api-rate"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   jikanApiHostFlag,
			Usage:  "jikan api host",
			EnvVar: "JIKAN_API_HOST",
			Value:  "api.jikan.moe",
		},
		cli.IntFlag{
			Name:   jikanApiPortFlag,
			Usage:  "jikan api port",
			EnvVar: "JIKAN_API_PORT",
			Value:  443,
		},
		cli.BoolTFlag{
			Name:   jikanApiSecureFlag,
			Usage:  "jikan api secure (https)",
			EnvVar: "JIKAN_API_SECURE",
		},
		cli.Float64Flag{
			Name:   jikanApiRateFlag,
			Usage:  "max jikan api requests per second",
			EnvVar: "JIKAN_API_RATE",
			Value:  3,
		},
	)
}

type AnimeType string

const (
	AnimeTypeMovie AnimeType = "movie"
	AnimeTypeTV    AnimeType = "tv"
)

type OrderBy string

const (
	OrderByScore      OrderBy = "score"
	OrderByPopularity OrderBy = "popularity"
)

type Sort string

const (
	SortAsc  Sort = "asc"
	SortDesc Sort = "desc"
)

// SearchQuery holds the parameters of the /anime listing. Zero MinScore
// means no lower bound.
type SearchQuery struct {
	Type     AnimeType
	OrderBy  OrderBy
	Sort     Sort
	Limit    int
	MinScore float64
	Genres   []models.GenreFilter
}

type SearchResponse struct {
	Data []models.Movie `json:"data"`
}

type Api struct {
	url     string
	cl      *http.Client
	limiter *rate.Limiter
}

func New(c *cli.Context, cl *http.Client) *Api {
	host := c.String(jikanApiHostFlag)
	port := c.Int(jikanApiPortFlag)
	secure := c.BoolT(jikanApiSecureFlag)
	protocol := "http"
	if secure {
		protocol = "https"
	}
	u := fmt.Sprintf("%v://%v:%v", protocol, host, port)
	log.Infof("jikan api endpoint %v", u)
	return NewWithURL(cl, u, c.Float64(jikanApiRateFlag))
}

// NewWithURL builds a client against an explicit base url. A non-positive
// rps disables pacing.
func NewWithURL(cl *http.Client, u string, rps float64) *Api {
	lim := rate.NewLimiter(rate.Inf, 1)
	if rps > 0 {
		lim = rate.NewLimiter(rate.Limit(rps), 1)
	}
	return &Api{
		url:     u,
		cl:      cl,
		limiter: lim,
	}
}

func (q *SearchQuery) values() map[string]string {
	v := map[string]string{}
	if q.Type != "" {
		v["type"] = string(q.Type)
	}
	if q.OrderBy != "" {
		v["order_by"] = string(q.OrderBy)
	}
	if q.Sort != "" {
		v["sort"] = string(q.Sort)
	}
	if q.Limit > 0 {
		v["limit"] = strconv.Itoa(q.Limit)
	}
	if q.MinScore > 0 {
		v["min_score"] = strconv.FormatFloat(q.MinScore, 'f', -1, 64)
	}
	if len(q.Genres) > 0 {
		v["genres"] = models.JoinGenres(q.Genres)
	}
	return v
}

func (api *Api) Search(ctx context.Context, sq *SearchQuery) (*SearchResponse, error) {
	if err := api.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limit wait")
	}

	reqURL := fmt.Sprintf("%s/v4/anime", api.url)

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	q := req.URL.Query()
	for k, v := range sq.values() {
		q.Set(k, v)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	log.WithField("url", req.URL.String()).Debug("jikan search")

	resp, err := api.cl.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var res SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}
	if res.Data == nil {
		res.Data = []models.Movie{}
	}

	return &res, nil
}
