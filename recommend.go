package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"github.com/webtor-io/mood-anime/services/recommend"
)

const maxSynopsisLen = 200

func makeRecommendCMD() cli.Command {
	recommendCMD := cli.Command{
		Name:    "recommend",
		Aliases: []string{"r"},
		Usage:   "Prints recommendations for a mood",
		Action:  recommendAction,
	}
	configureRecommend(&recommendCMD)
	return recommendCMD
}

func configureRecommend(c *cli.Command) {
	c.Flags = append(c.Flags,
		cli.StringFlag{
			Name:  "mood, m",
			Usage: "mood to get recommendations for",
		},
		cli.BoolFlag{
			Name:  "json",
			Usage: "print raw json",
		},
		cli.DurationFlag{
			Name:  "timeout",
			Usage: "lookup timeout",
			Value: 30 * time.Second,
		},
	)
	c.Flags = configureFetcher(c.Flags)
}

func recommendAction(c *cli.Context) error {
	m := c.String("mood")
	if m == "" {
		m = c.Args().First()
	}
	if m == "" {
		return errors.New("mood is required")
	}

	// Setting HTTP Client
	cl := http.DefaultClient

	// Setting Fetcher
	f := makeFetcher(c, cl)

	ctx, cancel := context.WithTimeout(context.Background(), c.Duration("timeout"))
	defer cancel()

	return runRecommend(ctx, c.App.Writer, f, m, c.Bool("json"))
}

func runRecommend(ctx context.Context, out io.Writer, r recommend.Recommender, mood string, asJSON bool) error {
	movies, err := r.Fetch(ctx, mood)
	var v *recommend.View
	if err != nil {
		v = recommend.NewFailureView(mood)
	} else {
		v = recommend.NewView(mood, movies)
	}
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(v); encErr != nil {
			return errors.Wrap(encErr, "failed to encode view")
		}
	} else {
		printView(out, v)
	}
	return err
}

func printView(out io.Writer, v *recommend.View) {
	_, _ = fmt.Fprintln(out, v.Heading)
	if v.Summary != "" {
		_, _ = fmt.Fprintln(out, v.Summary)
	}
	for i, it := range v.Items {
		_, _ = fmt.Fprintln(out)
		line := fmt.Sprintf("%d. %v", i+1, it.Title)
		if it.Year != 0 {
			line += fmt.Sprintf(" (%d)", it.Year)
		}
		line += fmt.Sprintf(" ★ %v", it.Score)
		_, _ = fmt.Fprintln(out, line)
		if len(it.Genres) > 0 {
			_, _ = fmt.Fprintf(out, "   %v\n", strings.Join(it.Genres, ", "))
		}
		_, _ = fmt.Fprintf(out, "   %v\n", shorten(it.Synopsis, maxSynopsisLen))
	}
}

func shorten(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
