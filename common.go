package main

import (
	"net/http"

	"github.com/urfave/cli"
	"github.com/webtor-io/mood-anime/services/jikan"
	"github.com/webtor-io/mood-anime/services/recommend"
)

func configureFetcher(f []cli.Flag) []cli.Flag {
	f = jikan.RegisterFlags(f)
	f = recommend.RegisterFlags(f)
	return f
}

func makeFetcher(c *cli.Context, cl *http.Client) *recommend.Fetcher {
	// Setting Jikan API
	api := jikan.New(c, cl)

	// Setting Fetcher
	return recommend.New(c, api)
}
