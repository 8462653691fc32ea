package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/webtor-io/mood-anime/models"
	"github.com/webtor-io/mood-anime/services/recommend"
)

func makePickCMD() cli.Command {
	pickCMD := cli.Command{
		Name:    "pick",
		Aliases: []string{"p"},
		Usage:   "Picks moods interactively from stdin",
		Action:  pick,
	}
	pickCMD.Flags = configureFetcher(pickCMD.Flags)
	return pickCMD
}

func pick(c *cli.Context) error {
	// Setting HTTP Client
	cl := http.DefaultClient

	// Setting Selection
	sel := recommend.NewSelection(makeFetcher(c, cl))

	printMoods(c.App.Writer)
	return runPick(context.Background(), os.Stdin, c.App.Writer, sel)
}

// runPick reads one mood per line. Picking the selected mood again clears
// it. Only the results for the latest selection are printed.
func runPick(ctx context.Context, in io.Reader, out io.Writer, sel *recommend.Selection) error {
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	write := func(f func(w io.Writer)) {
		mu.Lock()
		defer mu.Unlock()
		f(out)
	}
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		m, ok := models.ParseMood(line)
		if !ok {
			write(func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "unknown mood %q\n", line)
			})
			continue
		}
		cur, selected := sel.Select(m)
		if !selected {
			write(func(w io.Writer) {
				_, _ = fmt.Fprintln(w, recommend.IdleMessage)
			})
			continue
		}
		write(func(w io.Writer) {
			_, _ = fmt.Fprintf(w, "You selected: %v\n", cur)
		})
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := sel.Resolve(ctx)
			if errors.Is(err, recommend.ErrSuperseded) || errors.Is(err, recommend.ErrNoSelection) {
				log.WithField("mood", cur).Debug("dropping stale recommendations")
				return
			}
			write(func(w io.Writer) {
				if err != nil {
					printView(w, recommend.NewFailureView(res.Mood.String()))
					return
				}
				printView(w, recommend.NewView(res.Mood.String(), res.Movies))
			})
		}()
	}
	wg.Wait()
	return errors.Wrap(sc.Err(), "failed to read moods")
}
