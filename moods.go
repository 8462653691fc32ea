package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli"
	"github.com/webtor-io/mood-anime/models"
)

func makeMoodsCMD() cli.Command {
	return cli.Command{
		Name:  "moods",
		Usage: "Lists available moods",
		Action: func(c *cli.Context) error {
			printMoods(c.App.Writer)
			return nil
		},
	}
}

func printMoods(out io.Writer) {
	_, _ = fmt.Fprintln(out, "How are you feeling today?")
	for _, o := range models.Moods() {
		names := make([]string, len(o.Genres))
		for i, g := range o.Genres {
			names[i] = g.Name()
		}
		_, _ = fmt.Fprintf(out, "%v %-12v %-28v %v\n", o.Emoji, o.Mood, o.Description, names)
	}
}
