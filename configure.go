package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func configure(app *cli.App) {
	app.Flags = append(app.Flags,
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "log level",
			Value:  "info",
			EnvVar: "LOG_LEVEL",
		},
	)
	app.Before = func(c *cli.Context) error {
		lvl, err := log.ParseLevel(c.GlobalString("log-level"))
		if err != nil {
			return err
		}
		log.SetLevel(lvl)
		return nil
	}
	serveCMD := makeServeCMD()
	recommendCMD := makeRecommendCMD()
	moodsCMD := makeMoodsCMD()
	pickCMD := makePickCMD()
	app.Commands = []cli.Command{serveCMD, recommendCMD, moodsCMD, pickCMD}
}
