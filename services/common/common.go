package common

import (
	"strings"

	"github.com/urfave/cli"
)

var (
	DomainFlag         = "domain"
	SessionSecretFlag  = "secret"
	AllowedOriginsFlag = "allowed-origins"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	f = append(f,
		cli.StringFlag{
			Name:   DomainFlag,
			Usage:  "domain",
			Value:  "http://localhost:8080",
			EnvVar: "DOMAIN",
		},
		cli.StringFlag{
			Name:   SessionSecretFlag,
			Usage:  "session secret",
			Value:  "secret123",
			EnvVar: "SESSION_SECRET",
		},
		cli.StringFlag{
			Name:   AllowedOriginsFlag,
			Usage:  "comma separated origins allowed to call the api",
			Value:  "*",
			EnvVar: "ALLOWED_ORIGINS",
		},
	)

	return f
}

// AllowedOrigins splits the origins flag, defaulting to any origin.
func AllowedOrigins(c *cli.Context) []string {
	var res []string
	for _, o := range strings.Split(c.String(AllowedOriginsFlag), ",") {
		if o = strings.TrimSpace(o); o != "" {
			res = append(res, o)
		}
	}
	if len(res) == 0 {
		return []string{"*"}
	}
	return res
}
