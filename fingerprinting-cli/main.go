// fingerprinting-cli generates the share material of a deployment: a random
// master secret and one Shamir share per agent, printed in Base58. The
// secret and the polynomial coefficients are wiped before exit; this process
// is the only place the master secret ever exists in the clear.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
	"go.dedis.ch/onet/v3/log"

	"github.com/outbe/fingerprinting"
	"github.com/outbe/fingerprinting/secretsharing"
)

var cliApp = cli.NewApp()

var gitTag = "dev"

func init() {
	cliApp.Name = "fingerprinting-cli"
	cliApp.Usage = "Generate a master secret and its agent shares"
	cliApp.Version = gitTag
	cliApp.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "threshold, t",
			Usage: "number of agents needed to compute a fingerprint",
		},
		cli.IntFlag{
			Name:  "agents, n",
			Usage: "total number of agents",
		},
		cli.IntFlag{
			Name:  "debug, d",
			Value: 0,
			Usage: "debug-level: 1 for terse, 5 for maximal",
		},
	}
	cliApp.Before = func(c *cli.Context) error {
		log.SetDebugVisible(c.Int("debug"))
		return nil
	}
	cliApp.Action = generate
}

func main() {
	err := cliApp.Run(os.Args)
	log.ErrFatal(err)
}

func generate(c *cli.Context) error {
	threshold := c.Int("threshold")
	agents := c.Int("agents")

	secret, shares, err := secretsharing.Generate(threshold, agents,
		fingerprinting.Suite.RandomStream())
	if err != nil {
		return err
	}
	defer secretsharing.Wipe(secret)

	enc, err := secretsharing.EncodeScalar(secret)
	if err != nil {
		return err
	}
	fmt.Println("Random secret:", enc)

	for _, s := range shares {
		enc, err := secretsharing.EncodeScalar(s.V)
		if err != nil {
			return err
		}
		fmt.Printf("== share %d: %s\n", s.I+1, enc)
		secretsharing.Wipe(s.V)
	}
	return nil
}
