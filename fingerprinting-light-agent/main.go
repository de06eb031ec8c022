// fingerprinting-light-agent runs only the agent-to-agent CooperationService:
// it answers partial-evaluation calls with its share and never initiates a
// fingerprint itself.
package main

import (
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/urfave/cli"
	"go.dedis.ch/onet/v3/log"
	"google.golang.org/grpc"

	"github.com/outbe/fingerprinting/config"
	fpv1 "github.com/outbe/fingerprinting/rpc/v1"
	"github.com/outbe/fingerprinting/secretsharing"
	"github.com/outbe/fingerprinting/service"
)

var cliApp = cli.NewApp()

var gitTag = "dev"

func init() {
	cliApp.Name = "fingerprinting-light-agent"
	cliApp.Usage = "Run a cooperation-only fingerprint agent"
	cliApp.Version = gitTag
	cliApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "path to the agent configuration file",
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
	cliApp.Action = runLightAgent
}

func main() {
	err := cliApp.Run(os.Args)
	log.ErrFatal(err)
}

func runLightAgent(c *cli.Context) error {
	path := c.String("config")
	if path == "" {
		return errors.New("please give --config")
	}
	log.Lvl1("loading configuration from", path)
	conf, err := config.LoadLight(path)
	if err != nil {
		return err
	}

	shard, err := secretsharing.DecodeScalar(conf.FingerprintService.SecretShard)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", conf.AgentGRPC.Host, conf.AgentGRPC.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %v", addr, err)
	}
	srv := grpc.NewServer()
	fpv1.RegisterCooperationServiceServer(srv, service.NewCooperationService(shard))
	log.Lvl1("cooperation service listening on", addr)
	return srv.Serve(lis)
}
