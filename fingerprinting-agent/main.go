// fingerprinting-agent runs a full agent: the public FingerprintService and,
// in cooperative mode, the agent-to-agent CooperationService.
package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/urfave/cli"
	"go.dedis.ch/onet/v3/log"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/outbe/fingerprinting/config"
	"github.com/outbe/fingerprinting/protocol"
	fpv1 "github.com/outbe/fingerprinting/rpc/v1"
	"github.com/outbe/fingerprinting/secretsharing"
	"github.com/outbe/fingerprinting/service"
)

var cliApp = cli.NewApp()

var gitTag = "dev"

func init() {
	cliApp.Name = "fingerprinting-agent"
	cliApp.Usage = "Run the fingerprint agent"
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
	cliApp.Action = runAgent
}

func main() {
	err := cliApp.Run(os.Args)
	log.ErrFatal(err)
}

func runAgent(c *cli.Context) error {
	path := c.String("config")
	if path == "" {
		return errors.New("please give --config")
	}
	log.Lvl1("loading configuration from", path)
	conf, err := config.Load(path)
	if err != nil {
		return err
	}

	var engine protocol.Engine
	var coopService *service.CooperationService

	switch conf.FingerprintService.Type {
	case config.TypeNaive:
		log.Warn("starting in Naive mode - the master secret is held in-process, development only")
		secret, err := secretsharing.DecodeScalar(conf.FingerprintService.Secret)
		if err != nil {
			return err
		}
		engine, err = protocol.NewNaive(secret)
		if err != nil {
			return err
		}

	case config.TypeCooperative:
		s := conf.FingerprintService
		log.Lvlf1("starting in Cooperative mode: agent %d of %d, threshold %d",
			s.AgentID, s.Agents, s.Threshold)
		shard, err := secretsharing.DecodeScalar(s.SecretShard)
		if err != nil {
			return err
		}
		members := make([]protocol.Member, len(s.Members))
		for i, m := range s.Members {
			members[i] = protocol.Member{ID: m.AgentID, Address: m.Address}
		}
		coord := protocol.NewCoordinator(s.AgentID, members, service.DialPeer)
		engine, err = protocol.NewCooperative(s.AgentID, shard, s.Threshold, s.Agents, coord)
		if err != nil {
			return err
		}
		coopService = service.NewCooperationService(shard)
	}

	fpService := service.NewFingerprintService(engine,
		time.Duration(conf.FingerprintService.Deadline))

	var g errgroup.Group

	publicAddr := fmt.Sprintf("%s:%d", conf.GRPC.Address, conf.GRPC.Port)
	publicLis, err := net.Listen("tcp", publicAddr)
	if err != nil {
		return fmt.Errorf("listening on %s: %v", publicAddr, err)
	}
	publicSrv := grpc.NewServer()
	fpv1.RegisterFingerprintServiceServer(publicSrv, fpService)
	g.Go(func() error {
		log.Lvl1("fingerprint service listening on", publicAddr)
		return publicSrv.Serve(publicLis)
	})

	if coopService != nil {
		agentAddr := fmt.Sprintf("%s:%d", conf.AgentGRPC.Host, conf.AgentGRPC.Port)
		agentLis, err := net.Listen("tcp", agentAddr)
		if err != nil {
			return fmt.Errorf("listening on %s: %v", agentAddr, err)
		}
		agentSrv := grpc.NewServer()
		fpv1.RegisterCooperationServiceServer(agentSrv, coopService)
		g.Go(func() error {
			log.Lvl1("cooperation service listening on", agentAddr)
			return agentSrv.Serve(agentLis)
		})
	}

	return g.Wait()
}
