package protocol

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/share"
	"go.dedis.ch/onet/v3/log"
)

// Member describes one agent of the deployment: its stable id and the
// address its cooperation endpoint answers on.
type Member struct {
	ID      int
	Address string
}

// Peer is one durable channel to a cooperating agent. Implementations reject
// malformed reply points and surface transport failures as
// ErrPeerUnavailable.
type Peer interface {
	ComputeExponent(ctx context.Context, b kyber.Point) (kyber.Point, error)
	Close() error
}

// Dialer opens the durable channel to a peer address. It must not block on
// the network; connection establishment happens on first use.
type Dialer func(address string) (Peer, error)

// Coordinator owns the peer channels of one agent and runs the scatter-gather
// of partial evaluations. Safe for concurrent use by many requests.
type Coordinator struct {
	self    int
	members []Member
	dial    Dialer

	mu      sync.Mutex
	peers   map[int]Peer
	suspect map[int]bool // last interaction failed
}

// NewCoordinator builds a coordinator for the given membership. The members
// list keeps its configured order; the self entry is skipped when selecting
// cooperating peers.
func NewCoordinator(self int, members []Member, dial Dialer) *Coordinator {
	return &Coordinator{
		self:    self,
		members: members,
		dial:    dial,
		peers:   make(map[int]Peer),
		suspect: make(map[int]bool),
	}
}

// Close releases all peer channels.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, p := range c.peers {
		if err := p.Close(); err != nil {
			log.Error("closing peer", id, ":", err)
		}
		delete(c.peers, id)
	}
}

// Gather collects need partial evaluations of b from cooperating peers. It
// issues need calls concurrently under the request deadline; a peer that
// fails before the deadline is replaced by the next untried candidate when
// one exists. Returns ErrQuorumLost when the deadline passes or the
// candidates are exhausted.
func (c *Coordinator) Gather(ctx context.Context, req *Request, b kyber.Point, need int) ([]*share.PubShare, error) {
	candidates := c.ordered()
	if len(candidates) < need {
		return nil, fmt.Errorf("%w: %d peers configured, %d needed", ErrQuorumLost, len(candidates), need)
	}

	type result struct {
		id    int
		point kyber.Point
		err   error
	}
	results := make(chan result, len(candidates))
	launch := func(m Member) {
		go func() {
			p, err := c.peer(m)
			if err != nil {
				results <- result{id: m.ID, err: err}
				return
			}
			e, err := p.ComputeExponent(ctx, b)
			results <- result{id: m.ID, point: e, err: err}
		}()
	}

	next := 0
	inflight := 0
	for ; next < need; next++ {
		launch(candidates[next])
		inflight++
	}

	var gathered []*share.PubShare
	for inflight > 0 {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: gather deadline: %v", ErrQuorumLost, ctx.Err())
		case res := <-results:
			inflight--
			if res.err != nil {
				c.setSuspect(res.id, true)
				log.Lvl2("request", req.ID, "peer", res.id, "failed:", res.err)
				if next < len(candidates) {
					launch(candidates[next])
					next++
					inflight++
					continue
				}
				if len(gathered)+inflight < need {
					return nil, fmt.Errorf("%w: %v", ErrQuorumLost, res.err)
				}
				continue
			}
			c.setSuspect(res.id, false)
			gathered = append(gathered, &share.PubShare{I: res.id - 1, V: res.point})
			if len(gathered) == need {
				return gathered, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: candidates exhausted", ErrQuorumLost)
}

// ordered returns the cooperating candidates in selection order: configured
// member order with peers suspect from their last interaction moved to the
// back.
func (c *Coordinator) ordered() []Member {
	c.mu.Lock()
	defer c.mu.Unlock()
	var healthy, fallback []Member
	for _, m := range c.members {
		if m.ID == c.self {
			continue
		}
		if c.suspect[m.ID] {
			fallback = append(fallback, m)
		} else {
			healthy = append(healthy, m)
		}
	}
	return append(healthy, fallback...)
}

// peer returns the durable channel for m, opening it on first use.
func (c *Coordinator) peer(m Member) (Peer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.peers[m.ID]; ok {
		return p, nil
	}
	p, err := c.dial(m.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", ErrPeerUnavailable, m.Address, err)
	}
	c.peers[m.ID] = p
	return p, nil
}

func (c *Coordinator) setSuspect(id int, v bool) {
	c.mu.Lock()
	c.suspect[id] = v
	c.mu.Unlock()
}

// Retriable reports whether the caller may retry the request at the public
// API.
func Retriable(err error) bool {
	return errors.Is(err, ErrQuorumLost)
}
