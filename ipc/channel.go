package ipc

import (
	"encoding/json"
	"strconv"
	"sync"

	"go.uber.org/zap"
)

// ChannelPrefix is the sentinel prefix the host recognizes as a channel
// reference in command arguments.
const ChannelPrefix = "__CHANNEL__:"

// Channel is an ordered delivery endpoint for host-to-client pushes.
//
// Each push carries a sequence number starting at 0. Messages are dispatched
// to the handler strictly in increasing sequence order: a message arriving
// ahead of the expected sequence is buffered and flushed once prior gaps fill
// in. Messages delivered before a handler is set are dropped.
type Channel struct {
	id uint32

	mu      sync.Mutex
	handler Handler
	nextSeq uint64
	pending map[uint64]json.RawMessage
}

// ID returns the channel's numeric identity, unique for the bridge lifetime.
func (c *Channel) ID() uint32 {
	return c.id
}

// OnMessage replaces the channel's handler. The replacement takes effect on
// the next dispatch; buffered messages go to whatever handler is current at
// drain time.
func (c *Channel) OnMessage(h Handler) {
	c.mu.Lock()
	c.handler = h
	c.mu.Unlock()
}

// Deliver accepts one push from the host. Out-of-order messages are buffered
// until the gap fills; a sequence number below the expected one (a duplicate
// or host bug) is dropped.
func (c *Channel) Deliver(seq uint64, payload json.RawMessage) {
	c.mu.Lock()
	if seq != c.nextSeq {
		if seq > c.nextSeq {
			c.pending[seq] = payload
		} else {
			Logger().Debug("channel dropped regressed sequence",
				zap.Uint32("channel", c.id),
				zap.Uint64("seq", seq),
				zap.Uint64("next", c.nextSeq))
		}
		c.mu.Unlock()
		return
	}

	for {
		h := c.handler
		c.nextSeq++
		c.mu.Unlock()
		if h != nil {
			h(payload)
		}

		c.mu.Lock()
		next, ok := c.pending[c.nextSeq]
		if !ok {
			break
		}
		delete(c.pending, c.nextSeq)
		payload = next
	}
	c.mu.Unlock()
}

// MarshalJSON encodes the channel as its host-visible sentinel string.
func (c *Channel) MarshalJSON() ([]byte, error) {
	return json.Marshal(ChannelPrefix + strconv.FormatUint(uint64(c.id), 10))
}

// channelRegistry maps channel ids to channels for one bridge.
// Id 0 is never assigned.
type channelRegistry struct {
	mu       sync.Mutex
	nextID   uint32
	channels map[uint32]*Channel
}

func newChannelRegistry() *channelRegistry {
	return &channelRegistry{channels: make(map[uint32]*Channel)}
}

func (r *channelRegistry) add(h Handler) *Channel {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	c := &Channel{
		id:      r.nextID,
		handler: h,
		pending: make(map[uint64]json.RawMessage),
	}
	r.channels[c.id] = c
	return c
}

func (r *channelRegistry) get(id uint32) (*Channel, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.channels[id]
	return c, ok
}
