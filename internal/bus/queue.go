package bus

import (
	"context"
	"sync"
)

// subscription binds a reply handler to a channel name. An empty channel
// matches every outbound message, which the CLI uses to audit all replies.
type subscription struct {
	channel string
	fn      func(OutboundMessage)
}

func (s subscription) matches(msg OutboundMessage) bool {
	return s.channel == "" || s.channel == msg.Channel
}

// Bus carries chat traffic between channel adapters and the scheduler
// gateway. The shape is deliberately narrow: exactly one consumer drains
// inbound messages (the gateway loop), while outbound replies fan out to
// every matching subscription.
type Bus struct {
	inbound  chan InboundMessage
	outbound chan OutboundMessage

	mu        sync.RWMutex
	subs      []subscription
	closeOnce sync.Once
}

// New creates a Bus whose inbound and outbound queues buffer up to buffer
// messages each. A non-positive buffer falls back to 100.
func New(buffer int) *Bus {
	if buffer <= 0 {
		buffer = 100
	}
	return &Bus{
		inbound:  make(chan InboundMessage, buffer),
		outbound: make(chan OutboundMessage, buffer),
	}
}

// PublishInbound enqueues a chat message for the gateway. Blocks when the
// inbound buffer is full.
func (b *Bus) PublishInbound(msg InboundMessage) {
	b.inbound <- msg
}

// PublishOutbound enqueues a scheduling reply for delivery.
func (b *Bus) PublishOutbound(msg OutboundMessage) {
	b.outbound <- msg
}

// ConsumeInbound hands the next inbound message to the gateway, blocking
// until one arrives, the bus is closed, or ctx is cancelled.
func (b *Bus) ConsumeInbound(ctx context.Context) (InboundMessage, error) {
	select {
	case msg, ok := <-b.inbound:
		if !ok {
			return InboundMessage{}, context.Canceled
		}
		return msg, nil
	case <-ctx.Done():
		return InboundMessage{}, ctx.Err()
	}
}

// Subscribe registers fn for outbound replies on the named channel. Pass
// an empty channel to receive replies for all channels.
func (b *Bus) Subscribe(channel string, fn func(OutboundMessage)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, subscription{channel: channel, fn: fn})
}

// DispatchOutbound delivers replies to subscribers until ctx is cancelled
// or the bus is closed. Intended to run as a dedicated goroutine next to
// the gateway loop.
func (b *Bus) DispatchOutbound(ctx context.Context) {
	for {
		select {
		case msg, ok := <-b.outbound:
			if !ok {
				return
			}
			b.deliver(msg)
		case <-ctx.Done():
			return
		}
	}
}

func (b *Bus) deliver(msg OutboundMessage) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, s := range b.subs {
		if s.matches(msg) {
			s.fn(msg)
		}
	}
}

// Close shuts both queues. Safe to call more than once; publishes after
// Close panic, so stop producers first.
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.inbound)
		close(b.outbound)
	})
}
