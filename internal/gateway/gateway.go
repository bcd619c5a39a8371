// Package gateway connects the message bus to the scheduler: every inbound
// chat message is analyzed for scheduling intent and the structured result
// is rendered back onto the bus as an outbound reply.
package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/bus"
	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/job"
	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/scheduler"
)

type Gateway struct {
	bus *bus.Bus
	svc *scheduler.Service
	log *slog.Logger
}

func New(msgBus *bus.Bus, svc *scheduler.Service, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{bus: msgBus, svc: svc, log: logger}
}

// Run consumes inbound messages until ctx is cancelled, publishing one
// outbound reply per message. Detection misses still produce a reply so
// callers can render "no time found" uniformly.
func (g *Gateway) Run(ctx context.Context) error {
	for {
		msg, err := g.bus.ConsumeInbound(ctx)
		if err != nil {
			return err
		}

		res := g.svc.AnalyzeAndCreate(msg.Content, job.Context{
			SessionTarget: msg.SessionKey(),
			Channel:       msg.Channel,
			UserID:        msg.SenderID,
		})
		if res.Detected {
			g.log.Info("message analyzed", "channel", msg.Channel, "kind", res.Kind, "job", res.JobID)
		}

		kind := "text"
		if res.Err != "" {
			kind = "error"
		}
		g.bus.PublishOutbound(bus.OutboundMessage{
			Channel: msg.Channel,
			ChatID:  msg.ChatID,
			Content: render(res),
			Type:    kind,
			Metadata: map[string]string{
				"source": "scheduler",
				"job_id": res.JobID,
			},
		})
	}
}

// render turns a Result into a user-facing reply line.
func render(res scheduler.Result) string {
	switch {
	case !res.Detected:
		return res.Message
	case res.Err != "":
		return fmt.Sprintf("%s: %s", res.Message, res.Err)
	default:
		return fmt.Sprintf("%s [job %s]", res.Message, res.JobID)
	}
}
