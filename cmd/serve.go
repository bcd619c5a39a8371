package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/bus"
	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/config"
	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/gateway"
	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/scheduler"
)

// ServeCmd runs a line-oriented gateway loop: each stdin line is published
// onto the bus as an inbound message, analyzed, and the reply printed.
func ServeCmd(svc *scheduler.Service, cfg *config.SchedulerConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Read messages from stdin and reply with scheduling results",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			msgBus := bus.New(cfg.BusBuffer)
			msgBus.Subscribe("cli", func(msg bus.OutboundMessage) {
				fmt.Println(msg.Content)
			})

			gw := gateway.New(msgBus, svc, nil)
			go msgBus.DispatchOutbound(ctx)
			go func() {
				_ = gw.Run(ctx)
			}()

			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				line := scanner.Text()
				if line == "" {
					continue
				}
				msgBus.PublishInbound(bus.InboundMessage{
					Channel:  "cli",
					SenderID: "local",
					ChatID:   "stdin",
					Content:  line,
				})
			}
			return scanner.Err()
		},
	}
}
