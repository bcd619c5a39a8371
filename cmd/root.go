package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/config"
	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/scheduler"
	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "agency-scheduler",
	Short: "Turn natural-language time expressions into persisted jobs",
}

func Execute(st *store.FileStore, svc *scheduler.Service, cfg *config.SchedulerConfig) {
	rootCmd.AddCommand(CreateCmd(svc))
	rootCmd.AddCommand(ParseCmd(svc))
	rootCmd.AddCommand(ListCmd(st))
	rootCmd.AddCommand(CancelCmd(st))
	rootCmd.AddCommand(HistoryCmd(st))
	rootCmd.AddCommand(ServeCmd(svc, cfg))

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
