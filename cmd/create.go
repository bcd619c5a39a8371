package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/job"
	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/scheduler"
)

func CreateCmd(svc *scheduler.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <message>",
		Short: "Analyze a message and persist the resulting job",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _ := cmd.Flags().GetString("session")
			channel, _ := cmd.Flags().GetString("channel")
			user, _ := cmd.Flags().GetString("user")

			res := svc.AnalyzeAndCreate(strings.Join(args, " "), job.Context{
				SessionTarget: session,
				Channel:       channel,
				UserID:        user,
			})
			printResult(res)
			if res.Err != "" {
				os.Exit(1)
			}
			return nil
		},
	}
	cmd.Flags().String("session", "", "Session target for the job")
	cmd.Flags().String("channel", "cli", "Originating channel")
	cmd.Flags().String("user", "", "User identifier")
	return cmd
}

func ParseCmd(svc *scheduler.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <message>",
		Short: "Analyze a message without persisting anything",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printResult(svc.Analyze(strings.Join(args, " ")))
			return nil
		},
	}
}

func printResult(res scheduler.Result) {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		fmt.Println(res.Message)
		return
	}
	fmt.Println(string(data))
}
