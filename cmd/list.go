package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/schedule"
	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/store"
)

func ListCmd(st *store.FileStore) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored jobs, soonest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := st.List()
			if err != nil {
				return fmt.Errorf("failed to list jobs: %w", err)
			}
			if len(jobs) == 0 {
				fmt.Println("No jobs stored.")
				return nil
			}

			fmt.Println("ID\tTYPE\tTARGET\tNEXT\tSCHEDULE\tACTION")
			now := time.Now()
			for _, j := range jobs {
				next := "-"
				if t, err := schedule.NextAfter(j.Schedule, now); err == nil && !t.IsZero() {
					next = t.Format(time.RFC3339)
				}
				fmt.Printf("%s\t%s\t%s\t%s\t%q\t%s\n",
					j.ID, j.Type, j.TargetTime.Format(time.RFC3339), next, j.Schedule, j.Action.Payload.Message)
			}
			return nil
		},
	}
}

func CancelCmd(st *store.FileStore) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <job-id>",
		Short: "Cancel a job and remove its artifact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := st.Cancel(args[0])
			if err != nil {
				return fmt.Errorf("failed to cancel job: %w", err)
			}
			if removed {
				fmt.Printf("Job %s cancelled.\n", args[0])
			} else {
				fmt.Printf("Job %s not found (already gone).\n", args[0])
			}
			return nil
		},
	}
}

func HistoryCmd(st *store.FileStore) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the job creation audit log, oldest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := st.History()
			if err != nil {
				return fmt.Errorf("failed to read history: %w", err)
			}
			if len(entries) == 0 {
				fmt.Println("No history recorded.")
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%s\t%s\t%s\t%q\t%s\n",
					e.Timestamp.Format(time.RFC3339), e.JobID, e.Type, e.Schedule, e.Action)
			}
			return nil
		},
	}
}
