package store

import (
	"fmt"
	"strings"

	"github.com/canyildizhan12-a11y/agent-agency-system-sub000/internal/job"
)

// renderArtifact produces the companion shell script for a job. The script
// logs its own invocation, hands the record to the external runner, and for
// one-shot jobs removes the record and itself after firing. Recurring
// artifacts persist until the job is cancelled.
func renderArtifact(spec job.Spec, runnerCmd string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#!/bin/sh\n")
	fmt.Fprintf(&b, "# job %s (%s, %s)\n", spec.ID, spec.Type, spec.Action.Type)
	fmt.Fprintf(&b, "set -u\n")
	fmt.Fprintf(&b, "DIR=\"$(cd \"$(dirname \"$0\")\" && pwd)\"\n")
	fmt.Fprintf(&b, "RECORD=\"$DIR/%s.json\"\n", spec.ID)
	fmt.Fprintf(&b, "printf '%%s fired %s %s\\n' \"$(date -u +%%Y-%%m-%%dT%%H:%%M:%%SZ)\" >> \"$DIR/invocations.log\"\n",
		spec.ID, spec.Action.Type)
	fmt.Fprintf(&b, "%s --job \"$RECORD\" --action %s\n", runnerCmd, spec.Action.Type)
	if spec.Type == job.TypeOneTime {
		fmt.Fprintf(&b, "rm -f -- \"$RECORD\" \"$0\"\n")
	}
	return b.String()
}
