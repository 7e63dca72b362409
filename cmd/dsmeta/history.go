package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/dsmeta"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	extractions, err := deps.History.RecentExtractions(deps.Ctx, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", dsmeta.ErrorMessage(err))
		return err
	}

	if len(extractions) == 0 {
		fmt.Fprintln(deps.Stdout, "No extractions recorded. Use 'dsmeta extract' to run one.")
		return nil
	}

	for _, e := range extractions {
		fmt.Fprintf(deps.Stdout, "%s  %-8s  %5.1f  %s\n",
			e.CreatedAt.Format(time.RFC3339), e.Mode, e.QualityScore, e.URL)
	}

	return nil
}
