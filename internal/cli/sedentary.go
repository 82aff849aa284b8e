package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/blaisecz/vitals-tracker/internal/aggregate"
	"github.com/blaisecz/vitals-tracker/internal/domain"
	"github.com/spf13/cobra"
)

type sedentaryWindow struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Minutes float64   `json:"minutes"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "sedentary",
		Short: "List sedentary windows in a batch",
		Long:  "Sweep the batch's step buckets for low-activity windows outside sleep, using --threshold and --min-sedentary.",
		Run:   runSedentary,
	}

	RootCmd.AddCommand(cmd)
}

func runSedentary(cmd *cobra.Command, args []string) {
	in, err := openInput(cmd.InOrStdin())
	if err != nil {
		exitErr("open input", err)
	}
	defer in.Close()

	windows, err := sedentary(in, aggregate.New(threshold, minSedentary))
	if err != nil {
		exitErr("sedentary", err)
	}

	out := cmd.OutOrStdout()
	if formatFlag == "text" {
		for _, w := range windows {
			fmt.Fprintf(out, "%s  %s  %5.0f min\n", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339), w.Minutes)
		}
		return
	}
	if err := writeJSON(out, windows); err != nil {
		exitErr("write output", err)
	}
}

func sedentary(r io.Reader, a *aggregate.Aggregator) ([]sedentaryWindow, error) {
	flags, _, err := loadFlags(r, domain.Interval{})
	if err != nil {
		return nil, err
	}

	windows := []sedentaryWindow{}
	for _, iv := range a.Sedentary(&flags) {
		windows = append(windows, sedentaryWindow{Start: iv.Start, End: iv.End, Minutes: iv.Duration().Minutes()})
	}
	return windows, nil
}
