package cli

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/blaisecz/vitals-tracker/internal/aggregate"
	"github.com/blaisecz/vitals-tracker/internal/domain"
	"github.com/spf13/cobra"
)

var (
	summaryDate       string
	timezone          string
	sleepNeed         float64
	previousHRV       float64
	previousNocturnal float64
	previousRestHR    float64
	showIngest        bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Compute the daily summary for a batch",
		Long:  "Buffer the batch into an empty day and print its summary. Previous-day values are carried forward for missing metrics.",
		Run:   runSummarize,
	}

	cmd.Flags().StringVar(&summaryDate, "date", "", "Calendar day of the batch (YYYY-MM-DD)")
	cmd.Flags().StringVar(&timezone, "tz", "UTC", "IANA timezone the calendar day is taken in")
	cmd.Flags().Float64Var(&sleepNeed, "sleep-need", aggregate.DefaultSleepNeedHours, "Sleep need in hours")
	cmd.Flags().Float64Var(&previousHRV, "previous-hrv", 0, "Previous day's HRV")
	cmd.Flags().Float64Var(&previousNocturnal, "previous-nocturnal-hr", 0, "Previous day's nocturnal heart rate")
	cmd.Flags().Float64Var(&previousRestHR, "previous-resting-hr", 0, "Previous day's resting heart rate")
	cmd.Flags().BoolVar(&showIngest, "show-ingest", false, "Report accepted, duplicate and ignored counts on stderr")
	_ = cmd.MarkFlagRequired("date")

	RootCmd.AddCommand(cmd)
}

func runSummarize(cmd *cobra.Command, args []string) {
	in, err := openInput(cmd.InOrStdin())
	if err != nil {
		exitErr("open input", err)
	}
	defer in.Close()

	prev := domain.PreviousValues{
		HRV:         changedValue(cmd, "previous-hrv", previousHRV),
		NocturnalHR: changedValue(cmd, "previous-nocturnal-hr", previousNocturnal),
		RestingHR:   changedValue(cmd, "previous-resting-hr", previousRestHR),
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		exitErr("load timezone", err)
	}

	resp, result, err := summarize(in, aggregate.New(threshold, minSedentary), summaryDate, loc, aggregate.SummaryInput{
		SleepNeedHours: sleepNeed,
		Previous:       prev,
	})
	if err != nil {
		exitErr("summarize", err)
	}

	if showIngest {
		fmt.Fprintf(cmd.ErrOrStderr(), "accepted=%d duplicates=%d ignored=%d buffered=%d\n",
			result.Accepted, result.Duplicates, result.Ignored, result.Buffered)
	}

	out := cmd.OutOrStdout()
	if formatFlag == "text" {
		writeSummaryText(out, resp)
		return
	}
	if err := writeJSON(out, resp); err != nil {
		exitErr("write output", err)
	}
}

func summarize(r io.Reader, a *aggregate.Aggregator, date string, loc *time.Location, in aggregate.SummaryInput) (domain.SummaryResponse, domain.IngestResult, error) {
	window, err := domain.IngestWindow(date, loc)
	if err != nil {
		return domain.SummaryResponse{}, domain.IngestResult{}, err
	}
	flags, result, err := loadFlags(r, window)
	if err != nil {
		return domain.SummaryResponse{}, result, err
	}
	summary := a.Summarize(date, flags, in)
	return summary.ToResponse(), result, nil
}

func changedValue(cmd *cobra.Command, name string, v float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func writeSummaryText(w io.Writer, s domain.SummaryResponse) {
	line := func(name string, v *float64, unit string) {
		if v == nil {
			fmt.Fprintf(w, "%-18s -\n", name)
			return
		}
		fmt.Fprintf(w, "%-18s %.2f %s\n", name, *v, unit)
	}

	fmt.Fprintf(w, "%-18s %s\n", "date", s.Date)
	line("hrv", s.HRV, "ms")
	line("nocturnal_hr", s.NocturnalHR, "bpm")
	line("resting_hr", s.RestingHR, "bpm")
	line("total_sleep", s.TotalSleepSeconds, "s")
	line("sleep_debt", s.SleepDebtHours, "h")
	line("respiratory_rate", s.RespiratoryRate, "/min")
	line("steps", s.StepCount, "")

	var imputed []string
	for k, v := range s.Imputed {
		if v {
			imputed = append(imputed, k)
		}
	}
	if len(imputed) > 0 {
		sort.Strings(imputed)
		fmt.Fprintf(w, "%-18s %v\n", "imputed", imputed)
	}
}
