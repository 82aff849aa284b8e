// Package cli implements the vitalsctl commands, which run the daily
// aggregation over a batch file without a database.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/blaisecz/vitals-tracker/internal/aggregate"
	"github.com/blaisecz/vitals-tracker/internal/api/validation"
	"github.com/blaisecz/vitals-tracker/internal/domain"
	"github.com/spf13/cobra"
)

var (
	inputPath    string
	formatFlag   string
	threshold    float64
	minSedentary time.Duration
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "vitalsctl",
	Short: "Offline daily vitals aggregation",
	Long:  "Summarize a day of readings from a JSON batch (the body accepted by POST /v1/users/{userId}/days/{date}/readings).",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "-", "Batch file, or - for stdin")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().Float64Var(&threshold, "threshold", aggregate.DefaultSedentaryThresholdStepsPerHour, "Sedentary threshold in steps per hour")
	RootCmd.PersistentFlags().DurationVar(&minSedentary, "min-sedentary", aggregate.DefaultSedentaryMinimumDuration, "Shortest sedentary window")
}

func openInput(stdin io.Reader) (io.ReadCloser, error) {
	if inputPath == "" || inputPath == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(inputPath)
}

// loadFlags decodes and validates a batch, then buffers it into fresh flags.
// Readings starting outside window are ignored unless window is zero.
func loadFlags(r io.Reader, window domain.Interval) (domain.DailyFlags, domain.IngestResult, error) {
	var req domain.IngestReadingsRequest
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return domain.DailyFlags{}, domain.IngestResult{}, fmt.Errorf("parse batch: %w", err)
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		return domain.DailyFlags{}, domain.IngestResult{}, fmt.Errorf("%w: %s %s", domain.ErrInvalidInput, fieldErrors[0].Field, fieldErrors[0].Message)
	}

	var flags domain.DailyFlags
	result, _, _ := flags.Absorb(&req, window)
	return flags, result, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
