package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eduplan/timetable-engine/internal/driver"
	"github.com/eduplan/timetable-engine/internal/dto"
)

// ExitError carries the process exit code a failed command should use:
// 2 for a rejected input document (spec.md §6.3, malformed input), 1 for
// an internal error. A successful solve — whether it reports success or
// failure in its meta — always exits 0.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

var (
	solveInput   string
	solveOutput  string
	solveTimeout time.Duration
	solvePretty  bool
)

func init() {
	solveCmd.Flags().StringVarP(&solveInput, "input", "i", "", "path to the input document (defaults to stdin)")
	solveCmd.Flags().StringVarP(&solveOutput, "output", "o", "", "path to write the solution document (defaults to stdout)")
	solveCmd.Flags().DurationVarP(&solveTimeout, "timeout", "t", 30*time.Second, "cooperative search deadline")
	solveCmd.Flags().BoolVar(&solvePretty, "pretty", false, "pretty-print the output JSON")
	rootCmd.AddCommand(solveCmd)
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve an input document and print the solution document",
	RunE:  runSolve,
}

func runSolve(cmd *cobra.Command, args []string) error {
	raw, err := readInput(solveInput)
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("read input: %w", err)}
	}

	var doc dto.InputDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ExitError{Code: 2, Err: fmt.Errorf("parse input document: %w", err)}
	}

	d := driver.New(zap.NewNop(), nil)
	result, err := d.Solve(&doc, solveTimeout)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}

	body, err := marshalResult(result)
	if err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("encode solution document: %w", err)}
	}
	if err := writeOutput(solveOutput, body); err != nil {
		return &ExitError{Code: 1, Err: fmt.Errorf("write output: %w", err)}
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func marshalResult(doc *dto.SolutionDocument) ([]byte, error) {
	if solvePretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

func writeOutput(path string, body []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(append(body, '\n'))
		return err
	}
	return os.WriteFile(path, body, 0o644)
}
