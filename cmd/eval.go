package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/support-bot/internal/evaluate"
	"github.com/ziadkadry99/support-bot/internal/progress"
)

var evalCmd = &cobra.Command{
	Use:   "eval [cases.yml]",
	Short: "Replay labelled messages and report routing accuracy",
	Long: `Classifies every case in a YAML file and compares the result with the
expected intent (and FAQ question when given). Exits non-zero when accuracy
is below --min-accuracy.`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().Float64("min-accuracy", 0, "fail when accuracy (0-1) is below this value")
	evalCmd.Flags().Bool("quiet", false, "hide the progress bar")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	minAccuracy, _ := cmd.Flags().GetFloat64("min-accuracy")
	quiet, _ := cmd.Flags().GetBool("quiet")

	a, err := buildApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	cases, err := evaluate.LoadCases(args[0])
	if err != nil {
		return err
	}

	var reporter progress.Reporter = progress.Nop{}
	if !quiet {
		reporter = progress.NewReporter(os.Stderr)
	}

	report := evaluate.Run(a.router, cases, reporter)
	report.Write(os.Stdout)

	if report.Accuracy() < minAccuracy {
		return fmt.Errorf("accuracy %.1f%% is below the required %.1f%%", report.Accuracy()*100, minAccuracy*100)
	}
	return nil
}
