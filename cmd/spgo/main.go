package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/statepath/spgo/internal/calculation"
	"github.com/statepath/spgo/internal/config"
	"github.com/statepath/spgo/internal/dataset"
	"github.com/statepath/spgo/internal/output"
	"github.com/statepath/spgo/internal/recorder"
	"github.com/statepath/spgo/internal/scenario"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "spgo %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "spgo",
	Short: "State viability calculator",
	Long:  "Year-by-year household financial projections across U.S. states: home purchase, debt payoff, and viability ratings.",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Run the state viability analysis for a household scenario",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scn, engine := loadScenario(cmd, args[0])

		dataPath, _ := cmd.Flags().GetString("data")
		data, err := dataset.Load(dataPath)
		if err != nil {
			log.Fatal(err)
		}

		orch := scenario.NewOrchestrator(engine, data)
		results, err := orch.Run(context.Background(), &scn.Inputs)
		if err != nil {
			log.Fatal(err)
		}

		var rec recorder.Recorder = recorder.NewNoopRecorder()
		if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
			rec, err = recorder.NewSQLiteRecorder(dbPath)
			if err != nil {
				log.Fatal(err)
			}
		}
		defer rec.Close()
		snap := &recorder.RunSnapshot{
			HouseholdType:     scn.Inputs.HouseholdType,
			Strategy:          scn.Inputs.ResolvedStrategy(),
			HomeSize:          scn.Inputs.HomeSize,
			AllocationPercent: scn.Inputs.AllocationPercent.StringFixed(4),
			Results:           results,
		}
		if err := rec.RecordRun(snap); err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(outputFormat)
		if f == nil {
			log.Fatalf("unknown output format: %s (valid: console, json, csv)", outputFormat)
		}
		out, err := f.Format(results)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(out))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a scenario file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Scenario file %s is valid\n", args[0])
	},
}

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "List the states in the dataset",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		dataPath, _ := cmd.Flags().GetString("data")
		data, err := dataset.Load(dataPath)
		if err != nil {
			log.Fatal(err)
		}
		for _, name := range data.StateNames() {
			sd := data.Lookup(name)
			fmt.Printf("%-24s %s\n", name, sd.Abbr)
		}
	},
}

var occupationsCmd = &cobra.Command{
	Use:   "occupations",
	Short: "List the occupation codes the dataset carries salaries for",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, code := range dataset.Occupations {
			fmt.Println(code)
		}
	},
}

var breakdownCmd = &cobra.Command{
	Use:   "breakdown [input-file] [state]",
	Short: "Show the year-by-year projection for one state",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		scn, engine := loadScenario(cmd, args[0])

		dataPath, _ := cmd.Flags().GetString("data")
		data, err := dataset.Load(dataPath)
		if err != nil {
			log.Fatal(err)
		}
		sd := data.Lookup(args[1])
		if sd == nil {
			log.Fatalf("unknown state %q", args[1])
		}

		result := engine.CalculateStateResult(&scn.Inputs, sd)
		years, _ := cmd.Flags().GetInt("years")
		rows := output.BuildBreakdown(&scn.Inputs, sd, engine.Assumptions, &result, years)
		fmt.Print(string(output.FormatBreakdown(sd.Name, rows)))
	},
}

var homeSizesCmd = &cobra.Command{
	Use:   "home-sizes [input-file] [state]",
	Short: "Compare outcomes across home-size tiers for one state",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		scn, engine := loadScenario(cmd, args[0])

		dataPath, _ := cmd.Flags().GetString("data")
		data, err := dataset.Load(dataPath)
		if err != nil {
			log.Fatal(err)
		}
		sd := data.Lookup(args[1])
		if sd == nil {
			log.Fatalf("unknown state %q", args[1])
		}

		cmp := output.CompareHomeSizes(engine, &scn.Inputs, sd)
		fmt.Print(string(output.FormatHomeSizeComparison(cmp)))
	},
}

// loadScenario parses the input file and builds an engine configured with the
// scenario's assumptions and the debug flag.
func loadScenario(cmd *cobra.Command, inputFile string) (*config.ScenarioFile, *calculation.CalculationEngine) {
	parser := config.NewInputParser()
	scn, err := parser.LoadFromFile(inputFile)
	if err != nil {
		log.Fatal(err)
	}

	engine := calculation.NewCalculationEngineWithAssumptions(scn.Assumptions)
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	return scn, engine
}

func init() {
	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	calculateCmd.Flags().String("data", "data/states.yaml", "Path to the state dataset file")
	calculateCmd.Flags().String("db", "", "Record the run to a SQLite database at this path")
	calculateCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	statesCmd.Flags().String("data", "data/states.yaml", "Path to the state dataset file")

	breakdownCmd.Flags().String("data", "data/states.yaml", "Path to the state dataset file")
	breakdownCmd.Flags().IntP("years", "y", 30, "Number of years to show")
	breakdownCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	homeSizesCmd.Flags().String("data", "data/states.yaml", "Path to the state dataset file")
	homeSizesCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(statesCmd)
	rootCmd.AddCommand(occupationsCmd)
	rootCmd.AddCommand(breakdownCmd)
	rootCmd.AddCommand(homeSizesCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
