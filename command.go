package unitcheck

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// ErrRunFailed is returned by the test command when the run contains at
// least one failed or errored test. Callers map it to a nonzero exit
// status.
var ErrRunFailed = errors.New("test run failed")

// NewCommand generates a new CLI for a test program.
func NewCommand(
	name string,
	description string,
	version string,
) *cobra.Command {

	cobra.OnInitialize(func() {
		viper.SetEnvPrefix(name)
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

		logger, err := zap.NewProduction()
		if err == nil {
			zap.ReplaceGlobals(logger)
		}
	})

	var rootCmd = &cobra.Command{
		Use:   name,
		Short: description,
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Prints the version and exit.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var cmdList = &cobra.Command{
		Use:           "list",
		Aliases:       []string{"ls"},
		Short:         "List registered tests.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return viper.BindPFlags(cmd.Flags())
		},
	}

	var cmdListTests = &cobra.Command{
		Use:           "tests",
		Short:         "List registered tests.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return listTests(filterSuites())
		},
	}

	cmdListTests.Flags().StringSliceP("id", "i", nil, "Only list tests with the given identifier")
	cmdListTests.Flags().StringSliceP("tag", "t", nil, "Only list tests with the given tags")
	cmdListTests.Flags().BoolP("match-all", "M", false, "Match all tags specified")

	var cmdListSuites = &cobra.Command{
		Use:           "suites",
		Short:         "List registered suites.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return listSuites(filterSuites())
		},
	}

	cmdListSuites.Flags().StringSliceP("suite", "Z", nil, "Only list suites specified")

	cmdList.AddCommand(cmdListTests, cmdListSuites)

	var cmdRunTests = &cobra.Command{
		Use:           "test",
		Aliases:       []string{"run"},
		Short:         "Run the registered tests",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {

			ctx, cancel := context.WithTimeout(context.Background(), viper.GetDuration("limit"))
			defer cancel()

			suites := filterSuites()

			total := 0
			for _, suite := range suites {
				total += len(suite.tests)
			}

			run := newTestRunner(
				os.Stdout,
				viper.GetBool("verbose"),
				viper.GetBool("color"),
				viper.GetBool("stop-on-failure"),
				viper.GetDuration("limit"),
			).Run(ctx, suites)

			if len(run.Results) < total && ctx.Err() != nil {
				zap.L().Warn("Run interrupted before all tests completed",
					zap.Int("executed", len(run.Results)),
					zap.Int("registered", total),
				)
			}

			if !run.OK() {
				return ErrRunFailed
			}

			return nil
		},
	}

	cmdRunTests.Flags().BoolP("verbose", "v", false, "Report each test by name instead of a single marker")
	cmdRunTests.Flags().Bool("color", false, "Colorize markers and summary")
	cmdRunTests.Flags().DurationP("limit", "l", 20*time.Minute, "Execution time limit")
	cmdRunTests.Flags().StringSliceP("suite", "Z", nil, "Only run suites specified")
	cmdRunTests.Flags().StringSliceP("id", "i", nil, "Only run tests with the given identifier")
	cmdRunTests.Flags().StringSliceP("tag", "t", nil, "Only run tests with the given tags")
	cmdRunTests.Flags().BoolP("match-all", "M", false, "Match all tags specified")
	cmdRunTests.Flags().BoolP("stop-on-failure", "X", false, "Stop on the first failed test")

	rootCmd.AddCommand(
		versionCmd,
		cmdList,
		cmdRunTests,
	)

	return rootCmd
}

// runSuite returns true if we should consider the suite for running.
func runSuite(s *Suite, names []string) bool {

	if len(names) == 0 {
		return true
	}

	for _, name := range names {
		if name == s.Name {
			return true
		}
	}

	return false
}

// filterSuites narrows the registry based on the suite, id and tag flags.
func filterSuites() []*Suite {

	s := []*Suite{}

	names := viper.GetStringSlice("suite")
	for _, suite := range mainSuites {

		if !runSuite(suite, names) {
			continue
		}

		ids := viper.GetStringSlice("id")
		if len(ids) > 0 {
			suite = suite.testsWithIDs(ids)
		} else if tags := viper.GetStringSlice("tag"); len(tags) > 0 {
			suite = suite.testsWithTags(viper.GetBool("match-all"), tags)
		}

		if len(suite.tests) > 0 {
			s = append(s, suite)
		}
	}

	return s
}
