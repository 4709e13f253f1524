package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/holoviz/hvsampledata"
)

// fetchResult is the JSON payload of a successful fetch.
type fetchResult struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// NewFetchCommand creates the fetch command.
func NewFetchCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		totalPoints int
		all         bool
	)

	cmd := &cobra.Command{
		Use:   "fetch <dataset>... | --all",
		Short: "Materialize datasets into the cache without loading them",
		Long: `Materialize datasets into the cache directory and print their paths.

Bundled datasets are copied out of the binary, remote datasets are
downloaded, and generated datasets are synthesized. Running fetch ahead
of time lets later loads work offline.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(rootOpts, args, all, totalPoints, cmd)
		},
	}

	cmd.Flags().IntVar(&totalPoints, "total-points", 0, "row count for generated datasets (multiple of 5)")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every dataset in the catalog")

	return cmd
}

func runFetch(opts *RootOptions, names []string, all bool, totalPoints int, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	switch {
	case all && len(names) > 0:
		return NewExitError(ExitCommandError, "pass dataset names or --all, not both")
	case all:
		descs, err := hvsampledata.Datasets()
		if err != nil {
			return formatter.fail(err)
		}
		for _, d := range descs {
			names = append(names, d.Name)
		}
	case len(names) == 0:
		return NewExitError(ExitCommandError, "no datasets named; pass names or --all")
	}

	var loadOpts []hvsampledata.Option
	if totalPoints != 0 {
		loadOpts = append(loadOpts, hvsampledata.WithTotalPoints(totalPoints))
	}

	results := make([]fetchResult, 0, len(names))
	for _, name := range names {
		formatter.VerboseLog("fetching %s", name)
		path, err := hvsampledata.Fetch(cmd.Context(), name, loadOpts...)
		if err != nil {
			return formatter.fail(err)
		}
		results = append(results, fetchResult{Name: name, Path: path})
	}

	if formatter.Format == "json" {
		return formatter.JSON(results)
	}
	for _, r := range results {
		fmt.Fprintln(formatter.Writer, r.Path)
	}
	return nil
}
