package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/holoviz/hvsampledata"
)

// datasetSummary is one row of the list output.
type datasetSummary struct {
	Name          string   `json:"name"`
	Kind          string   `json:"kind"`
	Storage       string   `json:"storage"`
	Format        string   `json:"format"`
	DefaultEngine string   `json:"default_engine"`
	Engines       []string `json:"engines"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List the datasets in the catalog",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	descs, err := hvsampledata.Datasets()
	if err != nil {
		return formatter.fail(err)
	}
	formatter.VerboseLog("catalog holds %d dataset(s)", len(descs))

	summaries := make([]datasetSummary, len(descs))
	for i, d := range descs {
		engines := make([]string, len(d.Engines))
		for j, e := range d.Engines {
			engines[j] = string(e)
		}
		summaries[i] = datasetSummary{
			Name:          d.Name,
			Kind:          string(d.Kind),
			Storage:       string(d.Storage),
			Format:        d.Format,
			DefaultEngine: string(d.DefaultEngine),
			Engines:       engines,
		}
	}

	if formatter.Format == "json" {
		return formatter.JSON(summaries)
	}

	fmt.Fprintf(formatter.Writer, "%-19s %-8s %-10s %-8s %-8s %s\n",
		"NAME", "KIND", "STORAGE", "FORMAT", "DEFAULT", "ENGINES")
	for _, s := range summaries {
		fmt.Fprintf(formatter.Writer, "%-19s %-8s %-10s %-8s %-8s %s\n",
			s.Name, s.Kind, s.Storage, s.Format, s.DefaultEngine,
			strings.Join(s.Engines, ","))
	}
	return nil
}
