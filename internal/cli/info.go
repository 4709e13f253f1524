package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/holoviz/hvsampledata"
)

// datasetInfo is the full info payload for one dataset.
type datasetInfo struct {
	datasetSummary
	Description string       `json:"description"`
	URL         string       `json:"url,omitempty"`
	Columns     []columnInfo `json:"columns,omitempty"`
}

type columnInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "info <dataset>",
		Short:         "Show the catalog entry for one dataset",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(rootOpts, args[0], cmd)
		},
	}
}

func runInfo(opts *RootOptions, name string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	d, err := hvsampledata.Describe(name)
	if err != nil {
		return formatter.fail(err)
	}

	engines := make([]string, len(d.Engines))
	for i, e := range d.Engines {
		engines[i] = string(e)
	}
	info := datasetInfo{
		datasetSummary: datasetSummary{
			Name:          d.Name,
			Kind:          string(d.Kind),
			Storage:       string(d.Storage),
			Format:        d.Format,
			DefaultEngine: string(d.DefaultEngine),
			Engines:       engines,
		},
		Description: d.Description,
		URL:         d.URL,
	}
	for _, c := range d.Columns {
		info.Columns = append(info.Columns, columnInfo{Name: c.Name, Type: string(c.Type)})
	}

	if formatter.Format == "json" {
		return formatter.JSON(info)
	}

	fmt.Fprintf(formatter.Writer, "%s (%s, %s, %s)\n", info.Name, info.Kind, info.Storage, info.Format)
	fmt.Fprintf(formatter.Writer, "  %s\n\n", info.Description)
	fmt.Fprintf(formatter.Writer, "  engines: %s\n", renderEngines(info.Engines, info.DefaultEngine))
	if info.URL != "" {
		fmt.Fprintf(formatter.Writer, "  url: %s\n", info.URL)
	}
	if len(info.Columns) > 0 {
		fmt.Fprintln(formatter.Writer, "  columns:")
		for _, c := range info.Columns {
			fmt.Fprintf(formatter.Writer, "    %-18s %s\n", c.Name, c.Type)
		}
	}
	return nil
}

// renderEngines marks the default engine in the supported list.
func renderEngines(engines []string, def string) string {
	out := make([]string, len(engines))
	for i, e := range engines {
		if e == def {
			e += " (default)"
		}
		out[i] = e
	}
	return strings.Join(out, ", ")
}
