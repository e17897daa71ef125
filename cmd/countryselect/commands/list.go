package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// ListCmd implements the 'list' command.
type ListCmd struct {
	Format string `short:"o" help:"Output format" enum:"text,json,yaml" default:"text"`
	Query  string `short:"q" help:"Only list countries whose label or code matches"`
	Limit  int    `help:"Maximum number of entries (0 for all)" default:"0"`
}

func (l *ListCmd) Run(g *Global) error {
	cat := g.Catalog()
	entries := cat.Entries()
	if l.Query != "" || l.Limit > 0 {
		entries = cat.Search(l.Query, l.Limit)
	}
	g.Logger.WithField("count", len(entries)).Debug("listing countries")

	switch l.Format {
	case "json":
		enc := json.NewEncoder(g.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(g.Out)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	default:
		w := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
		for _, entry := range entries {
			fmt.Fprintf(w, "%s\t%s\n", entry.Code, entry.Label)
		}
		return w.Flush()
	}
}
