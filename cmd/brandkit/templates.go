package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-brandkit/pkg/catalog"
	"github.com/goliatone/go-brandkit/pkg/render"
)

var templatesJSON bool

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available templates grouped by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printTemplates(cmd.OutOrStdout(), catalog.Default(), templatesJSON)
	},
}

func init() {
	templatesCmd.Flags().BoolVar(&templatesJSON, "json", false, "Print as JSON")
}

func printTemplates(w io.Writer, registry *render.Registry, asJSON bool) error {
	groups := registry.List()
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(groups)
	}
	for i, group := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n", group.Label)
		for _, d := range group.Templates {
			marker := " "
			if d.ID == registry.DefaultID() {
				marker = "*"
			}
			fmt.Fprintf(w, " %s %-18s %s\n", marker, d.ID, d.DisplayName)
		}
	}
	return nil
}
