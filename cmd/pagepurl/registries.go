package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/git-pkgs/pagepurl"
)

type registryResult struct {
	ID              string `json:"id"`
	Ecosystem       string `json:"ecosystem"`
	Prefix          string `json:"prefix"`
	Pattern         string `json:"pattern"`
	VersionSelector string `json:"version_selector,omitempty"`
}

func newRegistriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "registries",
		Short: "List recognized registry sites in match order",
		Args:  cobra.NoArgs,
		RunE:  runRegistries,
	}
}

func runRegistries(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	entries := pagepurl.Registries()
	results := make([]registryResult, 0, len(entries))
	for _, rt := range entries {
		r := registryResult{
			ID:        rt.ID,
			Ecosystem: rt.Ecosystem,
			Prefix:    rt.URLPrefix,
			Pattern:   rt.Pattern.String(),
		}
		if rt.VersionSelector != nil {
			r.VersionSelector = rt.VersionSelector.Selector
		}
		results = append(results, r)
	}

	if a.jsonOutput() {
		return a.writeJSON(results)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tECOSYSTEM\tPREFIX")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.ID, r.Ecosystem, r.Prefix)
	}
	return tw.Flush()
}
