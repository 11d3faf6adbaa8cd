package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/git-pkgs/pagepurl"
)

func newPURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purl <purl>",
		Short: "Show the registry page and related URLs for a Package URL",
		Args:  cobra.ExactArgs(1),
		RunE:  runPURL,
	}
}

func runPURL(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	c, err := pagepurl.ParsePURL(args[0])
	if err != nil {
		return err
	}
	urls := pagepurl.BuildURLs(c)

	if a.jsonOutput() {
		return a.writeJSON(urls)
	}

	keys := make([]string, 0, len(urls))
	for k := range urls {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(a.out, "%s\t%s\n", k, urls[k])
	}
	return nil
}
