package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/git-pkgs/pagepurl"
	"github.com/git-pkgs/pagepurl/fetch"
)

type identifyResult struct {
	URL        string            `json:"url"`
	PURL       string            `json:"purl,omitempty"`
	Ecosystem  string            `json:"ecosystem,omitempty"`
	Namespace  string            `json:"namespace,omitempty"`
	Name       string            `json:"name,omitempty"`
	Version    string            `json:"version,omitempty"`
	Qualifiers map[string]string `json:"qualifiers,omitempty"`
	URLs       map[string]string `json:"urls,omitempty"`
	Artifact   *artifactResult   `json:"artifact,omitempty"`
	Error      string            `json:"error,omitempty"`
}

type artifactResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

func newIdentifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identify <url>...",
		Short: "Print the Package URL for each registry page",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runIdentify,
	}
	cmd.Flags().String("html", "", "Read the page document from this file (single URL only)")
	cmd.Flags().Bool("fetch", false, "Fetch each page to read versions missing from the URL")
	cmd.Flags().Bool("artifact", false, "Resolve and check the downloadable artifact")
	return cmd
}

func runIdentify(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	htmlPath, _ := cmd.Flags().GetString("html")
	doFetch, _ := cmd.Flags().GetBool("fetch")
	doArtifact, _ := cmd.Flags().GetBool("artifact")
	if htmlPath != "" && len(args) > 1 {
		return fmt.Errorf("--html accepts a single url, got %d", len(args))
	}

	var (
		static pagepurl.DOM
		cbf    *fetch.CircuitBreakerFetcher
	)
	if htmlPath != "" {
		doc, err := readHTML(htmlPath)
		if err != nil {
			return fmt.Errorf("reading %s: %w", htmlPath, err)
		}
		static = doc
	}
	if doFetch || doArtifact {
		cbf = a.fetcher()
	}

	id := a.identifier()
	ctx := cmd.Context()
	results := make([]identifyResult, 0, len(args))
	failed := 0

	for _, u := range args {
		res := identifyResult{URL: u}

		dom := static
		if dom == nil && doFetch {
			if _, ok := pagepurl.Match(u); ok {
				doc, err := cbf.LoadPage(ctx, u)
				if err != nil {
					a.logger.Warn("loading page failed", "url", u, "error", err)
				} else {
					dom = doc
				}
			}
		}

		c, ok := id.Identify(u, dom)
		if !ok {
			res.Error = pagepurl.ErrNoMatch.Error()
			results = append(results, res)
			failed++
			continue
		}

		res.PURL = c.String()
		res.Ecosystem = c.Ecosystem()
		res.Namespace = c.Namespace()
		res.Name = c.Name()
		res.Version = c.Version()
		res.Qualifiers = c.Qualifiers()
		res.URLs = pagepurl.BuildURLs(c)

		if doArtifact {
			info, err := fetch.NewResolver(cbf).Check(ctx, c)
			if err != nil {
				a.logger.Warn("artifact check failed", "purl", res.PURL, "error", err)
			} else {
				res.Artifact = &artifactResult{URL: info.URL, Filename: info.Filename, Size: info.Size}
			}
		}
		results = append(results, res)
	}

	if a.jsonOutput() {
		if err := a.writeJSON(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			switch {
			case r.Error != "":
				fmt.Fprintf(a.out, "%s\t-\n", r.URL)
			case r.Artifact != nil:
				fmt.Fprintf(a.out, "%s\t%s\t%s\n", r.URL, r.PURL, r.Artifact.URL)
			default:
				fmt.Fprintf(a.out, "%s\t%s\n", r.URL, r.PURL)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d pages not identified", failed, len(args))
	}
	return nil
}
