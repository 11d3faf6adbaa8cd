package npm

import (
	"testing"

	"github.com/git-pkgs/pagepurl/internal/core"
)

func TestExtract(t *testing.T) {
	dom := core.StaticDOM{VersionSelector: "4.17.21 • Public • Published 3 years ago"}

	tests := []struct {
		url      string
		dom      core.DOM
		wantNS   string
		wantName string
		wantVer  string
		wantOK   bool
	}{
		{"https://www.npmjs.com/package/lodash/v/4.17.20", nil, "", "lodash", "4.17.20", true},
		{"https://www.npmjs.com/package/lodash/v/4.17.20?activeTab=versions", nil, "", "lodash", "4.17.20", true},
		{"https://www.npmjs.com/package/lodash", dom, "", "lodash", "4.17.21", true},
		{"https://www.npmjs.com/package/lodash?activeTab=readme", dom, "", "lodash", "4.17.21", true},
		{"https://www.npmjs.com/package/@babel/core/v/7.24.0", nil, "@babel", "core", "7.24.0", true},
		{"https://www.npmjs.com/package/%40babel/core/v/7.24.0", nil, "@babel", "core", "7.24.0", true},
		{"https://www.npmjs.com/package/@babel/core", dom, "@babel", "core", "4.17.21", true},
		{"https://www.npmjs.com/package/@babel/core/v/7.24.0/extra", nil, "@babel", "core", "7.24.0", true},

		{"https://www.npmjs.com/package/lodash", nil, "", "", "", false},
		{"https://www.npmjs.com/package/", dom, "", "", "", false},
		{"https://www.npmjs.com/search?q=lodash", dom, "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			c, err := core.Default().Identify(tt.url, tt.dom)
			if (err == nil) != tt.wantOK {
				t.Fatalf("Identify(%q) error = %v, wantOK %v", tt.url, err, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			if c.Ecosystem() != "npm" {
				t.Errorf("Ecosystem = %q", c.Ecosystem())
			}
			if c.Namespace() != tt.wantNS {
				t.Errorf("Namespace = %q, want %q", c.Namespace(), tt.wantNS)
			}
			if c.Name() != tt.wantName {
				t.Errorf("Name = %q, want %q", c.Name(), tt.wantName)
			}
			if c.Version() != tt.wantVer {
				t.Errorf("Version = %q, want %q", c.Version(), tt.wantVer)
			}
		})
	}
}

func TestPageURL(t *testing.T) {
	tests := []struct {
		namespace, name, version string
		want                     string
	}{
		{"", "lodash", "4.17.21", "https://www.npmjs.com/package/lodash/v/4.17.21"},
		{"@babel", "core", "7.24.0", "https://www.npmjs.com/package/@babel/core/v/7.24.0"},
	}

	for _, tt := range tests {
		c, err := core.Build("npm", tt.namespace, tt.name, tt.version, nil)
		if err != nil {
			t.Fatal(err)
		}
		if got := PageURL(c); got != tt.want {
			t.Errorf("PageURL = %q, want %q", got, tt.want)
		}
	}
}
