package packagist

import (
	"testing"

	"github.com/git-pkgs/pagepurl/internal/core"
)

func TestExtract(t *testing.T) {
	dom := core.StaticDOM{VersionSelector: "v6.4.1"}

	tests := []struct {
		url    string
		dom    core.DOM
		wantOK bool
	}{
		{"https://packagist.org/packages/symfony/console", dom, true},
		{"https://packagist.org/packages/symfony/console#v6.4.1", dom, true},
		{"https://packagist.org/packages/symfony/console/stats", dom, true},
		{"https://packagist.org/packages/symfony/console", nil, false},
		{"https://packagist.org/packages/symfony", dom, false},
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
			if c.String() != "pkg:composer/symfony/console@6.4.1" {
				t.Errorf("unexpected coordinate: %s", c)
			}
		})
	}
}
