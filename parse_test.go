// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/urlrules

package urlrules

import (
	"errors"
	"strings"
	"testing"
)

func TestParseDocumentOrder(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocumentString(`{
		"providers": {
			"zeta": {"urlPattern": "^https?://zeta\\.example"},
			"alpha": {"urlPattern": "^https?://alpha\\.example"},
			"mid": {"urlPattern": "^https?://mid\\.example"}
		}
	}`)
	if err != nil {
		t.Fatalf("ParseDocumentString: %v", err)
	}

	if len(doc.Providers) != 3 {
		t.Fatalf("len(providers)=%d, want 3", len(doc.Providers))
	}

	if doc.Providers[0].Name != "zeta" || doc.Providers[1].Name != "alpha" || doc.Providers[2].Name != "mid" {
		t.Fatalf("provider order not preserved: %+v", doc.Providers)
	}
}

func TestParseDocumentFields(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocumentString(`{
		"providers": {
			"example": {
				"urlPattern": "^https?://example\\.com",
				"completeProvider": true,
				"forceRedirection": true,
				"rules": ["utm_source"],
				"rawRules": ["\\/ref=[^\\/?]*"],
				"referralMarketing": ["ref"],
				"exceptions": ["^https?://example\\.com/keep"],
				"redirections": ["url=([^&]+)"]
			}
		}
	}`)
	if err != nil {
		t.Fatalf("ParseDocumentString: %v", err)
	}

	cfg := doc.Providers[0].Config
	if !cfg.CompleteProvider || !cfg.ForceRedirection {
		t.Fatalf("flags not decoded: %+v", cfg)
	}

	if len(cfg.Rules) != 1 || len(cfg.RawRules) != 1 || len(cfg.ReferralMarketing) != 1 ||
		len(cfg.Exceptions) != 1 || len(cfg.Redirections) != 1 {
		t.Fatalf("rule lists not decoded: %+v", cfg)
	}
}

func TestParseDocumentInvalidJSON(t *testing.T) {
	t.Parallel()

	if _, err := ParseDocumentString("["); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("err=%v, want ErrInvalidDocument", err)
	}
}

func TestParseDocumentWrongShape(t *testing.T) {
	t.Parallel()

	cases := []string{
		`{"providers": []}`,
		`{"providers": {"example": {"rules": ["a"]}}}`,
		`{"providers": {"example": {"urlPattern": 1}}}`,
		`{"providers": {"example": {"urlPattern": "", "rules": [1]}}}`,
		`{}`,
	}

	for _, src := range cases {
		if _, err := ParseDocumentString(src); !errors.Is(err, ErrInvalidDocument) {
			t.Fatalf("ParseDocumentString(%s): err=%v, want ErrInvalidDocument", src, err)
		}
	}
}

func TestParseDocumentReader(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocumentReader(strings.NewReader(
		`{"providers": {"example": {"urlPattern": "", "rules": ["foo"]}}}`))
	if err != nil {
		t.Fatalf("ParseDocumentReader: %v", err)
	}

	if len(doc.Providers) != 1 || len(doc.Providers[0].Config.Rules) != 1 {
		t.Fatalf("unexpected document: %+v", doc)
	}

	if doc.Providers[0].Config.Rules[0] != "foo" {
		t.Fatalf("rules[0]=%q, want foo", doc.Providers[0].Config.Rules[0])
	}
}

func TestParseDocumentYAML(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocumentYAML([]byte(`
providers:
  second:
    urlPattern: "^https?://second\\.example"
    rules:
      - utm_source
  first:
    urlPattern: "^https?://first\\.example"
    completeProvider: true
`))
	if err != nil {
		t.Fatalf("ParseDocumentYAML: %v", err)
	}

	if len(doc.Providers) != 2 {
		t.Fatalf("len(providers)=%d, want 2", len(doc.Providers))
	}

	if doc.Providers[0].Name != "second" || doc.Providers[1].Name != "first" {
		t.Fatalf("provider order not preserved: %+v", doc.Providers)
	}

	if len(doc.Providers[0].Config.Rules) != 1 || !doc.Providers[1].Config.CompleteProvider {
		t.Fatalf("fields not decoded: %+v", doc.Providers)
	}
}

func TestParseDocumentYAMLWrongShape(t *testing.T) {
	t.Parallel()

	if _, err := ParseDocumentYAML([]byte(`providers: [a, b]`)); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("err=%v, want ErrInvalidDocument", err)
	}
}
