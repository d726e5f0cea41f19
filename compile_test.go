// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/urlrules

package urlrules

import (
	"errors"
	"testing"
)

func TestNewRuleSet(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocumentString(`{
		"providers": {
			"a": {"urlPattern": "^https?://a\\.example", "rules": ["utm_source"]},
			"b": {"urlPattern": "^https?://b\\.example"}
		}
	}`)
	if err != nil {
		t.Fatalf("ParseDocumentString: %v", err)
	}

	rs, err := NewRuleSet(doc)
	if err != nil {
		t.Fatalf("NewRuleSet: %v", err)
	}

	if rs.Len() != 2 {
		t.Fatalf("Len()=%d, want 2", rs.Len())
	}
}

func TestNewRuleSetNilDocument(t *testing.T) {
	t.Parallel()

	if _, err := NewRuleSet(nil); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("err=%v, want ErrInvalidDocument", err)
	}
}

func TestNewRuleSetInvalidPattern(t *testing.T) {
	t.Parallel()

	doc := &Document{Providers: ProviderList{{
		Name:   "broken",
		Config: ProviderConfig{URLPattern: "^https?://", Rules: []string{"["}},
	}}}

	if _, err := NewRuleSet(doc); !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("err=%v, want ErrInvalidPattern", err)
	}
}

func TestNewRuleSetInvalidURLPattern(t *testing.T) {
	t.Parallel()

	doc := &Document{Providers: ProviderList{{
		Name:   "broken",
		Config: ProviderConfig{URLPattern: "*"},
	}}}

	if _, err := NewRuleSet(doc); !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("err=%v, want ErrInvalidPattern", err)
	}
}

func TestNewRuleSetRedirectionWithoutCaptureGroup(t *testing.T) {
	t.Parallel()

	doc := &Document{Providers: ProviderList{{
		Name: "redirect",
		Config: ProviderConfig{
			URLPattern:   "^https?://example\\.com",
			Redirections: []string{`url=https?[^&]+`},
		},
	}}}

	if _, err := NewRuleSet(doc); !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("err=%v, want ErrInvalidPattern", err)
	}
}
