// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/urlrules

package urlrules

import (
	"regexp"
	"strings"
)

// DocumentFromParams converts a parameter name list to a catch-all rules
// document removing those parameters from every http(s) URL.
//
// Accepted parameter forms:
//   - "utm_source" (literal name)
//   - "utm_*" (trailing wildcard)
//
// Empty values are skipped. Names are matched case-insensitively, like
// every other rule, and preserve input order.
func DocumentFromParams(params []string) *Document {
	rules := make([]string, 0, len(params))
	for _, name := range params {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		if base, ok := strings.CutSuffix(name, "*"); ok {
			rules = append(rules, regexp.QuoteMeta(base)+".*")
			continue
		}

		rules = append(rules, regexp.QuoteMeta(name))
	}

	return &Document{Providers: ProviderList{{
		Name: "params",
		Config: ProviderConfig{
			URLPattern: `^https?:\/\/`,
			Rules:      rules,
		},
	}}}
}
