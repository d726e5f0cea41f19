// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/urlrules

package urlrules

// MergeDocuments merges rules documents preserving input order.
func MergeDocuments(docs ...*Document) *Document {
	total := 0
	for _, doc := range docs {
		if doc != nil {
			total += len(doc.Providers)
		}
	}

	out := &Document{Providers: make(ProviderList, 0, total)}
	for _, doc := range docs {
		if doc != nil {
			out.Providers = append(out.Providers, doc.Providers...)
		}
	}

	return out
}
