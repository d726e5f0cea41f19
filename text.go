// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/urlrules

package urlrules

import (
	"errors"
	"fmt"
	"regexp"
)

// textURLPattern finds plain http(s) URLs in free text. Characters that
// commonly close a surrounding markdown or prose context are excluded.
var textURLPattern = regexp.MustCompile(`https?://[^\s<>"'\)\]]+`)

// CleanText cleans every plain-text http(s) URL found in text.
//
// URLs that fail to clean keep their original text; all failures are
// joined into the returned error.
func (c *Cleaner) CleanText(text string) (string, error) {
	var errs []error
	out := textURLPattern.ReplaceAllStringFunc(text, func(raw string) string {
		cleaned, err := c.Clean(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", raw, err))
			return raw
		}

		return cleaned
	})

	return out, errors.Join(errs...)
}
