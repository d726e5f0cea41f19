// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/urlrules

package urlrules

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// param is one decoded query or fragment parameter.
type param struct {
	// key is the decoded parameter name.
	key string
	// value is the decoded parameter value.
	value string
}

// parseParams splits a raw query or fragment string into decoded pairs.
//
// Empty segments are dropped, duplicate keys are kept in source order and
// undecodable components keep their raw text.
func parseParams(raw string) []param {
	if raw == "" {
		return nil
	}

	out := make([]param, 0, strings.Count(raw, "&")+1)
	for _, segment := range strings.Split(raw, "&") {
		if segment == "" {
			continue
		}

		key, value, _ := strings.Cut(segment, "=")
		out = append(out, param{
			key:   decodeComponent(key),
			value: decodeComponent(value),
		})
	}

	return out
}

// filterParams drops every pair whose key is fully matched by any rule.
func filterParams(pairs []param, rules []*regexp.Regexp) []param {
	if len(pairs) == 0 || len(rules) == 0 {
		return pairs
	}

	out := pairs[:0]
	for _, pair := range pairs {
		if !anyFullMatch(rules, pair.key) {
			out = append(out, pair)
		}
	}

	return out
}

// serializeParams renders decoded pairs back to raw query/fragment form.
//
// A single pair with empty value is rendered as a bare token so fragment
// anchors like "#section-name" survive a clean round-trip.
func serializeParams(pairs []param) string {
	if len(pairs) == 0 {
		return ""
	}

	if len(pairs) == 1 && pairs[0].value == "" {
		return url.QueryEscape(pairs[0].key)
	}

	var b strings.Builder
	for i, pair := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}

		b.WriteString(url.QueryEscape(pair.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pair.value))
	}

	return b.String()
}

// anyFullMatch reports whether any rule matches the whole input.
func anyFullMatch(rules []*regexp.Regexp, input string) bool {
	for _, re := range rules {
		loc := re.FindStringIndex(input)
		if loc != nil && loc[0] == 0 && loc[1] == len(input) {
			return true
		}
	}

	return false
}

// decodeComponent decodes one form-urlencoded component, keeping raw text
// when the component is not valid percent-encoding.
func decodeComponent(raw string) string {
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return raw
	}

	return decoded
}

// decodeRedirectTarget repeatedly percent-decodes a captured redirection
// target until stable and ensures the result is an absolute URL.
//
// Targets are often encoded more than once, so decoding loops until the
// value stops changing. A target without a scheme gets "http://" prefixed,
// matching ClearURLs redirect semantics for host-only captures.
func decodeRedirectTarget(target string) (string, error) {
	current := target
	for {
		next, err := url.PathUnescape(current)
		if err != nil || next == current {
			break
		}

		current = next
	}

	if !utf8.ValidString(current) {
		return "", fmt.Errorf("%w: %q decodes to non-UTF-8 text", ErrInvalidRedirect, target)
	}

	if !strings.HasPrefix(current, "http") {
		return "http://" + current, nil
	}

	return current, nil
}
