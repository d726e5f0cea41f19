// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/urlrules

package urlrules

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// Cleaner applies one compiled RuleSet to URLs.
//
// A Cleaner is immutable after construction and safe for concurrent use.
type Cleaner struct {
	// rules is the shared compiled rule set.
	rules *RuleSet
	// logger receives debug events, zerolog.Nop by default.
	logger *zerolog.Logger
	// maxRedirects bounds redirection recursion depth.
	maxRedirects int
	// stripReferralMarketing also removes referral marketing parameters.
	stripReferralMarketing bool
}

// NewCleaner creates a cleaner over one compiled rule set.
func NewCleaner(rules *RuleSet, opts CleanerOptions) (*Cleaner, error) {
	if rules == nil {
		return nil, ErrNilRuleSet
	}

	opts.applyDefaults()

	return &Cleaner{
		rules:                  rules,
		logger:                 opts.Logger,
		maxRedirects:           opts.MaxRedirects,
		stripReferralMarketing: opts.StripReferralMarketing,
	}, nil
}

// NewEmbeddedCleaner creates a cleaner over the embedded baseline rules.
func NewEmbeddedCleaner(opts CleanerOptions) (*Cleaner, error) {
	rules, err := EmbeddedRuleSet()
	if err != nil {
		return nil, err
	}

	return NewCleaner(rules, opts)
}

// Clean removes tracking parameters and unwraps tracking redirections
// for one URL and returns the cleaned URL string.
//
// URLs matched by no provider are returned unchanged. "data:" URLs pass
// through untouched.
func (c *Cleaner) Clean(rawURL string) (string, error) {
	if strings.HasPrefix(rawURL, "data:") {
		return rawURL, nil
	}

	if err := validateURL(rawURL); err != nil {
		return "", err
	}

	return c.clean(rawURL, 0)
}

// CleanAll cleans a URL collection preserving input order.
//
// Entries that fail keep their input value; all failures are joined into
// the returned error.
func (c *Cleaner) CleanAll(urls []string) ([]string, error) {
	out := make([]string, len(urls))

	var errs []error
	for i, raw := range urls {
		cleaned, err := c.Clean(raw)
		if err != nil {
			out[i] = raw
			errs = append(errs, fmt.Errorf("url %d (%q): %w", i, raw, err))
			continue
		}

		out[i] = cleaned
	}

	return out, errors.Join(errs...)
}

// clean evaluates providers in document order against the working URL.
func (c *Cleaner) clean(rawURL string, depth int) (string, error) {
	result := rawURL
	for _, p := range c.rules.providers {
		if !p.matchURL(result) {
			continue
		}

		if target, ok := p.redirectTarget(result); ok {
			decoded, err := decodeRedirectTarget(target)
			if err != nil {
				return "", err
			}

			if depth+1 > c.maxRedirects {
				return "", fmt.Errorf("%w: depth %d exceeded at %q",
					ErrRedirectionLoop, c.maxRedirects, rawURL)
			}

			c.logger.Debug().
				Str("provider", p.name).
				Str("target", decoded).
				Msg("redirection unwrapped")

			// The embedded URL becomes the new working URL and cleaning
			// restarts from the first provider.
			return c.clean(decoded, depth+1)
		}

		cleaned, err := p.removeFields(result, c.stripReferralMarketing)
		if err != nil {
			return "", err
		}

		if cleaned != result {
			c.logger.Debug().
				Str("provider", p.name).
				Str("url", cleaned).
				Msg("provider applied")
		}

		result = cleaned
		if p.completeProvider {
			break
		}
	}

	return result, nil
}

// removeFields applies raw rules and parameter rules of one provider.
func (p *provider) removeFields(rawURL string, stripReferralMarketing bool) (string, error) {
	for _, re := range p.rawRules {
		rawURL = re.ReplaceAllString(rawURL, "")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidURL, rawURL, err)
	}

	if u.Scheme == "" {
		return "", fmt.Errorf("%w: %q: raw rules stripped the scheme", ErrInvalidURL, rawURL)
	}

	rules := p.paramRules(stripReferralMarketing)
	query := filterParams(parseParams(u.RawQuery), rules)
	fragment := filterParams(parseParams(u.EscapedFragment()), rules)

	u.RawQuery = serializeParams(query)
	u.Fragment = ""
	u.RawFragment = ""

	out := u.String()
	if frag := serializeParams(fragment); frag != "" {
		out += "#" + frag
	}

	return out, nil
}

// validateURL rejects input that does not parse as an absolute URL.
func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidURL, rawURL, err)
	}

	if u.Scheme == "" {
		return fmt.Errorf("%w: %q: missing scheme", ErrInvalidURL, rawURL)
	}

	return nil
}
