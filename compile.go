// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/urlrules

package urlrules

import (
	"fmt"
	"regexp"
)

// provider is compiled cleaner-internal representation of one rule group.
type provider struct {
	// urlPattern selects this provider when it matches the whole URL.
	urlPattern *regexp.Regexp
	// name is the provider key from the source document.
	name string
	// rules remove query/fragment parameters by full name match.
	rules []*regexp.Regexp
	// rawRules delete matches from the raw URL string.
	rawRules []*regexp.Regexp
	// referralMarketing are opt-in parameter rules.
	referralMarketing []*regexp.Regexp
	// exceptions exclude matching URLs from this provider.
	exceptions []*regexp.Regexp
	// redirections extract an embedded destination URL via capture group 1.
	redirections []*regexp.Regexp
	// completeProvider stops evaluation of later providers.
	completeProvider bool
	// forceRedirection is carried from the document, unused by the library.
	forceRedirection bool
}

// RuleSet is an immutable compiled rules document.
//
// A RuleSet is built once, never mutated afterwards and may be shared by
// any number of concurrent cleaning calls without coordination.
type RuleSet struct {
	providers []*provider
}

// NewRuleSet compiles a rules document into RuleSet.
//
// Every pattern is compiled eagerly with the case-insensitive flag, so
// later cleaning calls cannot fail on pattern compilation. Redirection
// patterns must carry at least one capture group for the target URL.
func NewRuleSet(doc *Document) (*RuleSet, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}

	providers := make([]*provider, 0, len(doc.Providers))
	for i := range doc.Providers {
		p, err := compileProvider(&doc.Providers[i])
		if err != nil {
			return nil, err
		}

		providers = append(providers, p)
	}

	return &RuleSet{providers: providers}, nil
}

// Len reports the number of compiled providers.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}

	return len(rs.providers)
}

// compileProvider compiles one named provider rule group.
func compileProvider(np *NamedProvider) (*provider, error) {
	urlPattern, err := compilePattern(np.Name, "urlPattern", np.Config.URLPattern)
	if err != nil {
		return nil, err
	}

	rules, err := compilePatterns(np.Name, "rules", np.Config.Rules)
	if err != nil {
		return nil, err
	}

	rawRules, err := compilePatterns(np.Name, "rawRules", np.Config.RawRules)
	if err != nil {
		return nil, err
	}

	referralMarketing, err := compilePatterns(np.Name, "referralMarketing", np.Config.ReferralMarketing)
	if err != nil {
		return nil, err
	}

	exceptions, err := compilePatterns(np.Name, "exceptions", np.Config.Exceptions)
	if err != nil {
		return nil, err
	}

	redirections, err := compilePatterns(np.Name, "redirections", np.Config.Redirections)
	if err != nil {
		return nil, err
	}

	for i, re := range redirections {
		if re.NumSubexp() < 1 {
			return nil, fmt.Errorf("%w: provider %q: redirection %q has no capture group",
				ErrInvalidPattern, np.Name, np.Config.Redirections[i])
		}
	}

	return &provider{
		name:              np.Name,
		urlPattern:        urlPattern,
		rules:             rules,
		rawRules:          rawRules,
		referralMarketing: referralMarketing,
		exceptions:        exceptions,
		redirections:      redirections,
		completeProvider:  np.Config.CompleteProvider,
		forceRedirection:  np.Config.ForceRedirection,
	}, nil
}

// compilePatterns compiles one ordered pattern list.
func compilePatterns(providerName, field string, patterns []string) ([]*regexp.Regexp, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := compilePattern(providerName, field, pattern)
		if err != nil {
			return nil, err
		}

		out = append(out, re)
	}

	return out, nil
}

// compilePattern compiles one case-insensitive rule pattern.
func compilePattern(providerName, field, pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: provider %q: %s %q: %v",
			ErrInvalidPattern, providerName, field, pattern, err)
	}

	return re, nil
}

// matchURL reports whether provider applies to url.
func (p *provider) matchURL(url string) bool {
	return p.urlPattern.MatchString(url) && !p.matchException(url)
}

// matchException reports whether url is excluded from this provider.
func (p *provider) matchException(url string) bool {
	// ClearURLs hardcodes this pseudo-URL as a global exception.
	if url == "javascript:void(0)" {
		return true
	}

	for _, re := range p.exceptions {
		if re.MatchString(url) {
			return true
		}
	}

	return false
}

// paramRules returns parameter removal rules honoring the referral flag.
func (p *provider) paramRules(stripReferralMarketing bool) []*regexp.Regexp {
	if !stripReferralMarketing || len(p.referralMarketing) == 0 {
		return p.rules
	}

	out := make([]*regexp.Regexp, 0, len(p.rules)+len(p.referralMarketing))
	out = append(out, p.rules...)
	out = append(out, p.referralMarketing...)
	return out
}

// redirectTarget returns the first redirection capture for url.
func (p *provider) redirectTarget(url string) (string, bool) {
	for _, re := range p.redirections {
		m := re.FindStringSubmatch(url)
		if m == nil {
			continue
		}

		if m[1] != "" {
			return m[1], true
		}
	}

	return "", false
}
