// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/urlrules

package urlrules

import "github.com/rs/zerolog"

const defaultMaxRedirects = 10

// ProviderConfig is one raw provider rule group in ClearURLs document form.
type ProviderConfig struct {
	// URLPattern is a regex matched against the whole URL to select this provider.
	URLPattern string `json:"urlPattern" yaml:"urlPattern"`
	// Rules are regexes removing query/fragment parameters by name.
	Rules []string `json:"rules,omitempty" yaml:"rules,omitempty"`
	// RawRules are regexes deleting matches from the raw URL string.
	RawRules []string `json:"rawRules,omitempty" yaml:"rawRules,omitempty"`
	// ReferralMarketing are parameter rules applied only when referral
	// marketing stripping is enabled on the cleaner.
	ReferralMarketing []string `json:"referralMarketing,omitempty" yaml:"referralMarketing,omitempty"`
	// Exceptions are regexes excluding matching URLs from this provider.
	Exceptions []string `json:"exceptions,omitempty" yaml:"exceptions,omitempty"`
	// Redirections are regexes whose first capture group extracts an
	// embedded destination URL.
	Redirections []string `json:"redirections,omitempty" yaml:"redirections,omitempty"`
	// CompleteProvider stops evaluation of later providers after this one.
	CompleteProvider bool `json:"completeProvider,omitempty" yaml:"completeProvider,omitempty"`
	// ForceRedirection marks redirections the ClearURLs browser extension
	// must follow with a real navigation. Parsed for document fidelity,
	// no behavioral effect in a library.
	ForceRedirection bool `json:"forceRedirection,omitempty" yaml:"forceRedirection,omitempty"`
}

// NamedProvider is one provider entry with its document key.
type NamedProvider struct {
	// Name is the provider key in the rules document.
	Name string `json:"name" yaml:"name"`
	// Config is the raw provider rule group.
	Config ProviderConfig `json:"config" yaml:"config"`
}

// ProviderList is an ordered provider collection.
//
// ClearURLs documents store providers as a JSON object; evaluation order is
// document order, so decoding preserves key order instead of using a map.
type ProviderList []NamedProvider

// Document is one raw, not yet compiled rules document.
type Document struct {
	// Providers are provider rule groups in document order.
	Providers ProviderList `json:"providers" yaml:"providers"`
}

// CleanerOptions controls cleaner behavior.
type CleanerOptions struct {
	// Logger receives debug events for matched providers and redirections.
	// Nil disables logging.
	Logger *zerolog.Logger `json:"-" yaml:"-"`
	// MaxRedirects bounds redirection recursion depth. Zero defaults to 10.
	MaxRedirects int `json:"max_redirects,omitempty" yaml:"max_redirects,omitempty"`
	// StripReferralMarketing also removes referral marketing parameters.
	// These are tracking-adjacent but occasionally useful, so default is false.
	StripReferralMarketing bool `json:"strip_referral_marketing,omitempty" yaml:"strip_referral_marketing,omitempty"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *CleanerOptions) applyDefaults() {
	if opts.MaxRedirects <= 0 {
		opts.MaxRedirects = defaultMaxRedirects
	}

	if opts.Logger == nil {
		nop := zerolog.Nop()
		opts.Logger = &nop
	}
}
