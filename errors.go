// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/urlrules

package urlrules

import "errors"

// Sentinel errors for urlrules operations.
var (
	// ErrInvalidDocument indicates malformed rules document input.
	ErrInvalidDocument = errors.New("invalid rules document")
	// ErrInvalidPattern indicates malformed or unsupported rule pattern.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrInvalidURL indicates input that cannot be parsed as an absolute URL.
	ErrInvalidURL = errors.New("invalid url")
	// ErrInvalidRedirect indicates a redirection target that decoded to garbage.
	ErrInvalidRedirect = errors.New("invalid redirection target")
	// ErrRedirectionLoop indicates redirection recursion depth was exceeded.
	ErrRedirectionLoop = errors.New("redirection loop")
	// ErrNilRuleSet indicates a nil RuleSet input.
	ErrNilRuleSet = errors.New("rule set is nil")
)
