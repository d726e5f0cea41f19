// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/urlrules

/*
Package urlrules removes tracking parameters and unwraps tracking redirects
from URLs using crowdsourced rules in the ClearURLs document format.

The package compiles a rules document once into an immutable RuleSet and
evaluates URLs against it with pure calls that are safe for concurrent use
without coordination.

Basic flow:
  - parse a rules document (`ParseDocument`, `ParseDocumentYAML`)
  - optionally load documents from files (`LoadDocumentFile`)
  - compile rule set (`NewRuleSet`), or use the embedded baseline
    (`EmbeddedRuleSet`)
  - create cleaner (`NewCleaner`)
  - clean URLs (`Clean` / `CleanAll` / `CleanText`)

Rules document syntax and semantics follow the ClearURLs specification:
https://docs.clearurls.xyz/latest/specs/rules/
*/
package urlrules
