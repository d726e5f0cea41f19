// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/urlrules

package urlrules

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// embeddedRules is the bundled ClearURLs baseline rules document.
// It may lag behind the upstream crowdsourced set but gives a sound
// default for applications that do not ship their own rules.
//
//go:embed rules.json
var embeddedRules []byte

// embeddedSchema describes the ClearURLs rules document shape.
//
//go:embed schema.json
var embeddedSchema []byte

// embeddedRuleSetOnce compiles the embedded rules exactly once.
var embeddedRuleSetOnce = sync.OnceValues(func() (*RuleSet, error) {
	doc, err := EmbeddedDocument()
	if err != nil {
		return nil, err
	}

	return NewRuleSet(doc)
})

// documentSchemaOnce compiles the embedded document schema exactly once.
var documentSchemaOnce = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(embeddedSchema))
	if err != nil {
		return nil, fmt.Errorf("%w: embedded schema: %v", ErrInvalidDocument, err)
	}

	return schema, nil
})

// EmbeddedDocument parses the embedded baseline rules document.
func EmbeddedDocument() (*Document, error) {
	return ParseDocument(embeddedRules)
}

// EmbeddedRuleSet returns the compiled embedded baseline rules.
//
// The result is compiled on first use and shared between callers.
func EmbeddedRuleSet() (*RuleSet, error) {
	return embeddedRuleSetOnce()
}

// documentSchema returns the shared compiled document schema.
func documentSchema() (*gojsonschema.Schema, error) {
	return documentSchemaOnce()
}
