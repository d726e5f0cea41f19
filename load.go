// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/urlrules

package urlrules

import (
	"fmt"
	"os"
	"strings"
)

// LoadDocumentFile reads and parses a rules document from a file.
//
// Files with a ".yaml" or ".yml" extension are parsed as YAML, everything
// else as JSON.
func LoadDocumentFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules document: %w", err)
	}

	var doc *Document
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		doc, err = ParseDocumentYAML(data)
	} else {
		doc, err = ParseDocument(data)
	}

	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return doc, nil
}

// LoadDocumentFiles reads and merges rules documents in the given order.
//
// The merged document preserves file order and provider order inside
// each file.
func LoadDocumentFiles(paths ...string) (*Document, error) {
	docs := make([]*Document, 0, len(paths))
	for _, path := range paths {
		doc, err := LoadDocumentFile(path)
		if err != nil {
			return nil, err
		}

		docs = append(docs, doc)
	}

	return MergeDocuments(docs...), nil
}
