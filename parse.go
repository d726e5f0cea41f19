// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/urlrules

package urlrules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// ParseDocument parses a JSON rules document in ClearURLs format.
//
// The document is validated against the embedded ClearURLs schema before
// decoding, so shape problems surface as one descriptive error instead of
// a partial decode. Provider order follows document key order.
func ParseDocument(data []byte) (*Document, error) {
	if err := validateDocument(gojsonschema.NewBytesLoader(data)); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return &doc, nil
}

// ParseDocumentString parses a JSON rules document from string input.
func ParseDocumentString(src string) (*Document, error) {
	return ParseDocument([]byte(src))
}

// ParseDocumentReader parses a JSON rules document from reader.
func ParseDocumentReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read rules document: %w", err)
	}

	return ParseDocument(data)
}

// ParseDocumentYAML parses a YAML rules document with the same structure
// as the JSON ClearURLs format. Provider order follows document key order.
func ParseDocumentYAML(data []byte) (*Document, error) {
	var generic map[string]any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if err := validateDocument(gojsonschema.NewGoLoader(generic)); err != nil {
		return nil, err
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	doc := &Document{}
	providers := yamlMappingValue(&root, "providers")
	if providers == nil {
		return doc, nil
	}

	// Mapping node content holds alternating key/value nodes in source order.
	for i := 0; i+1 < len(providers.Content); i += 2 {
		var cfg ProviderConfig
		if err := providers.Content[i+1].Decode(&cfg); err != nil {
			return nil, fmt.Errorf("%w: provider %q: %v",
				ErrInvalidDocument, providers.Content[i].Value, err)
		}

		doc.Providers = append(doc.Providers, NamedProvider{
			Name:   providers.Content[i].Value,
			Config: cfg,
		})
	}

	return doc, nil
}

// UnmarshalJSON decodes the providers object preserving key order.
func (l *ProviderList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: providers: %v", ErrInvalidDocument, err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: providers must be an object", ErrInvalidDocument)
	}

	out := make(ProviderList, 0, 16)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: providers: %v", ErrInvalidDocument, err)
		}

		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("%w: providers: non-string key", ErrInvalidDocument)
		}

		var cfg ProviderConfig
		if err := dec.Decode(&cfg); err != nil {
			return fmt.Errorf("%w: provider %q: %v", ErrInvalidDocument, name, err)
		}

		out = append(out, NamedProvider{Name: name, Config: cfg})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: providers: %v", ErrInvalidDocument, err)
	}

	*l = out
	return nil
}

// yamlMappingValue returns the value node for key in the document root mapping.
func yamlMappingValue(root *yaml.Node, key string) *yaml.Node {
	node := root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}

	return nil
}

// validateDocument checks one loaded document against the embedded schema.
func validateDocument(doc gojsonschema.JSONLoader) error {
	schema, err := documentSchema()
	if err != nil {
		return err
	}

	result, err := schema.Validate(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}

	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(details, "; "))
}
