// Package document loads accordion content from YAML, TOML and Markdown files.
package document

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mmcdole/accordion/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format identifies a document encoding
type Format string

const (
	FormatYAML     Format = "yaml"
	FormatTOML     Format = "toml"
	FormatMarkdown Format = "markdown"
)

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and parses the document at path
func Load(path string) (*domain.Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	doc, err := Parse(format, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	if doc.Title == "" {
		doc.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return doc, nil
}

// Parse decodes in-memory document content
func Parse(format Format, data []byte) (*domain.Document, error) {
	var doc domain.Document

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
	case FormatMarkdown:
		doc = parseMarkdown(data)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}

	for i := range doc.Sections {
		doc.Sections[i].Title = strings.TrimSpace(doc.Sections[i].Title)
		doc.Sections[i].Body = strings.Trim(doc.Sections[i].Body, "\n")
		if doc.Sections[i].Title == "" {
			doc.Sections[i].Title = fmt.Sprintf("Section %d", i+1)
		}
	}

	if len(doc.Sections) == 0 {
		return nil, domain.ErrEmptyDocument
	}
	return &doc, nil
}

// parseMarkdown splits on level-two headings. The first level-one heading is
// the document title; text before the first section is dropped.
func parseMarkdown(data []byte) domain.Document {
	var doc domain.Document
	var body strings.Builder
	inFence := false

	flush := func() {
		if n := len(doc.Sections); n > 0 {
			doc.Sections[n-1].Body = body.String()
		}
		body.Reset()
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
		}

		switch {
		case !inFence && strings.HasPrefix(trimmed, "## "):
			flush()
			doc.Sections = append(doc.Sections, domain.Section{Title: strings.TrimPrefix(trimmed, "## ")})
			continue
		case !inFence && strings.HasPrefix(trimmed, "# ") && doc.Title == "" && len(doc.Sections) == 0:
			doc.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
			continue
		}

		if len(doc.Sections) > 0 {
			body.WriteString(line)
			body.WriteByte('\n')
		}
	}
	flush()

	return doc
}
