// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package markdown converts markdown files into standalone HTML
// documents: GFM rendering wrapped in a fixed head/body skeleton with
// a best-effort re-indentation pass over the body.
package markdown

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// BodyIndent is the number of spaces body content is indented inside
// the document skeleton.
const BodyIndent = 4

// Converter renders markdown files into standalone HTML documents.
type Converter struct {
	md goldmark.Markdown
}

// New creates a Converter. Raw HTML and all link protocols pass
// through unchanged: the input is trusted local content, the same
// stance the builder takes elsewhere.
func New() *Converter {
	return &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Render converts markdown source into a full HTML document titled
// with the given title.
func (c *Converter) Render(source []byte, title string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}

	return Document(title, buf.String()), nil
}

// ConvertFile converts one markdown file and writes the result into
// outDir, named after the input file stem with an .html extension.
// It returns the output path.
func (c *Converter) ConvertFile(mdPath, outDir string) (string, error) {
	source, err := os.ReadFile(mdPath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", mdPath, err)
	}

	stem := strings.TrimSuffix(filepath.Base(mdPath), filepath.Ext(mdPath))

	doc, err := c.Render(source, stem)
	if err != nil {
		return "", fmt.Errorf("converting %s: %w", mdPath, err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	outPath := filepath.Join(outDir, stem+".html")
	if err := os.WriteFile(outPath, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}

	return outPath, nil
}

// Document wraps rendered body HTML in the fixed document skeleton:
// charset and viewport meta tags, the title, and an indented body.
func Document(title, body string) string {
	head := fmt.Sprintf("    <meta charset=\"UTF-8\">\n"+
		"    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n"+
		"    <title>%s</title>", title)

	return fmt.Sprintf("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n%s\n</head>\n<body>\n%s</body>\n</html>",
		head, IndentHTML(body, BodyIndent))
}
