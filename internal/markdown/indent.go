// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package markdown

import "strings"

// IndentHTML re-indents rendered HTML by naive tag-open/tag-close
// string detection. It is a lossy, best-effort text reformatter, not a
// parser: self-closing tags, void elements, and attributes spanning
// multiple lines are not handled generically. Lines are trimmed and
// re-emitted at the tracked depth, starting at baseIndent spaces.
func IndentHTML(htmlText string, baseIndent int) string {
	var result strings.Builder
	depth := baseIndent

	for line := range strings.Lines(htmlText) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			result.WriteByte('\n')
			continue
		}

		if strings.HasPrefix(trimmed, "</") {
			depth -= 4
			if depth < 0 {
				depth = 0
			}
		}

		result.WriteString(strings.Repeat(" ", depth))
		result.WriteString(trimmed)
		result.WriteByte('\n')

		if strings.Contains(trimmed, "<") &&
			!strings.Contains(trimmed, "</") &&
			!strings.HasSuffix(trimmed, "/>") {
			depth += 4
		}
	}

	return result.String()
}
