package output

import (
	"fmt"
	"strings"
)

const defaultListSeparator = "\n"

// ListParser splits an answer into distinct trimmed items.
type ListParser struct {
	Separator string
}

func NewListParser(separator string) *ListParser {
	if separator == "" {
		separator = defaultListSeparator
	}
	return &ListParser{Separator: separator}
}

func (p *ListParser) sep() string {
	if p.Separator == "" {
		return defaultListSeparator
	}
	return p.Separator
}

func (p *ListParser) Format() string {
	return fmt.Sprintf("List the items separated by %q.\nWrite one item per line.", p.sep())
}

// Parse returns non-empty items in first-seen order without duplicates.
func (p *ListParser) Parse(text string) []string {
	sep := p.sep()
	seen := make(map[string]bool)
	items := make([]string, 0)

	add := func(item string) {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			return
		}
		seen[item] = true
		items = append(items, item)
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if sep == "\n" {
			add(line)
			continue
		}
		for _, part := range strings.Split(line, sep) {
			add(part)
		}
	}
	return items
}
