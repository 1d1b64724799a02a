package output

import (
	"fmt"
	"strings"
)

const defaultMapSeparator = ":"

// MapParser reads "key<sep> value" lines.
type MapParser struct {
	Separator string
}

func NewMapParser(separator string) *MapParser {
	if separator == "" {
		separator = defaultMapSeparator
	}
	return &MapParser{Separator: separator}
}

func (p *MapParser) sep() string {
	if p.Separator == "" {
		return defaultMapSeparator
	}
	return p.Separator
}

func (p *MapParser) Format() string {
	sep := p.sep()
	return fmt.Sprintf("Answer in \"Key%s Value\" format, one pair per line.\nExample:\nKey1%s Value1\nKey2%s Value2", sep, sep, sep)
}

// Parse splits each line containing the separator once. Later keys win.
func (p *MapParser) Parse(text string) map[string]string {
	sep := p.sep()
	out := make(map[string]string)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, sep) {
			continue
		}
		key, value, _ := strings.Cut(line, sep)
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}
