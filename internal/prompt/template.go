package prompt

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{"
	endTag   = "}"
)

// Template is prompt text with {name} placeholders.
type Template struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Text        string `yaml:"text" json:"text"`
}

type Params map[string]any

func (t *Template) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("template has no name")
	}
	if strings.TrimSpace(t.Text) == "" {
		return fmt.Errorf("template %q has no text", t.Name)
	}
	if _, err := fasttemplate.NewTemplate(t.Text, startTag, endTag); err != nil {
		return fmt.Errorf("template %q: %w", t.Name, err)
	}
	return nil
}

// Render substitutes every placeholder. Missing params are a validation error.
func (t *Template) Render(params Params) (string, error) {
	tpl, err := fasttemplate.NewTemplate(t.Text, startTag, endTag)
	if err != nil {
		return "", apperr.NewValidationWrap(fmt.Sprintf("template %q is malformed", t.Name), err)
	}

	var missing []string
	out := tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		key := strings.TrimSpace(tag)
		val, ok := params[key]
		if !ok {
			missing = append(missing, key)
			return 0, nil
		}
		return w.Write([]byte(formatValue(val)))
	})

	if len(missing) > 0 {
		return "", apperr.NewValidation(fmt.Sprintf("template %q missing params: %s", t.Name, strings.Join(dedupe(missing), ", ")))
	}
	return out, nil
}

// RequiredParams lists placeholder names in first-seen order.
func (t *Template) RequiredParams() []string {
	tpl, err := fasttemplate.NewTemplate(t.Text, startTag, endTag)
	if err != nil {
		return nil
	}

	var params []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		params = append(params, strings.TrimSpace(tag))
		return 0, nil
	})
	return dedupe(params)
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []string:
		return strings.Join(val, ", ")
	case []any:
		strs := make([]string, len(val))
		for i, item := range val {
			strs[i] = formatValue(item)
		}
		return strings.Join(strs, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
