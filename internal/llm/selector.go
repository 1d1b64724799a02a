package llm

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	shortQuestionLimit = 50
	greetingLimit      = 30
)

var greetingPattern = regexp.MustCompile(`안녕|hi|hello|thanks|감사`)

// Selector routes prompts between a primary model and an optional light model.
type Selector struct {
	primary ChatModel
	light   ChatModel
}

// Selection is the outcome of a routing decision.
type Selection struct {
	Model ChatModel
	Light bool
}

func NewSelector(primary, light ChatModel) *Selector {
	return &Selector{primary: primary, light: light}
}

// Select sends short questions to the light model when one is configured.
func (s *Selector) Select(question string) Selection {
	if s.light != nil && utf8.RuneCountInString(question) < shortQuestionLimit {
		return Selection{Model: s.light, Light: true}
	}
	return Selection{Model: s.primary}
}

// SelectCostOptimized sends only short greetings to the light model.
func (s *Selector) SelectCostOptimized(message string) Selection {
	if s.light != nil &&
		utf8.RuneCountInString(message) < greetingLimit &&
		greetingPattern.MatchString(strings.ToLower(message)) {
		return Selection{Model: s.light, Light: true}
	}
	return Selection{Model: s.primary}
}
