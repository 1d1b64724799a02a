package retrieval

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MatchID judges hits by document ID. Any other MatchOn value names a metadata key,
// such as "source", so one judgment covers every chunk of a file.
const MatchID = "id"

type Suite struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Version     string  `yaml:"version"`
	MatchOn     string  `yaml:"match_on"`
	Queries     []Query `yaml:"queries"`
}

type Query struct {
	ID          string            `yaml:"id"`
	Description string            `yaml:"description"`
	Text        string            `yaml:"query"`
	Filter      map[string]string `yaml:"filter,omitempty"`
	Judgments   []Judgment        `yaml:"judgments"`
}

type Judgment struct {
	Doc       string `yaml:"doc"`
	Relevance int    `yaml:"relevance"`
}

// JudgmentMap converts the judgments to a map keyed by document key.
func (q *Query) JudgmentMap() map[string]int {
	m := make(map[string]int, len(q.Judgments))
	for _, j := range q.Judgments {
		m[j.Doc] = j.Relevance
	}
	return m
}

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Queries) == 0 {
		return nil, fmt.Errorf("suite has no queries")
	}
	if s.MatchOn == "" {
		s.MatchOn = MatchID
	}

	seen := make(map[string]struct{}, len(s.Queries))
	for i, q := range s.Queries {
		if q.ID == "" {
			return nil, fmt.Errorf("query at index %d has no id", i)
		}
		if _, dup := seen[q.ID]; dup {
			return nil, fmt.Errorf("duplicate query id %q", q.ID)
		}
		seen[q.ID] = struct{}{}
		if q.Text == "" {
			return nil, fmt.Errorf("query %q has no query text", q.ID)
		}
		for _, j := range q.Judgments {
			if j.Doc == "" {
				return nil, fmt.Errorf("query %q has a judgment without doc", q.ID)
			}
			if j.Relevance < GradeNotRelevant || j.Relevance > GradeHighly {
				return nil, fmt.Errorf("query %q: relevance %d for %q is outside 0..3", q.ID, j.Relevance, j.Doc)
			}
		}
	}
	return &s, nil
}
