package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/genai-lab/internal/llm"
	"github.com/DjordjeVuckovic/genai-lab/internal/output"
)

type WorkExperience struct {
	Company     string  `json:"company"`
	Position    string  `json:"position"`
	StartDate   string  `json:"startDate" jsonschema:"description=YYYY-MM"`
	EndDate     *string `json:"endDate,omitempty" jsonschema:"description=YYYY-MM or null while still employed"`
	Description *string `json:"description,omitempty"`
}

type Education struct {
	School         string `json:"school"`
	Degree         string `json:"degree"`
	Major          string `json:"major"`
	GraduationYear *int   `json:"graduationYear,omitempty"`
}

type Skill struct {
	Name        string  `json:"name"`
	Category    string  `json:"category" jsonschema:"description=Backend Frontend Database DevOps Mobile Cloud ..."`
	Proficiency *string `json:"proficiency,omitempty" jsonschema:"enum=Beginner,enum=Intermediate,enum=Advanced,enum=Expert"`
}

type ResumeInfo struct {
	Name            string           `json:"name"`
	Email           *string          `json:"email,omitempty"`
	Phone           *string          `json:"phone,omitempty"`
	Address         *string          `json:"address,omitempty"`
	Summary         *string          `json:"summary,omitempty"`
	WorkExperiences []WorkExperience `json:"workExperiences"`
	Educations      []Education      `json:"educations"`
	Skills          []Skill          `json:"skills"`
}

type BasicResumeInfo struct {
	Name              string  `json:"name"`
	Email             *string `json:"email,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	YearsOfExperience *int    `json:"yearsOfExperience,omitempty"`
	CurrentPosition   *string `json:"currentPosition,omitempty"`
}

type skillList struct {
	Skills []Skill `json:"skills"`
}

const resumeRules = `Rules:
- Set missing fields to null.
- Use "YYYY-MM" for dates; endDate is null for the current job.
- graduationYear is an integer year.
- Return valid JSON only; use [] for empty arrays.`

// AnalyzeResume extracts the full resume including experience, education and skills.
func (s *Service) AnalyzeResume(ctx context.Context, resume string) (*ResumeInfo, error) {
	info, err := extract[ResumeInfo](ctx, s, resume, "Extract the resume information.\n"+resumeRules)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// BasicResume extracts contact details, total years of experience and the latest position.
func (s *Service) BasicResume(ctx context.Context, resume string) (*BasicResumeInfo, error) {
	info, err := extract[BasicResumeInfo](ctx, s, resume,
		"Extract only the basic resume information.\n"+
			"- yearsOfExperience is the total years of work as an integer.\n"+
			"- currentPosition is the current or most recent title.\n"+resumeRules)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *Service) ExtractSkills(ctx context.Context, resume string) ([]Skill, error) {
	list, err := extract[skillList](ctx, s, resume,
		"Extract only technologies and skills stated in the resume. Merge variants such as Java and Java 8.\n"+resumeRules)
	if err != nil {
		return nil, err
	}
	if list.Skills == nil {
		return []Skill{}, nil
	}
	return list.Skills, nil
}

func extract[T any](ctx context.Context, s *Service, resume, instructions string) (T, error) {
	var zero T
	if err := requireText(resume); err != nil {
		return zero, err
	}

	parser := output.NewStructParser[T]()
	system := strings.Join([]string{
		"You are a resume analysis expert.",
		instructions,
		parser.Format(),
	}, "\n\n")

	resp, err := s.models.Default().Call(ctx, &llm.Request{
		Messages: []llm.Message{llm.System(system), llm.User(resume)},
	})
	if err != nil {
		return zero, err
	}

	out, err := parser.Parse(resp.Message.Content)
	if err != nil {
		return zero, fmt.Errorf("resume analysis: %w", err)
	}
	return out, nil
}
