package model

import (
	"fmt"

	"go.uber.org/multierr"
)

type ProblemDifficulty string

const (
	Easy   ProblemDifficulty = "Easy"
	Medium ProblemDifficulty = "Medium"
	Hard   ProblemDifficulty = "Hard"
)

func (d ProblemDifficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// ParseProblemDifficulty 精确匹配，不做大小写转换
func ParseProblemDifficulty(s string) (ProblemDifficulty, bool) {
	d := ProblemDifficulty(s)
	return d, d.Valid()
}

type ProblemExample struct {
	Input       string `json:"input" yaml:"input"`
	Output      string `json:"output" yaml:"output"`
	Explanation string `json:"explanation" yaml:"explanation"`
}

type PracticeProblem struct {
	ProblemID       string            `json:"problemId" yaml:"problemId"`
	Title           string            `json:"title" yaml:"title"`
	Difficulty      ProblemDifficulty `json:"difficulty" yaml:"difficulty"`
	DifficultyStars int               `json:"difficultyStars" yaml:"difficultyStars"`
	Category        string            `json:"category" yaml:"category"`
	Subcategory     string            `json:"subcategory,omitempty" yaml:"subcategory,omitempty"`
	Description     string            `json:"description" yaml:"description"`
	Examples        []ProblemExample  `json:"examples" yaml:"examples"`
	Constraints     []string          `json:"constraints" yaml:"constraints"`
	Hints           []string          `json:"hints" yaml:"hints"`
	StarterCode     string            `json:"starterCode" yaml:"starterCode"`
	Solution        string            `json:"solution" yaml:"solution"`
	Explanation     string            `json:"explanation" yaml:"explanation"`
	TimeComplexity  string            `json:"timeComplexity,omitempty" yaml:"timeComplexity,omitempty"`
	SpaceComplexity string            `json:"spaceComplexity,omitempty" yaml:"spaceComplexity,omitempty"`
	RelatedProblems []string          `json:"relatedProblems,omitempty" yaml:"relatedProblems,omitempty"`
	Tags            []string          `json:"tags" yaml:"tags"`
	EstimatedTime   string            `json:"estimatedTime,omitempty" yaml:"estimatedTime,omitempty"`
}

func (p *PracticeProblem) Validate() error {
	var err error
	if p.ProblemID == "" {
		err = multierr.Append(err, fmt.Errorf("problem id is empty"))
	}
	if p.Title == "" {
		err = multierr.Append(err, fmt.Errorf("problem %q: title is empty", p.ProblemID))
	}
	if !p.Difficulty.Valid() {
		err = multierr.Append(err, fmt.Errorf("problem %q: invalid difficulty %q", p.ProblemID, p.Difficulty))
	}
	if p.DifficultyStars < 1 || p.DifficultyStars > 3 {
		err = multierr.Append(err, fmt.Errorf("problem %q: difficultyStars=%d out of range [1,3]", p.ProblemID, p.DifficultyStars))
	}
	return err
}
