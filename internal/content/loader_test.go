package content

import (
	"skillerset/internal/model"
	"skillerset/internal/repository"
	"testing"
	"testing/fstest"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func loadEmbedded(t *testing.T) (*repository.TutorialRepository, *repository.PracticeProblemRepository) {
	t.Helper()
	tutorials := repository.NewTutorialRepository()
	problems := repository.NewPracticeProblemRepository()
	stats, err := Load(Embedded(), tutorials, problems)
	require.NoError(t, err)
	assert.Equal(t, 11, stats.Files)
	return tutorials, problems
}

func TestLoad_Embedded(t *testing.T) {
	tutorials, problems := loadEmbedded(t)

	assert.Equal(t, 10, tutorials.Count())
	assert.Equal(t, 10, problems.Count())

	tu, ok := tutorials.FindByID("python-basics")
	require.True(t, ok)
	assert.Equal(t, "Python Basics - Getting Started with Python", tu.Title)
	assert.Equal(t, model.Beginner, tu.Difficulty)
	assert.Len(t, tu.Quiz, 5)

	_, ok = tutorials.FindByID("nonexistent")
	assert.False(t, ok)

	web := lo.Map(tutorials.FindByCategory("Web Development"), func(t *model.Tutorial, _ int) string { return t.ID })
	assert.ElementsMatch(t, []string{"css-flexbox", "html-introduction", "javascript-functions", "react-components"}, web)

	assert.Empty(t, tutorials.FindByCategory("Mobile Development"))

	p, ok := problems.FindByID("py-001")
	require.True(t, ok)
	assert.Equal(t, model.Easy, p.Difficulty)
	assert.Equal(t, 1, p.DifficultyStars)
	assert.NotEmpty(t, p.Hints)
}

func TestLoad_EmbeddedContentIsWellFormed(t *testing.T) {
	tutorials, _ := loadEmbedded(t)

	for _, tu := range tutorials.FindAll() {
		assert.NotEmpty(t, tu.Content, tu.ID)
		for i, s := range tu.Content {
			_, bad := s.(model.InvalidSection)
			assert.False(t, bad, "%s content[%d] is invalid: %+v", tu.ID, i, s)
		}
		for i, q := range tu.Quiz {
			assert.Less(t, q.Correct, len(q.Options), "%s quiz[%d]", tu.ID, i)
		}
	}
}

const validTutorial = `
id: demo
title: Demo
category: Testing
difficulty: Beginner
content:
- type: heading
  text: Intro
- type: interactive
  text: not supported
quiz:
- question: Pick one
  options: [a, b]
  correct: 1
`

func TestLoad_FromMapFS(t *testing.T) {
	fsys := fstest.MapFS{
		"tutorials/demo.yaml": {Data: []byte(validTutorial)},
		"tutorials/README.md": {Data: []byte("ignored")},
		"practice/set.yml": {Data: []byte(`
problems:
- problemId: p-1
  title: One
  difficulty: Medium
  difficultyStars: 2
  category: Misc
`)},
	}

	tutorials := repository.NewTutorialRepository()
	problems := repository.NewPracticeProblemRepository()
	stats, err := Load(fsys, tutorials, problems)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Files)
	assert.Equal(t, 1, stats.Tutorials)
	assert.Equal(t, 1, stats.Problems)
	require.Len(t, stats.Warnings, 1)
	assert.Contains(t, stats.Warnings[0], `tutorial "demo" content[1] (interactive)`)

	tu, ok := tutorials.FindByID("demo")
	require.True(t, ok)
	require.Len(t, tu.Content, 2)
	assert.IsType(t, model.InvalidSection{}, tu.Content[1])
}

func TestLoad_WarnsOnMisspelledSectionField(t *testing.T) {
	fsys := fstest.MapFS{
		"tutorials/typo.yaml": {Data: []byte(`
id: typo
title: Typo
category: Testing
difficulty: Beginner
content:
- type: heading
  text: Deep
  levle: 4
- type: paragraph
  text: fine
`)},
	}

	tutorials := repository.NewTutorialRepository()
	stats, err := Load(fsys, tutorials, repository.NewPracticeProblemRepository())
	require.NoError(t, err)

	require.Len(t, stats.Warnings, 1)
	assert.Contains(t, stats.Warnings[0], "tutorials/typo.yaml")
	assert.Contains(t, stats.Warnings[0], "content[0] (heading)")
	assert.Contains(t, stats.Warnings[0], "levle")

	tu, ok := tutorials.FindByID("typo")
	require.True(t, ok)
	require.Len(t, tu.Content, 2)
	assert.IsType(t, model.InvalidSection{}, tu.Content[0])
	assert.IsType(t, model.ParagraphSection{}, tu.Content[1])
}

func TestLoad_RejectsInvalidContent(t *testing.T) {
	fsys := fstest.MapFS{
		"tutorials/good.yaml": {Data: []byte(validTutorial)},
		"tutorials/bad-quiz.yaml": {Data: []byte(`
id: bad-quiz
title: Bad
category: Testing
difficulty: Beginner
quiz:
- question: Out of range
  options: [a, b]
  correct: 2
`)},
		"tutorials/bad-difficulty.yaml": {Data: []byte(`
id: bad-difficulty
title: Bad
category: Testing
difficulty: Expert
`)},
		"tutorials/typo.yaml": {Data: []byte(`
id: typo
titel: Bad
`)},
	}

	tutorials := repository.NewTutorialRepository()
	problems := repository.NewPracticeProblemRepository()
	_, err := Load(fsys, tutorials, problems)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
	assert.Contains(t, err.Error(), "quiz[0].correct=2")
	assert.Contains(t, err.Error(), "typo.yaml")

	assert.Zero(t, tutorials.Count(), "nothing is registered when validation fails")
}

func TestLoad_MissingDirectories(t *testing.T) {
	stats, err := Load(fstest.MapFS{}, repository.NewTutorialRepository(), repository.NewPracticeProblemRepository())
	require.NoError(t, err)
	assert.Zero(t, stats.Files)
}
