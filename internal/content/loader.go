package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"skillerset/internal/model"
	"skillerset/internal/repository"
	"skillerset/pkg/logger"
	"sort"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed data
var embedded embed.FS

const (
	TutorialDir = "tutorials"
	PracticeDir = "practice"
)

// Embedded 内置内容，根目录下为 tutorials/ 与 practice/
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Source dir 为空时返回内置内容
func Source(dir string) fs.FS {
	if dir == "" {
		return Embedded()
	}
	return os.DirFS(dir)
}

type Stats struct {
	Files     int `json:"files"`
	Tutorials int `json:"tutorials"`
	Problems  int `json:"problems"`
	// 无效片段不阻止加载，渲染时跳过
	Warnings []string `json:"warnings,omitempty"`
}

type practiceFile struct {
	Problems []*model.PracticeProblem `yaml:"problems"`
}

// Load 解码并校验全部内容，全部通过后才注册，避免注册表处于半初始化状态
func Load(fsys fs.FS, tutorials *repository.TutorialRepository, problems *repository.PracticeProblemRepository) (*Stats, error) {
	stats := &Stats{}
	var errs error

	tutorialFiles, err := yamlFiles(fsys, TutorialDir)
	if err != nil {
		return nil, err
	}
	practiceFiles, err := yamlFiles(fsys, PracticeDir)
	if err != nil {
		return nil, err
	}

	var decodedTutorials []*model.Tutorial
	for _, name := range tutorialFiles {
		stats.Files++
		var t model.Tutorial
		if err := decodeFile(fsys, name, &t); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if err := t.Validate(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		stats.Warnings = append(stats.Warnings, invalidSections(name, &t)...)
		decodedTutorials = append(decodedTutorials, &t)
	}

	var decodedProblems []*model.PracticeProblem
	for _, name := range practiceFiles {
		stats.Files++
		var pf practiceFile
		if err := decodeFile(fsys, name, &pf); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		for i, p := range pf.Problems {
			if p == nil {
				errs = multierr.Append(errs, fmt.Errorf("%s: problems[%d] is empty", name, i))
				continue
			}
			if err := p.Validate(); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, err))
				continue
			}
			decodedProblems = append(decodedProblems, p)
		}
	}

	if errs != nil {
		return nil, errs
	}

	for _, w := range stats.Warnings {
		logger.Log.Warn("Invalid content section", zap.String("detail", w))
	}
	warnDuplicates("tutorial", decodedTutorials, func(t *model.Tutorial) string { return t.ID })
	warnDuplicates("practice problem", decodedProblems, func(p *model.PracticeProblem) string { return p.ProblemID })

	for _, t := range decodedTutorials {
		tutorials.Register(t)
	}
	for _, p := range decodedProblems {
		problems.Register(p)
	}

	stats.Tutorials = tutorials.Count()
	stats.Problems = problems.Count()

	logger.Log.Info("Content registered",
		zap.Int("files", stats.Files),
		zap.Int("tutorials", stats.Tutorials),
		zap.Int("problems", stats.Problems),
	)
	return stats, nil
}

func yamlFiles(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read content dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch path.Ext(e.Name()) {
		case ".yaml", ".yml":
			names = append(names, path.Join(dir, e.Name()))
		}
	}
	sort.Strings(names)
	return names, nil
}

func decodeFile(fsys fs.FS, name string, out interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("parse %s: empty file", name)
		}
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func invalidSections(file string, t *model.Tutorial) []string {
	var out []string
	for i, s := range t.Content {
		if inv, ok := s.(model.InvalidSection); ok {
			out = append(out, fmt.Sprintf("%s: tutorial %q content[%d] (%s): %s", file, t.ID, i, inv.Kind, inv.Reason))
		}
	}
	return out
}

// 重复 id 以最后一次为准，只记录警告
func warnDuplicates[T any](kind string, items []T, id func(T) string) {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		key := id(it)
		if seen[key] {
			logger.Log.Warn("Duplicate content id, last one wins", zap.String("kind", kind), zap.String("id", key))
		}
		seen[key] = true
	}
}
