package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"skillerset/internal/render"
	"skillerset/internal/view"
	"strings"

	"github.com/gin-gonic/gin"
	ginrender "github.com/gin-gonic/gin/render"
)

//go:embed templates static
var files embed.FS

const layoutName = "layout"

// Page 所有 HTML 页面共用的数据
type Page struct {
	Title       string
	Description string
	Nav         string
	Data        interface{}
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"add":          func(a, b int) int { return a + b },
		"topicLabel":   render.TopicLabel,
		"optionLetter": view.OptionLetter,
		"indent":       func(n int) string { return fmt.Sprintf("toc-indent-%d", n) },
		"lower":        func(v interface{}) string { return strings.ToLower(fmt.Sprint(v)) },
		"join":         strings.Join,
	}
}

// Renderer 每个页面独立克隆一份布局，避免 content 块互相覆盖
type Renderer struct {
	templates map[string]*template.Template
}

var _ ginrender.HTMLRender = (*Renderer)(nil)

func NewRenderer() (*Renderer, error) {
	base, err := template.New(layoutName).Funcs(FuncMap()).ParseFS(files, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pages, err := fs.Glob(files, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, p := range pages {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(files, p); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		name := strings.TrimSuffix(path.Base(p), path.Ext(p))
		r.templates[name] = t
	}
	return r, nil
}

func (r *Renderer) Instance(name string, data interface{}) ginrender.Render {
	t, ok := r.templates[name]
	if !ok {
		return missingTemplate(name)
	}
	return ginrender.HTML{Template: t, Name: layoutName, Data: data}
}

// Has 用于测试和启动检查
func (r *Renderer) Has(name string) bool {
	_, ok := r.templates[name]
	return ok
}

type missingTemplate string

func (m missingTemplate) Render(http.ResponseWriter) error {
	return fmt.Errorf("html template %q not found", string(m))
}

func (m missingTemplate) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

func Static() http.FileSystem {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// Mount 注册模板渲染器和静态资源
func Mount(router *gin.Engine) error {
	renderer, err := NewRenderer()
	if err != nil {
		return err
	}
	router.HTMLRender = renderer
	router.StaticFS("/static", Static())
	return nil
}
