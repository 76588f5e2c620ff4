package main

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/AlvaroMoyaL/fitapp/internal/contexthelpers"
	"github.com/AlvaroMoyaL/fitapp/internal/errors"
	"github.com/AlvaroMoyaL/fitapp/internal/i18n"
	"github.com/yuin/goldmark"
)

//go:embed ui
var uiFS embed.FS

// BaseTemplateData carries the fields every page template expects.
type BaseTemplateData struct {
	CurrentPath string
	Language    string
}

func newBaseTemplateData(r *http.Request) BaseTemplateData {
	return BaseTemplateData{
		CurrentPath: contexthelpers.CurrentPath(r.Context()),
		Language:    contexthelpers.Language(r.Context()),
	}
}

// baseTemplateFuncs returns the base template.FuncMap with placeholder implementations.
// Context-dependent functions (nonce, t, mdToHTML) are overridden in contextTemplateFuncs.
func (app *application) baseTemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"nonce": func() string {
			panic("not implemented")
		},
		"t": func(string) string {
			panic("not implemented")
		},
		"mdToHTML": func(string) template.HTML {
			panic("not implemented")
		},
	}
}

// contextTemplateFuncs returns template.FuncMap with context-dependent function implementations.
func (app *application) contextTemplateFuncs(ctx context.Context) template.FuncMap {
	nonce := fmt.Sprintf("nonce=%q", contexthelpers.CSPNonce(ctx))
	lang := i18n.Language(contexthelpers.Language(ctx))
	return template.FuncMap{
		"nonce": func() template.HTMLAttr {
			return template.HTMLAttr(nonce) //nolint:gosec // we trust the nonce since it's not provided by user.
		},
		"t": func(key string) string {
			return i18n.Translate(lang, key)
		},
		"mdToHTML": func(markdown string) template.HTML {
			return renderMarkdownToHTML(markdown)
		},
	}
}

// renderMarkdownToHTML converts trusted markdown (catalog descriptions, not
// user input) to HTML.
func renderMarkdownToHTML(markdown string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(markdown)) //nolint:gosec // escaped above.
	}
	return template.HTML(buf.String()) //nolint:gosec // goldmark escapes raw HTML by default.
}

// pageTemplate returns a template for the given page name.
//
// pageName corresponds to a directory inside ui/templates/pages. It has to include a template named "page".
func (app *application) pageTemplate(pageName string) (*template.Template, error) {
	t := template.New(pageName).Funcs(app.baseTemplateFuncs())
	t, err := t.ParseFS(uiFS, "ui/templates/base.gohtml", fmt.Sprintf("ui/templates/pages/%s/*.gohtml", pageName))
	if err != nil {
		return nil, fmt.Errorf("new template: %w", err)
	}
	return t, nil
}

func (app *application) renderToBuf(ctx context.Context, page string, data any) (*bytes.Buffer, error) {
	t, err := app.pageTemplate(page)
	if err != nil {
		return nil, fmt.Errorf("retrieve page template %s: %w", page, err)
	}

	buf := new(bytes.Buffer)
	t.Funcs(app.contextTemplateFuncs(ctx))
	if err = t.ExecuteTemplate(buf, "base", data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", page, err)
	}
	return buf, nil
}

func (app *application) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	buf, err := app.renderToBuf(r.Context(), page, data)
	if err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "render template",
			slog.String("page", page), errors.SlogError(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
