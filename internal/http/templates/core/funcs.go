// Package core provides the shared template helper functions.
package core

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/manytooh/catalog-admin/internal/http/uiutil"
)

// Deps holds dependencies for constructing the core template func map.
type Deps struct {
	Template           **template.Template
	ContentTemplateFor func(string) string
}

// Funcs returns a template.FuncMap containing helpers that are broadly useful across templates.
func Funcs(deps Deps) template.FuncMap {
	funcs := template.FuncMap{
		"sectionTmpl":  deps.ContentTemplateFor,
		"friendlyTime": friendlyTime,
		"relativeTime": relativeTime,
		"timeTag":      timeTag,
		"add":          func(a, b int) int { return a + b },
		"sub":          func(a, b int) int { return a - b },
		"truncateText": func(s string, limit int) string { return uiutil.TruncateWithEllipsis(s, limit) },
	}

	funcs["renderSection"] = func(page string, data any) (template.HTML, error) {
		if deps.Template == nil || *deps.Template == nil {
			return "", errors.New("template not initialized")
		}
		var buf bytes.Buffer
		if err := (*deps.Template).ExecuteTemplate(&buf, deps.ContentTemplateFor(page), data); err != nil {
			return "", err
		}
		// #nosec G203 - rendered by our own templates; values were auto-escaped above
		return template.HTML(buf.String()), nil
	}

	return funcs
}

func coerceTime(ts any) time.Time {
	switch v := ts.(type) {
	case time.Time:
		return v
	case *time.Time:
		if v != nil {
			return *v
		}
	}
	return time.Time{}
}

func relativeTime(ts any) string {
	t0 := coerceTime(ts)
	if t0.IsZero() {
		return ""
	}
	return uiutil.FriendlyRelativeTime(t0)
}

func friendlyTime(ts any) string {
	t0 := coerceTime(ts)
	if t0.IsZero() {
		return ""
	}
	return uiutil.FormatFriendlyDateTime(t0)
}

func timeTag(ts any) template.HTML {
	t0 := coerceTime(ts)
	if t0.IsZero() {
		return ""
	}
	friendly := t0.Local().Format("Jan 2, 2006 3:04:05 PM")
	dt := t0.UTC().Format(time.RFC3339)
	title := t0.Local().Format(time.RFC1123)
	// #nosec G203 - constructed from trusted, escaped values only
	return template.HTML(
		fmt.Sprintf(
			"<time datetime=\"%s\" title=\"%s\">%s</time>",
			dt,
			template.HTMLEscapeString(title),
			template.HTMLEscapeString(friendly),
		),
	)
}
