// Package assets provides template helpers for resolving static asset URLs.
package assets

import (
	"html/template"

	httpassets "github.com/manytooh/catalog-admin/internal/http/assets"
)

// Options configures asset-related template helpers.
type Options struct {
	Resolver    *httpassets.AssetResolver
	CriticalCSS func() string
}

// Funcs returns template helpers for asset resolution and critical CSS embedding.
func Funcs(opts Options) template.FuncMap {
	return template.FuncMap{
		"asset": func(logicalName string) string {
			return httpassets.ResolveAsset(opts.Resolver, logicalName)
		},
		"criticalCSS": func() template.CSS {
			if opts.CriticalCSS == nil {
				return ""
			}
			// #nosec G203 - critical CSS comes from our own source files
			return template.CSS(opts.CriticalCSS())
		},
	}
}
