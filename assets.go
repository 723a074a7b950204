// Package catalogadmin embeds the frontend assets shipped with the binary.
package catalogadmin

import "embed"

// Production builds serve static files and templates from these embedded
// filesystems. With IsDev=true both are read from disk instead so edits
// show up without a rebuild.

//go:embed all:frontend/static
var StaticFS embed.FS

//go:embed all:frontend/templates
var TemplateFS embed.FS
