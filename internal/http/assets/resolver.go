// Package assets maps logical static asset names to their content-hashed
// filenames using a build-generated manifest.json.
package assets

import (
	"encoding/json"
	"io/fs"
	"os"
	"sync"
)

// AssetResolver resolves logical asset names to hashed filenames.
// A resolver with no manifest loaded passes names through unchanged, which
// keeps dev setups working before the asset pipeline has run.
type AssetResolver struct {
	mu       sync.RWMutex
	manifest map[string]string
}

// NewAssetResolverFromFS creates a resolver that reads the manifest from fsys.
// A missing manifest is not an error; the resolver falls back to logical names.
func NewAssetResolverFromFS(fsys fs.FS, manifestPath string) (*AssetResolver, error) {
	r := &AssetResolver{manifest: map[string]string{}}
	data, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		return r, err
	}
	if err := json.Unmarshal(data, &r.manifest); err != nil {
		return r, err
	}
	return r, nil
}

// NewAssetResolverFromDisk creates a resolver that reads the manifest from a
// file path. Missing or malformed manifests fall back to logical names.
func NewAssetResolverFromDisk(manifestPath string) (*AssetResolver, error) {
	r := &AssetResolver{manifest: map[string]string{}}
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return r, err
	}
	if err := json.Unmarshal(data, &r.manifest); err != nil {
		return r, err
	}
	return r, nil
}

// Resolve returns the hashed filename for the logical name, or the logical
// name itself when no mapping exists.
func (r *AssetResolver) Resolve(logicalName string) string {
	if r == nil {
		return logicalName
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if hashed, ok := r.manifest[logicalName]; ok && hashed != "" {
		return hashed
	}
	return logicalName
}

// ResolveAsset returns the static URL for the logical asset name.
func ResolveAsset(r *AssetResolver, logicalName string) string {
	return "/static/" + r.Resolve(logicalName)
}
