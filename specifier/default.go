/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import shfs "bennypowers.dev/shomer/fs"

// NewDefaultResolver creates a resolver chain that handles npm: and
// local paths. The rootDir is the starting directory for node_modules
// lookup.
func NewDefaultResolver(fs shfs.FileSystem, rootDir string) Resolver {
	return NewChainResolver(
		NewNPMResolver(fs, rootDir),
		NewLocalResolver(),
	)
}

// LocalResolver handles token source paths on the local filesystem.
// Config paths are already anchored under the project root before they
// reach the chain, so local resolution is a passthrough.
type LocalResolver struct{}

// NewLocalResolver creates a resolver for local token source paths.
func NewLocalResolver() *LocalResolver {
	return &LocalResolver{}
}

// Resolve returns the path unchanged.
func (r *LocalResolver) Resolve(spec string) (*ResolvedFile, error) {
	return &ResolvedFile{
		Specifier: spec,
		Path:      spec,
		Kind:      KindLocal,
	}, nil
}

// CanResolve reports whether spec is a plain path rather than a
// package specifier.
func (r *LocalResolver) CanResolve(spec string) bool {
	return !IsPackageSpecifier(spec)
}
