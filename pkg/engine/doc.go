// Package engine is the rendering facade. It normalises caller input,
// resolves the template through the registry, renders it for the requested
// mode and reports every substitution it made as data. RenderDocument never
// returns an error: unknown templates fall back to the default and invalid
// values fall back to their defaults.
//
// Production renders are wrapped in a complete HTML document produced from an
// embedded pongo2 shell. Preview and email renders are fragments suitable for
// sandboxed preview containers and clipboard copies respectively.
package engine
