// Package manifest parses and validates template-set manifests. A manifest
// names a template set and lists, in output order, each generated file's role,
// its filename pattern, and the template body it is rendered from. Manifests
// are checked against an embedded JSON Schema before they are used.
package manifest
