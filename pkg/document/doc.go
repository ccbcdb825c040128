// Package document loads named buttons, groups and toolbars from declarative
// YAML, JSON or JSONC files.
//
// The typical flow:
//
//  1. Load or LoadFS: read every widget file from an fs.FS into a Store.
//  2. Parse: decode one file and validate its structure.
//  3. Store.Button, Store.Group, Store.Toolbar: replay a spec through the
//     builder, producing a fresh configuration (and fresh default ids) per
//     lookup.
//
// Every spec is replayed once at load time so builder rules (one action per
// button, one action per dropdown item) are enforced before anything renders.
package document
