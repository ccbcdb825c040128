// Package model defines the passive configuration records consumed by the
// button renderers: single buttons, their AJAX behaviour and dropdown menus,
// button groups and toolbars. Builders in pkg/builder and the declarative
// loader in pkg/document populate these records; renderers in pkg/render read
// them. Nothing here validates beyond defaults: exclusivity of action kinds is
// carried structurally by Action, a tagged union decided when the
// configuration is built.
package model
