// Package domain defines the core business entities for captionview.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: a data record whose fields hold model output
//   - FieldSchema: the declared name and type of a record field
//   - FormattedOutput: the display form of a normalised field value
//   - EditSession: the view/edit state of one caption panel
//   - PanelView: the component tree a host renders for a panel
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
