// Package vlm normalises free-form vision-language model output for display.
//
// The pipeline runs in a fixed order:
//
//  1. Sanitize: strip script blocks and inline event handlers, truncate.
//  2. FormatJSON: pretty-print the whole text if it is valid JSON. JSON
//     output is final.
//  3. ConvertTables: replace each <table> span with a pipe table.
//  4. ResolveEscapes: turn literal \n, \t and \r into control characters.
//
// Markdown then applies hard line breaks for display. Every step is a pure
// function and never fails; malformed input degrades to literal text.
package vlm
