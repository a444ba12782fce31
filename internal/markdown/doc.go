// Package markdown converts a constrained Markdown dialect into an htmlnode tree.
//
// # Pipeline
//
// A document flows through four stages:
//
//  1. Segment splits the document into blocks on blank lines. Blank lines inside
//     fenced code blocks do not split.
//  2. Classify assigns each block one BlockKind using ordered rules.
//  3. TextToSpans parses inline content into typed spans, applying bold, italic,
//     code, image and link extraction in that fixed order.
//  4. Compile builds one node subtree per block under a root div.
//
// # Dialect
//
// Supported blocks: paragraphs, ATX headings (# to ######), fenced code (```),
// quotes (>), unordered lists (- ) and ordered lists (1. 2. ...).
// Supported inline: **bold**, _italic_, `code`, [links](url) and ![images](url).
// Inline styles do not nest, lists do not nest, and no HTML escaping is applied.
//
// All functions are pure and safe for concurrent use.
package markdown
