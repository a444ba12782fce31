// Package pipeline implements the per-page Markdown-to-HTML conversion stages.
//
// A page flows through:
//   - Markdown preprocessing (line-ending normalization, BOM removal)
//   - Markdown to HTML fragment conversion, by one of two engines:
//     the built-in dialect compiler (internal/markdown) or Goldmark
//   - Base-path rewriting of root-relative href and src URLs
//   - Template hydration ({{ Title }}, {{ Content }}) and CSS injection
//
// Site-level concerns (walking the content tree, copying static files,
// writing pages) live in internal/sitegen.
package pipeline
