// Package sitegen builds a static site from a content tree.
//
// A build copies the static directory into the output directory, writes the
// site stylesheet, then turns every Markdown file under the content directory
// into an HTML page at the mirrored path. Pages are generated concurrently;
// one failing page does not stop the others.
package sitegen
