// Package assets provides the page templates and stylesheets a site is built with.
//
// Assets live in two kinds of directory, one per Kind:
//
//	styles/{name}.css
//	templates/{name}.html     # must contain {{ Content }}; {{ Title }} is optional
//
// The same layout is read from the binary (EmbeddedLoader) or from a
// directory on disk (FilesystemLoader). AssetResolver stacks a disk
// directory over the built-in set, so a site can override one asset and
// keep the rest. Only "not found" falls through to the next layer.
//
// Names are bare words. Anything with a separator or a dot is rejected
// before the file system is touched, and FilesystemLoader refuses
// symlinks that resolve outside its directory.
package assets
