// Package mdsite converts Markdown to HTML pages.
//
// # Quick Start
//
// Create a converter and convert a document:
//
//	conv, err := mdsite.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, mdsite.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Title) // Hello
//	fmt.Println(result.HTML)  // <div><h1>Hello</h1><p>World</p></div>
//
// # Engines
//
// The default "dialect" engine compiles a small Markdown dialect:
// headings, paragraphs, fenced code, quotes, ordered and unordered lists,
// and inline bold, italic, code, links and images. Raw HTML passes through.
// Malformed inline markup (an unclosed ** or _) is an error, never guessed at.
//
// The "goldmark" engine renders CommonMark with GitHub extensions and
// syntax-highlighted code blocks:
//
//	conv, err := mdsite.NewConverter(
//	    mdsite.WithEngine(mdsite.EngineGoldmark),
//	    mdsite.WithHighlightStyle("monokai"),
//	)
//
// # Base Path
//
// Sites served below a path prefix rewrite root-relative links:
//
//	conv, err := mdsite.NewConverter(mdsite.WithBasePath("/my-repo/"))
//
// A link to "/about.html" then becomes "/my-repo/about.html". Absolute,
// protocol-relative and relative URLs are left alone.
//
// # Pages
//
// With a template, Convert also returns a complete page. The template must
// contain {{ Content }}; {{ Title }} is replaced by the document title:
//
//	conv, err := mdsite.NewConverter(mdsite.WithTemplate(tmpl))
//
// Whole-site builds (content tree, static files, watch mode, PDF export)
// are provided by the mdsite command.
package mdsite
