package mdsite_test

import (
	"context"
	"fmt"

	"github.com/alnah/go-mdsite"
)

// Example converts a document with the default dialect engine.
func Example() {
	conv, err := mdsite.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), mdsite.Input{
		Markdown: "# Hello World\n\nThis is a **test**.",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Title)
	fmt.Println(result.HTML)
	// Output:
	// Hello World
	// <div><h1>Hello World</h1><p>This is a <b>test</b>.</p></div>
}

// Example_basePath rewrites root-relative links for a site served below /docs/.
func Example_basePath() {
	conv, err := mdsite.NewConverter(mdsite.WithBasePath("/docs/"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), mdsite.Input{
		Markdown: "# Links\n\n[guide](/guide.html) and ![logo](/logo.png)",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.HTML)
	// Output: <div><h1>Links</h1><p><a href="/docs/guide.html">guide</a> and <img src="/docs/logo.png" alt="logo"></img></p></div>
}

// ExampleToHTML shows the error returned for unclosed inline markup.
func ExampleToHTML() {
	_, err := mdsite.ToHTML("an _unclosed italic")
	fmt.Println(err != nil)
	// Output: true
}
