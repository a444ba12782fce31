package assets

// Template placeholders.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// Names of the built-in assets used when nothing else is configured.
const (
	DefaultTemplateName = "default"
	DefaultStyleName    = "default"
)

var builtinLoader = NewEmbeddedLoader()

// LoadStyle returns a built-in style.
func LoadStyle(name string) (string, error) {
	return builtinLoader.LoadStyle(name)
}

// LoadTemplate returns a built-in page template.
func LoadTemplate(name string) (string, error) {
	return builtinLoader.LoadTemplate(name)
}
