package topics

// Renderer turns raw topic content into terminal output
type Renderer interface {
	// Render formats content; ext is the topic file extension (".md", ".txt")
	Render(content string, ext string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, ext string) string {
	return content
}
