// Package readme extracts a short description from a project's README file.
package readme

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Summary holds the README-derived metadata for a project.
type Summary struct {
	// Title is the text of the first heading, if any.
	Title string

	// Description is the text of the first paragraph, if any.
	Description string
}

// candidates are the README filenames probed inside a project directory, in
// preference order.
var candidates = []string{"README.md", "readme.md", "Readme.md"}

// Load reads the project's README and extracts its title and first paragraph.
// A missing or unparseable README yields an empty Summary, never an error:
// a description is decoration, not data the caller depends on.
func Load(projectDir string) Summary {
	for _, name := range candidates {
		data, err := os.ReadFile(filepath.Join(projectDir, name))
		if err != nil {
			continue
		}
		return Parse(data)
	}
	return Summary{}
}

// Parse extracts the first heading and first paragraph from markdown source.
func Parse(source []byte) Summary {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var summary Summary
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			if summary.Title == "" {
				summary.Title = extractText(node, source)
			}
		case *ast.Paragraph:
			if summary.Description == "" {
				summary.Description = extractText(node, source)
			}
		}

		if summary.Title != "" && summary.Description != "" {
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	return summary
}

// extractText extracts plain text from an AST node
func extractText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if text, ok := c.(*ast.Text); ok {
			buf.Write(text.Segment.Value(source))
		}
	}
	return buf.String()
}
