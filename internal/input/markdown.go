// Package input acquires raw passage text for analysis: resolving file
// arguments, reading stdin, and reducing Markdown sources to plain text.
package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

// isMarkdown returns true if the file extension is .md or .markdown.
func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// isText returns true for extensions the analyzer accepts when walking
// directories.
func isText(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".txt" || ext == ".text" || isMarkdown(path)
}

// ReadPassage reads the passage at path. Markdown files have front matter
// discarded and markup reduced to plain text; other files are read as-is.
func ReadPassage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}

	if isMarkdown(path) {
		return ExtractText(data), nil
	}
	return string(data), nil
}

// md parses with the front matter extender so YAML headers never leak into
// the extracted passage.
var md = goldmark.New(goldmark.WithExtensions(&frontmatter.Extender{}))

// ExtractText reduces Markdown source to the plain prose a reader would
// see: link and emphasis text is kept, markup and URLs are dropped, and
// block boundaries become newlines.
func ExtractText(source []byte) string {
	ctx := parser.NewContext()
	doc := md.Parser().Parse(text.NewReader(source), parser.WithContext(ctx))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				b.Write(node.Segment.Value(source))
				if node.SoftLineBreak() || node.HardLineBreak() {
					b.WriteByte(' ')
				}
			}
		case *ast.Image:
			// Keep the alt text (its Text children), drop the URL.
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			// Code is not prose; skip the whole block.
			if entering {
				return ast.WalkSkipChildren, nil
			}
		default:
			if !entering && isBlockBoundary(n) && b.Len() > 0 {
				b.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimRight(b.String(), "\n")
}

func isBlockBoundary(n ast.Node) bool {
	switch n.(type) {
	case *ast.Paragraph, *ast.Heading, *ast.ListItem, *ast.Blockquote:
		return true
	}
	return false
}
