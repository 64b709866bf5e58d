// Package reader turns a source file into rendered HTML plus metadata, the
// inputs content.New expects. Markdown is rendered by goldmark; HTML files
// are passed through. Both may start with a YAML header.
package reader

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	ferrors "git.home.luguber.info/inful/sitecontent/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecontent/internal/frontmatter"
	"git.home.luguber.info/inful/sitecontent/internal/logfields"
)

// Document is one parsed source file.
type Document struct {
	Path     string
	Metadata map[string]any
	HTML     string
}

// goldmark percent-encodes |, { and } in link destinations; placeholders
// have to survive rendering.
var escapedRefRe = regexp.MustCompile(`(?i)((?:href|src)=")(?:%7C(\w+)%7C|%7B(\w+)%7D)`)

// Reader renders source files. It is safe for concurrent use.
type Reader struct {
	md goldmark.Markdown
}

// New returns a Reader with GitHub flavoured Markdown enabled. Raw HTML in
// Markdown is kept.
func New() *Reader {
	return &Reader{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
	}
}

var defaultReader = New()

// ReadFile reads path with the default Reader.
func ReadFile(path string) (*Document, error) {
	return defaultReader.ReadFile(path)
}

// Supported reports whether the file extension has a renderer.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".html", ".htm":
		return true
	}
	return false
}

// ReadFile loads and renders path.
func (r *Reader) ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		b := ferrors.WrapError(err, ferrors.CategoryFileSystem, "cannot read source file")
		if os.IsNotExist(err) {
			b = ferrors.WrapError(err, ferrors.CategoryNotFound, "source file not found")
		}
		return nil, b.WithContext(logfields.KeyFile, path).Build()
	}
	return r.Read(path, data)
}

// Read renders data as if it had been read from path. The extension of
// path selects the renderer.
func (r *Reader) Read(path string, data []byte) (*Document, error) {
	if !Supported(path) {
		return nil, ferrors.ContentError("unsupported source format").
			WithContext(logfields.KeyFile, path).
			WithContext("extension", filepath.Ext(path)).
			Build()
	}
	meta, body, err := frontmatter.Parse(data)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryContent, "invalid frontmatter").
			WithContext(logfields.KeyFile, path).
			Build()
	}

	doc := &Document{Path: path, Metadata: meta}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		doc.HTML = string(body)
	default:
		var buf bytes.Buffer
		if err := r.md.Convert(body, &buf); err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryContent, "cannot render markdown").
				WithContext(logfields.KeyFile, path).
				Build()
		}
		doc.HTML = restorePlaceholders(buf.String())
	}
	return doc, nil
}

func restorePlaceholders(s string) string {
	return escapedRefRe.ReplaceAllStringFunc(s, func(m string) string {
		sub := escapedRefRe.FindStringSubmatch(m)
		if sub[2] != "" {
			return sub[1] + "|" + sub[2] + "|"
		}
		return sub[1] + "{" + sub[3] + "}"
	})
}
