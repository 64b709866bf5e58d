package content

import (
	"path/filepath"

	"git.home.luguber.info/inful/sitecontent/internal/settings"
)

// StaticContent describes a file copied verbatim into the output.
type StaticContent struct {
	src      string
	url      string
	filepath string
	saveAs   string
}

// NewStatic describes src. An empty dst keeps the source path as URL.
func NewStatic(src, dst string, s *settings.Settings) *StaticContent {
	if s == nil {
		s = settings.Defaults()
	}
	url := dst
	if url == "" {
		url = src
	}
	return &StaticContent{
		src:      src,
		url:      filepath.ToSlash(url),
		filepath: filepath.Join(s.Path, src),
		saveAs:   filepath.Join(s.OutputPath, url),
	}
}

// Src is the path relative to the content root.
func (s *StaticContent) Src() string { return s.src }

// URL never fails; it satisfies Linkable.
func (s *StaticContent) URL() (string, error) { return s.url, nil }

// Filepath is the source file location.
func (s *StaticContent) Filepath() string { return s.filepath }

// SaveAs is the destination under the output root.
func (s *StaticContent) SaveAs() string { return s.saveAs }

func (s *StaticContent) String() string { return s.filepath }
