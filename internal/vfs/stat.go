package vfs

import (
	"github.com/gabriel-vasile/mimetype"
	"github.com/saintfish/chardet"
)

// StatInfo describes a single node for diagnostic output. MIME and charset
// are detected from the decoded payload and stay empty for directories or
// undecodable content.
type StatInfo struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Kind     string `json:"kind"`
	Size     int    `json:"size,omitempty"`
	Encoding string `json:"encoding,omitempty"`
	MIME     string `json:"mime,omitempty"`
	Charset  string `json:"charset,omitempty"`
	Entries  int    `json:"entries,omitempty"`
}

// Stat resolves path against the cursor and describes the node.
func (nc *NavContext) Stat(path string) (StatInfo, error) {
	node, err := nc.resolve(path)
	if err != nil {
		return StatInfo{}, err
	}
	info := StatInfo{
		Name: node.Name(),
		Path: node.Path(),
		Kind: node.Kind().String(),
	}
	switch n := node.(type) {
	case *Dir:
		info.Entries = n.Len()
	case *File:
		info.Encoding = n.Content().Encoding().String()
		data, err := n.Content().Bytes()
		if err != nil {
			// Undecodable payloads still stat; size falls back to
			// the stored form.
			info.Size = n.Content().Size()
			return info, nil
		}
		info.Size = len(data)
		info.MIME = mimetype.Detect(data).String()
		if result, err := chardet.NewTextDetector().DetectBest(data); err == nil {
			info.Charset = result.Charset
		}
	}
	return info, nil
}
