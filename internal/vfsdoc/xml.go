package vfsdoc

import (
	"encoding/xml"
	"fmt"
	"io"
)

// xmlElem mirrors one document element. Children capture every nested
// element so unknown kinds survive decoding and reach the builder, where
// the lenient/strict decision is made.
type xmlElem struct {
	XMLName  xml.Name
	Name     string    `xml:"name,attr"`
	Encoding string    `xml:"encoding,attr"`
	Text     string    `xml:",chardata"`
	Children []xmlElem `xml:",any"`
}

const xmlRootTag = "vfs"

func parseXML(r io.Reader) (node, error) {
	var root xmlElem
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return node{}, fmt.Errorf("xml: %v: %w", err, ErrFormat)
	}
	if root.XMLName.Local != xmlRootTag {
		return node{}, fmt.Errorf("top-level element <%s>, want <%s>: %w", root.XMLName.Local, xmlRootTag, ErrFormat)
	}
	n := convertXML(root)
	n.Type = typeDir
	return n, nil
}

func convertXML(el xmlElem) node {
	n := node{
		Name:     el.Name,
		Encoding: el.Encoding,
	}
	switch el.XMLName.Local {
	case "dir", "directory":
		n.Type = typeDir
	case "file":
		n.Type = typeFile
		n.Content = el.Text
	default:
		n.Type = el.XMLName.Local
	}
	for _, child := range el.Children {
		n.Children = append(n.Children, convertXML(child))
	}
	return n
}
