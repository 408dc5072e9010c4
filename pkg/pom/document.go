package pom

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// FileName is the fixed name of a descriptor file inside a module directory.
const FileName = "pom.xml"

// indentSpaces is the indentation used when serializing descriptors.
const indentSpaces = 4

// Document is a mutable, ordered XML element tree loaded from a template.
//
// Unknown template content is preserved as-is; only the elements touched
// through the helpers in this package are amended.
type Document struct {
	doc *etree.Document
}

// Parse reads data into a Document. The data must contain a root element.
func Parse(data []byte) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("parse xml: no root element")
	}
	return &Document{doc: doc}, nil
}

// Root returns the document's root element.
func (d *Document) Root() *etree.Element {
	return d.doc.Root()
}

// Bytes serializes the document canonically: whitespace between elements is
// normalized to four-space indentation and the output ends with a newline.
// Serializing the same tree twice yields identical bytes.
func (d *Document) Bytes() ([]byte, error) {
	d.doc.Indent(indentSpaces)
	data, err := d.doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serialize xml: %w", err)
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	return data, nil
}

// Text returns the string value of the first root child named tag, or ""
// when there is no such child.
func (d *Document) Text(tag string) string {
	if e := d.Root().SelectElement(tag); e != nil {
		return StringValue(e)
	}
	return ""
}

// Child returns the first child of parent named tag, creating and appending
// it when absent.
func Child(parent *etree.Element, tag string) *etree.Element {
	if e := parent.SelectElement(tag); e != nil {
		return e
	}
	return parent.CreateElement(tag)
}

// SetContent replaces everything inside e with a single text node.
func SetContent(e *etree.Element, text string) {
	for len(e.Child) > 0 {
		e.RemoveChildAt(0)
	}
	e.SetText(text)
}

// RemoveChildren removes every direct child of parent named tag and reports
// how many were removed.
func RemoveChildren(parent *etree.Element, tag string) int {
	n := 0
	for _, e := range parent.SelectElements(tag) {
		parent.RemoveChild(e)
		n++
	}
	return n
}

// RemoveWhitespace drops the whitespace-only text nodes directly under parent.
func RemoveWhitespace(parent *etree.Element) {
	for i := len(parent.Child) - 1; i >= 0; i-- {
		if cd, ok := parent.Child[i].(*etree.CharData); ok && strings.TrimSpace(cd.Data) == "" {
			parent.RemoveChildAt(i)
		}
	}
}

// StringValue returns the concatenated text of e and all its descendants,
// in document order. Comments and processing instructions are ignored.
func StringValue(e *etree.Element) string {
	var sb strings.Builder
	appendText(&sb, e)
	return sb.String()
}

func appendText(sb *strings.Builder, e *etree.Element) {
	for _, t := range e.Child {
		switch v := t.(type) {
		case *etree.CharData:
			sb.WriteString(v.Data)
		case *etree.Element:
			appendText(sb, v)
		}
	}
}

// Walk calls fn for root and every descendant element in document order.
func Walk(root *etree.Element, fn func(*etree.Element)) {
	fn(root)
	for _, c := range root.ChildElements() {
		Walk(c, fn)
	}
}
