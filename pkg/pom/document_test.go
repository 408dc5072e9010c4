package pom

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
)

const sampleTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
    <modelVersion>4.0.0</modelVersion>
    <!-- keep me -->
    <groupId>com.example</groupId>
    <artifactId>sample</artifactId>
    <name>Sample</name>
    <name>Duplicate</name>
    <build>
        <plugins>
            <plugin>
                <version>TOKEN</version>
            </plugin>
        </plugins>
    </build>
</project>
`

func mustParse(t *testing.T, s string) *Document {
	t.Helper()
	doc, err := Parse([]byte(s))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", sampleTemplate, false},
		{"minimal", "<project/>", false},
		{"empty", "", true},
		{"comment only", "<!-- nothing -->", true},
		{"malformed", "<project><groupId></project>", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestChild(t *testing.T) {
	doc := mustParse(t, sampleTemplate)
	root := doc.Root()

	existing := Child(root, "groupId")
	if got := StringValue(existing); got != "com.example" {
		t.Errorf("existing groupId = %q, want %q", got, "com.example")
	}

	created := Child(root, "packaging")
	if created == nil || created.Tag != "packaging" {
		t.Fatalf("Child did not create packaging element")
	}
	again := Child(root, "packaging")
	if again != created {
		t.Error("Child should return the element created earlier")
	}
	if n := len(root.SelectElements("packaging")); n != 1 {
		t.Errorf("packaging count = %d, want 1", n)
	}
}

func TestSetContent(t *testing.T) {
	doc := mustParse(t, `<a><b>x</b>tail</a>`)
	root := doc.Root()
	SetContent(root, "value")

	if got := StringValue(root); got != "value" {
		t.Errorf("StringValue = %q, want %q", got, "value")
	}
	if n := len(root.ChildElements()); n != 0 {
		t.Errorf("child elements = %d, want 0", n)
	}
}

func TestRemoveChildren(t *testing.T) {
	doc := mustParse(t, sampleTemplate)
	if n := RemoveChildren(doc.Root(), "name"); n != 2 {
		t.Errorf("RemoveChildren removed %d, want 2", n)
	}
	if doc.Root().SelectElement("name") != nil {
		t.Error("name elements should be gone")
	}
	if n := RemoveChildren(doc.Root(), "name"); n != 0 {
		t.Errorf("second RemoveChildren removed %d, want 0", n)
	}
}

func TestRemoveWhitespace(t *testing.T) {
	doc := mustParse(t, "<p>\n  <a>1</a>\n  <b> </b>\n</p>")
	RemoveWhitespace(doc.Root())

	if got := len(doc.Root().Child); got != 2 {
		t.Errorf("children = %d, want 2", got)
	}
	// Whitespace inside nested elements is untouched.
	if got := StringValue(doc.Root().SelectElement("b")); got != " " {
		t.Errorf("nested text = %q, want %q", got, " ")
	}
}

func TestStringValue(t *testing.T) {
	doc := mustParse(t, `<a>x<!-- c --><b>y<c>z</c></b></a>`)
	if got := StringValue(doc.Root()); got != "xyz" {
		t.Errorf("StringValue = %q, want %q", got, "xyz")
	}
}

func TestWalk(t *testing.T) {
	doc := mustParse(t, `<a><b><c/></b><d/></a>`)
	var tags []string
	Walk(doc.Root(), func(e *etree.Element) { tags = append(tags, e.Tag) })

	if got := strings.Join(tags, ","); got != "a,b,c,d" {
		t.Errorf("Walk order = %s, want a,b,c,d", got)
	}
}

func TestBytesDeterministic(t *testing.T) {
	doc := mustParse(t, sampleTemplate)
	SetContent(Child(doc.Root(), "packaging"), "jar")

	first, err := doc.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	second, err := doc.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("Bytes not deterministic:\n%s\n---\n%s", first, second)
	}

	reparsed := mustParse(t, string(first))
	third, err := reparsed.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if string(first) != string(third) {
		t.Errorf("round trip changed output:\n%s\n---\n%s", first, third)
	}

	out := string(first)
	if !strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("declaration lost: %s", out)
	}
	if !strings.Contains(out, "<!-- keep me -->") {
		t.Error("comment lost")
	}
	if !strings.Contains(out, "\n    <packaging>jar</packaging>\n") {
		t.Errorf("packaging not indented:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("output should end with a newline")
	}
}

func TestDocumentText(t *testing.T) {
	doc := mustParse(t, sampleTemplate)
	if got := doc.Text("artifactId"); got != "sample" {
		t.Errorf("Text(artifactId) = %q, want %q", got, "sample")
	}
	if got := doc.Text("missing"); got != "" {
		t.Errorf("Text(missing) = %q, want empty", got)
	}
}
