package pipeline

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-modeldoc/internal/collector"
	"github.com/goliatone/go-modeldoc/pkg/testsupport"
)

func TestRenderMatchesGolden(t *testing.T) {
	source := testsupport.LoadFixture(t, "testdata/models/Store.xcdatamodeld/Store.xcdatamodel/contents")

	got, err := Render(source)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	testsupport.AssertGolden(t, "testdata/store.golden.md", got)
}

func TestRenderSingleEntity(t *testing.T) {
	source := []byte(`<model><entity name="Person" representedClassName="Person">` +
		`<attribute name="name" attributeType="String"/></entity></model>`)

	got, err := Render(source)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "\n---\n---\n\n## Person\n\n### Attributes\n\n#### name\n\n- Type: String\n- required\n\n### Relationships\n"
	if got != want {
		t.Fatalf("unexpected markdown\nwant %q\ngot  %q", want, got)
	}
}

func TestRenderMalformedReturnsParseError(t *testing.T) {
	got, err := Render([]byte(`<model><entity name="A">`))
	if err == nil {
		t.Fatalf("expected error for unclosed entity")
	}
	var parseErr *collector.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *collector.ParseError, got %T", err)
	}
	if got != "" {
		t.Fatalf("expected no output on failure, got %q", got)
	}
}

func TestRenderIgnoresChildrenBeforeEntity(t *testing.T) {
	got, err := Render([]byte(`<model><attribute name="x" attributeType="String"/></model>`))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty markdown, got %q", got)
	}
}

func TestRenderEmptyModel(t *testing.T) {
	got, err := Render([]byte(`<model/>`))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty markdown, got %q", got)
	}
	if strings.Contains(got, "##") {
		t.Fatalf("unexpected heading in %q", got)
	}
}
