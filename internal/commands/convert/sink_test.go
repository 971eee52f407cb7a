package convertcmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	cases := []struct {
		name   string
		root   string
		source string
		html   bool
		want   string
	}{
		{"bundle", "models", "models/Legacy.xcdatamodel/contents", false, filepath.Join("out", "Legacy.md")},
		{"versioned bundle", "models", "models/Store.xcdatamodeld/Store 2.xcdatamodel/contents", false, filepath.Join("out", "Store.xcdatamodeld", "Store 2.md")},
		{"html", ".", "Legacy.xcdatamodel/contents", true, filepath.Join("out", "Legacy.html")},
		{"plain file", ".", "schemas/model.xml", false, filepath.Join("out", "schemas", "model.md")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := OutputPath("out", tc.root, tc.source, tc.html); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFileSinkStreamsEmptyTarget(t *testing.T) {
	var buf bytes.Buffer
	sink := NewFileSink(&buf)

	if err := sink.Write(context.Background(), "", []byte("## Person")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != "## Person" {
		t.Fatalf("unexpected stream content %q", buf.String())
	}
}

func TestFileSinkWritesNestedFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "docs", "Store.md")
	sink := NewFileSink(nil)

	if err := sink.Write(context.Background(), target, []byte("content")); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "content" {
		t.Fatalf("unexpected file content %q", data)
	}
}

func TestFileSinkHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := NewFileSink(&buf).Write(ctx, "", []byte("x")); err == nil {
		t.Fatal("expected cancellation error")
	}
	if buf.Len() != 0 {
		t.Fatalf("expected nothing written, got %q", buf.String())
	}
}
