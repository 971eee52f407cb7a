package convertcmd

import "testing"

func TestConvertSourceCommandValidateRequiresSource(t *testing.T) {
	cmd := ConvertSourceCommand{}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when source missing")
	}

	cmd.Source = []byte("<model/>")
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error when source provided: %v", err)
	}
}

func TestConvertFileCommandValidateRequiresPath(t *testing.T) {
	cmd := ConvertFileCommand{Path: "   "}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when path blank")
	}

	cmd.Path = "Model.xcdatamodel/contents"
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error when path provided: %v", err)
	}
}

func TestConvertDirectoryCommandValidate(t *testing.T) {
	cmd := ConvertDirectoryCommand{}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when directory missing")
	}

	cmd.Directory = "models"
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error with default pattern: %v", err)
	}

	cmd.Pattern = "["
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error for malformed pattern")
	}

	cmd.Pattern = "**/contents"
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error with glob pattern: %v", err)
	}
}

func TestMessageTypes(t *testing.T) {
	cases := map[string]string{
		ConvertSourceCommand{}.Type():    "modeldoc.convert.source",
		ConvertFileCommand{}.Type():      "modeldoc.convert.file",
		ConvertDirectoryCommand{}.Type(): "modeldoc.convert.directory",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("expected message type %q, got %q", want, got)
		}
	}
}
