package catalog

import (
	"reflect"
	"testing"

	"github.com/spf13/afero"
)

func TestParser_DeclarationOrder(t *testing.T) {
	parser := NewParser(nil)

	text := `# viewer strings
pdfjs-open-file = Open file
pdfjs-print = Print

pdfjs-save = Save
`

	ids := parser.Parse(text)
	want := []string{"pdfjs-open-file", "pdfjs-print", "pdfjs-save"}

	if !reflect.DeepEqual(ids, want) {
		t.Errorf("expected %v, got %v", want, ids)
	}
}

func TestParser_IndentedLinesNeverDeclare(t *testing.T) {
	parser := NewParser(nil)

	// Indented lines are continuations or attributes; only unindented
	// lines start a declaration.
	text := "pdfjs-zoom = Zoom\n    .title = Zoom level\n  indented-id = nope\n\tpdfjs-tabbed = nope\n"

	ids := parser.Parse(text)
	want := []string{"pdfjs-zoom"}

	if !reflect.DeepEqual(ids, want) {
		t.Errorf("expected %v, got %v", want, ids)
	}
}

func TestParser_SkipsNonDeclarations(t *testing.T) {
	parser := NewParser(nil)

	text := `# comment = not a declaration
-term = terms start with a dash
9lives = identifiers start with a letter
no-equals-sign here
valid-id=tight spacing is fine
spaced-id   = so is loose spacing
`

	ids := parser.Parse(text)
	want := []string{"valid-id", "spaced-id"}

	if !reflect.DeepEqual(ids, want) {
		t.Errorf("expected %v, got %v", want, ids)
	}
}

func TestParser_PreservesDuplicates(t *testing.T) {
	parser := NewParser(nil)

	text := "dup-id = first\nother-id = middle\ndup-id = second\n"

	ids := parser.Parse(text)
	want := []string{"dup-id", "other-id", "dup-id"}

	if !reflect.DeepEqual(ids, want) {
		t.Errorf("expected duplicates preserved %v, got %v", want, ids)
	}
}

func TestParser_Idempotent(t *testing.T) {
	parser := NewParser(nil)

	text := "a-first = 1\nb-second = 2\n# noise\nc-third = 3\n"

	first := parser.Parse(text)
	second := parser.Parse(text)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical sequences, got %v then %v", first, second)
	}
}

func TestParser_ParseFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "l10n/messages.ftl", []byte("file-id = text\n"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	parser := NewParser(fs)

	ids, err := parser.ParseFile("l10n/messages.ftl")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ids) != 1 || ids[0] != "file-id" {
		t.Errorf("expected [file-id], got %v", ids)
	}
}

func TestParser_ParseFileMissingIsFatal(t *testing.T) {
	parser := NewParser(afero.NewMemMapFs())

	if _, err := parser.ParseFile("no/such/catalog.ftl"); err == nil {
		t.Error("expected error for missing catalog")
	}
}
