package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetRevisions(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.sg", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("expected first FileID to be 0, got %d", id1)
	}

	latestID, exists := fs.Latest("test.sg")
	if !exists {
		t.Fatal("expected file to exist after Add")
	}
	if latestID != id1 {
		t.Errorf("expected latest ID %d, got %d", id1, latestID)
	}

	// A second Add with the same path mints a fresh revision.
	id2 := fs.Add("test.sg", []byte("hello universe"), 0)
	if id2 == id1 {
		t.Fatal("expected a new FileID for the second revision")
	}

	latestID, _ = fs.Latest("test.sg")
	if latestID != id2 {
		t.Errorf("expected latest ID %d, got %d", id2, latestID)
	}

	// The old revision stays reachable with its original content.
	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Errorf("expected first revision content %q, got %q", "hello world", got)
	}
	if got := string(fs.Get(id2).Content); got != "hello universe" {
		t.Errorf("expected second revision content %q, got %q", "hello universe", got)
	}
}

func TestAddVirtualLineIndex(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("a.sg", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}

	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag to be set")
	}
}

func TestCRLFNormalization(t *testing.T) {
	original := []byte("a\r\nb\r\n")
	normalized, changed := normalizeCRLF(original)

	if !changed {
		t.Error("expected CRLF normalization to be detected")
	}
	if string(normalized) != "a\nb\n" {
		t.Errorf("expected normalized content %q, got %q", "a\nb\n", string(normalized))
	}

	loneCR := []byte("a\rb")
	kept, changed := normalizeCRLF(loneCR)
	if changed {
		t.Error("lone \\r must not count as a replacement")
	}
	if string(kept) != "a\rb" {
		t.Errorf("expected lone \\r preserved, got %q", string(kept))
	}
}

func TestBOMRemoval(t *testing.T) {
	bomContent := []byte{0xEF, 0xBB, 0xBF, 'x', '\n'}
	withoutBOM, hadBOM := removeBOM(bomContent)

	if !hadBOM {
		t.Error("expected BOM to be detected")
	}
	if string(withoutBOM) != "x\n" {
		t.Errorf("expected content without BOM %q, got %q", "x\n", string(withoutBOM))
	}

	if _, had := removeBOM([]byte("xy")); had {
		t.Error("short content must not report a BOM")
	}
}

func TestResolveUTF8(t *testing.T) {
	fs := NewFileSet()

	// α occupies two bytes; columns are byte-based.
	id := fs.AddVirtual("test.sg", []byte("α\n"))

	span := Span{File: id, Start: 0, End: 1}
	start, end := fs.Resolve(span)

	if start != (LineCol{Line: 1, Col: 1}) {
		t.Errorf("expected start 1:1, got %+v", start)
	}
	if end != (LineCol{Line: 1, Col: 2}) {
		t.Errorf("expected end 1:2, got %+v", end)
	}
}

func TestResolveMultiline(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.sg", []byte("let x = 1\nlet y = 2\n"))

	// "y" sits at offset 14: line 2, column 5.
	start, _ := fs.Resolve(Span{File: id, Start: 14, End: 15})
	if start != (LineCol{Line: 2, Col: 5}) {
		t.Errorf("expected 2:5, got %+v", start)
	}
}

func TestLineHelpers(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.sg", []byte("first\nsecond\nthird"))
	file := fs.Get(id)

	if got := file.NumLines(); got != 3 {
		t.Errorf("expected 3 lines, got %d", got)
	}
	if got := file.GetLine(1); got != "first" {
		t.Errorf("expected line 1 %q, got %q", "first", got)
	}
	if got := file.GetLine(2); got != "second" {
		t.Errorf("expected line 2 %q, got %q", "second", got)
	}
	if got := file.GetLine(3); got != "third" {
		t.Errorf("expected line 3 %q, got %q", "third", got)
	}
	if got := file.GetLine(4); got != "" {
		t.Errorf("expected out-of-range line to be empty, got %q", got)
	}

	if got := file.LineStart(1); got != 0 {
		t.Errorf("expected line 1 start 0, got %d", got)
	}
	if got := file.LineStart(2); got != 6 {
		t.Errorf("expected line 2 start 6, got %d", got)
	}
	if got := file.LineStart(3); got != 13 {
		t.Errorf("expected line 3 start 13, got %d", got)
	}

	empty := fs.Get(fs.AddVirtual("empty.sg", nil))
	if got := empty.NumLines(); got != 0 {
		t.Errorf("expected empty file to have 0 lines, got %d", got)
	}

	trailing := fs.Get(fs.AddVirtual("trailing.sg", []byte("a\nb\n")))
	if got := trailing.NumLines(); got != 2 {
		t.Errorf("expected 2 lines with trailing newline, got %d", got)
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.sg")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFa\r\nb\r\n"), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	file := fs.Get(id)
	if string(file.Content) != "a\nb\n" {
		t.Errorf("expected normalized content %q, got %q", "a\nb\n", string(file.Content))
	}
	if file.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag")
	}
	if file.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag")
	}
	if len(file.LineIdx) != 2 || file.LineIdx[0] != 1 || file.LineIdx[1] != 3 {
		t.Errorf("unexpected LineIdx %v", file.LineIdx)
	}
}
