package words

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	t.Setenv("WORDS_FILE", "")
	list, err := Load(5)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(list) == 0 {
		t.Fatal("expected embedded words")
	}
	for _, w := range list {
		if len(w) != 5 || !isAlpha(w) {
			t.Fatalf("bad word in list: %q", w)
		}
	}
}

func TestLoadNoWordsOfLength(t *testing.T) {
	t.Setenv("WORDS_FILE", "")
	if _, err := Load(23); err == nil {
		t.Fatal("expected error for absurd length")
	}
}

func TestReadFileFiltersAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# comment\nCRANE\n slate \ncat\ncr4ne\n\nsheep\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	list, err := ReadFile(path, 5)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := []string{"crane", "slate", "sheep"}
	if len(list) != len(want) {
		t.Fatalf("got %v, want %v", list, want)
	}
	for i, w := range want {
		if list[i] != w {
			t.Fatalf("got %v, want %v", list, want)
		}
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "absent.txt"), 5); err == nil {
		t.Fatal("expected error for missing file")
	}
}
