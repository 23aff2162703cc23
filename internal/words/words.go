// internal/words/words.go
//
// Word list loading for the assistant.
//
// Resolution order (Load):
//   1. WORDS_FILE environment variable, if set.
//   2. The embedded default list.
//
// Constraints:
//   - Words are lowercased and trimmed.
//   - Only alphabetic words (a–z) of the requested length are kept.
//   - Blank lines and '#' comments are skipped.

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
)

//go:embed default_words.txt
var embeddedWords string

// Load returns the word list for the given length, from the WORDS_FILE
// env var if set or the embedded defaults otherwise. An empty result is
// an error: the assistant has nothing to narrow.
func Load(length int) ([]string, error) {
	if path := os.Getenv("WORDS_FILE"); path != "" {
		return ReadFile(path, length)
	}
	out := filterLines(strings.Split(embeddedWords, "\n"), length)
	if len(out) == 0 {
		return nil, fmt.Errorf("no %d-letter words in the embedded list; set WORDS_FILE", length)
	}
	return out, nil
}

// ReadFile loads one word per line from a dictionary file, keeping only
// valid words of the requested length.
func ReadFile(path string, length int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	out := filterLines(lines, length)
	if len(out) == 0 {
		return nil, errors.New("word list " + path + " has no usable words of the requested length")
	}
	return out, nil
}

func filterLines(lines []string, length int) []string {
	var out []string
	for _, line := range lines {
		w := strings.TrimSpace(strings.ToLower(line))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if len(w) == length && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
