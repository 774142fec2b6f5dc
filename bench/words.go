package bench

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoWords is returned when a word source holds no words.
var ErrNoWords = errors.New("bench: no words")

// LoadWords reads one word per line. Surrounding whitespace is trimmed and
// blank lines are skipped.
func LoadWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading words: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	return words, nil
}

func LoadWordsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	words, err := LoadWords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}
