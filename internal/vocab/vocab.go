// Package vocab loads the answer list and the allowed-guess set.
package vocab

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"wordle/internal/engine"
)

// ErrNoAnswers is returned when no usable answer word was loaded.
var ErrNoAnswers = errors.New("answer list is empty")

// WordList is the on-disk layout of the answer file.
type WordList struct {
	Words []string `json:"words" yaml:"words"`
}

// Vocabulary is the ordered answer list plus the set of legal guesses.
// Allowed always contains every answer.
type Vocabulary struct {
	Answers []string
	Allowed map[string]struct{}
}

// New normalizes both lists. Entries that are not five letters a-z are
// skipped; duplicate answers keep their first position.
func New(answers, allowed []string) (*Vocabulary, error) {
	clean := func(kind string) func(string, int) bool {
		return func(w string, _ int) bool {
			if !engine.IsFiveLetters(w) {
				log.Printf("[WARN] Skipping %s word %q: not 5 letters", kind, w)
				return false
			}
			return true
		}
	}

	ans := lo.Uniq(lo.Filter(lo.Map(answers, normalize), clean("answer")))
	if len(ans) == 0 {
		return nil, ErrNoAnswers
	}
	ok := lo.Filter(lo.Map(allowed, normalize), clean("allowed"))

	set := make(map[string]struct{}, len(ok)+len(ans))
	lo.ForEach(append(ok, ans...), func(w string, _ int) {
		set[w] = struct{}{}
	})
	return &Vocabulary{Answers: ans, Allowed: set}, nil
}

// Load reads the answer file (JSON or YAML) and the allowed-guess file (one
// word per line, or a JSON array).
func Load(answersPath, allowedPath string) (*Vocabulary, error) {
	log.Printf("[INFO] Loading answers from %s", answersPath)
	answers, err := readAnswers(answersPath)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}
	var allowed []string
	if allowedPath != "" {
		log.Printf("[INFO] Loading allowed guesses from %s", allowedPath)
		allowed, err = readAllowed(allowedPath)
		if err != nil {
			return nil, fmt.Errorf("load allowed guesses: %w", err)
		}
	}
	v, err := New(answers, allowed)
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] Loaded %d answers and %d allowed guesses", len(v.Answers), len(v.Allowed))
	return v, nil
}

// IsAllowed reports whether word is a legal guess.
func (v *Vocabulary) IsAllowed(word string) bool {
	_, ok := v.Allowed[word]
	return ok
}

// Size is the number of answers.
func (v *Vocabulary) Size() int {
	return len(v.Answers)
}

func normalize(w string, _ int) string {
	return engine.NormalizeGuess(w)
}

func readAnswers(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var wl WordList
		if err := yaml.Unmarshal(data, &wl); err != nil {
			return nil, err
		}
		return wl.Words, nil
	default:
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			var words []string
			if err := json.Unmarshal(trimmed, &words); err != nil {
				return nil, err
			}
			return words, nil
		}
		var wl WordList
		if err := json.Unmarshal(trimmed, &wl); err != nil {
			return nil, err
		}
		return wl.Words, nil
	}
}

func readAllowed(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		var words []string
		if err := json.Unmarshal(data, &words); err != nil {
			return nil, err
		}
		return words, nil
	}
	var words []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words = append(words, w)
	}
	return words, scanner.Err()
}
