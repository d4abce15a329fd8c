package main

import (
	"bufio"
	"encoding/json"
	"os"
	"regexp"
	"strings"
	"testing"
)

var lowerFive = regexp.MustCompile(`^[a-z]{5}$`)

func loadWordListFromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w != "" && !strings.HasPrefix(w, "#") {
			words = append(words, w)
		}
	}
	return words, scanner.Err()
}

func loadAnswers(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile("data/answers.json")
	if err != nil {
		t.Fatalf("failed to read answers.json: %v", err)
	}
	var wordList struct {
		Words []string `json:"words"`
	}
	if err := json.Unmarshal(data, &wordList); err != nil {
		t.Fatalf("failed to decode answers.json: %v", err)
	}
	return wordList.Words
}

func TestAllowedGuessesNoDuplicates(t *testing.T) {
	words, err := loadWordListFromFile("data/allowed_guesses.txt")
	if err != nil {
		t.Fatalf("failed to load allowed_guesses.txt: %v", err)
	}
	seen := make(map[string]struct{})
	for _, w := range words {
		if _, ok := seen[w]; ok {
			t.Errorf("duplicate word in allowed_guesses.txt: %s", w)
		}
		if !lowerFive.MatchString(w) {
			t.Errorf("allowed_guesses.txt entry is not five lowercase letters: %q", w)
		}
		seen[w] = struct{}{}
	}
}

func TestAnswersNoDuplicates(t *testing.T) {
	seen := make(map[string]struct{})
	for _, w := range loadAnswers(t) {
		if _, ok := seen[w]; ok {
			t.Errorf("duplicate word in answers.json: %s", w)
		}
		if !lowerFive.MatchString(w) {
			t.Errorf("answers.json entry is not five lowercase letters: %q", w)
		}
		seen[w] = struct{}{}
	}
}

func TestAllAnswersInAllowedList(t *testing.T) {
	allowed, err := loadWordListFromFile("data/allowed_guesses.txt")
	if err != nil {
		t.Fatalf("failed to load allowed_guesses.txt: %v", err)
	}
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, w := range allowed {
		allowedSet[w] = struct{}{}
	}
	for _, w := range loadAnswers(t) {
		if _, ok := allowedSet[w]; !ok {
			t.Errorf("word in answers.json not found in allowed_guesses.txt: %s", w)
		}
	}
}
