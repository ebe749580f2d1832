package normalize

import (
	"strings"
	"sync"

	"github.com/jinzhu/inflection"
)

// Lemmatizer reduces product-type nouns to their singular dictionary form.
// Lemmatization is idempotent: an already-singular form passes through
// unchanged. Results are cached; product-type vocabulary is small and the
// same words recur constantly.
//
// The instance is safe for concurrent use and intended to live for the
// process lifetime.
type Lemmatizer struct {
	mu    sync.RWMutex
	cache map[string]string
}

// NewLemmatizer creates a Lemmatizer with an empty cache.
func NewLemmatizer() *Lemmatizer {
	return &Lemmatizer{
		cache: make(map[string]string),
	}
}

// Lemmatize returns the singular base form of word. Empty input returns "".
// Multi-word types are lemmatized on the final word only ("Roma Tomatoes"
// -> "Roma Tomato"), matching how compound produce names pluralize.
func (l *Lemmatizer) Lemmatize(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}

	l.mu.RLock()
	if cached, ok := l.cache[word]; ok {
		l.mu.RUnlock()
		return cached
	}
	l.mu.RUnlock()

	lemma := singularize(word)

	l.mu.Lock()
	l.cache[word] = lemma
	l.mu.Unlock()

	return lemma
}

func singularize(word string) string {
	fields := strings.Fields(word)
	if len(fields) <= 1 {
		return inflection.Singular(word)
	}

	last := len(fields) - 1
	fields[last] = inflection.Singular(fields[last])
	return strings.Join(fields, " ")
}
