package model

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var ErrUnknownCollation = errors.New("unknown collation")

// Collation orders surnames against the ranges of the eligibility criteria
type Collation interface {
	Name() string
	// Compare returns -1, 0 or 1 whether a sorts before, equal to or after b
	Compare(a, b string) int
	// Upper follows the casing rules of the alphabet, so that a surname and the ranges compare alike
	Upper(s string) string
}

var (
	ByteOrder       Collation = byteCollation{}
	TurkishAlphabet Collation = newLanguageCollation("turkish", language.Turkish)
)

var collations = map[string]Collation{
	ByteOrder.Name():       ByteOrder,
	TurkishAlphabet.Name(): TurkishAlphabet,
}

func CollationByName(name string) (Collation, error) {
	if name == "" {
		return ByteOrder, nil
	}
	collation, ok := collations[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollation, name)
	}
	return collation, nil
}

type byteCollation struct{}

func (byteCollation) Name() string { return "byte" }

func (byteCollation) Compare(a, b string) int {
	return strings.Compare(a, b)
}

func (byteCollation) Upper(s string) string {
	return strings.ToUpper(s)
}

// languageCollation wraps a collator and a caser, which keep internal state and must not be shared between goroutines
type languageCollation struct {
	name     string
	mutex    sync.Mutex
	collator *collate.Collator
	caser    cases.Caser
}

func newLanguageCollation(name string, tag language.Tag) *languageCollation {
	return &languageCollation{
		name:     name,
		collator: collate.New(tag),
		caser:    cases.Upper(tag),
	}
}

func (c *languageCollation) Name() string { return c.name }

func (c *languageCollation) Compare(a, b string) int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.collator.CompareString(a, b)
}

func (c *languageCollation) Upper(s string) string {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.caser.String(s)
}
