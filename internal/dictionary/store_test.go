package dictionary

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		word string
		want string
	}{
		{name: "lowercases", word: "Apple", want: "apple"},
		{name: "trims whitespace", word: "  cat\t\n", want: "cat"},
		{name: "already normalized", word: "dog", want: "dog"},
		{name: "blank", word: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.word)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got))
		})
	}
}

func TestIsValidWord(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{word: "apple", want: true},
		{word: "APPLE", want: true},
		{word: "aPpLe", want: true},
		{word: "", want: false},
		{word: "apple1", want: false},
		{word: "ice cream", want: false},
		{word: "don't", want: false},
		{word: "café", want: false},
		{word: "well-being", want: false},
		{word: " apple", want: false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.word), func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidWord(tt.word))
		})
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	assert.Equal(t, 0, store.Count())
	assert.False(t, store.Exists("apple"))

	_, ok := store.Lookup("apple")
	assert.False(t, ok)

	store.Insert("apple", "a fruit")
	store.Insert("cat", "an animal")

	assert.Equal(t, 2, store.Count())
	assert.True(t, store.Exists("apple"))
	assert.False(t, store.Exists("Apple"))

	got, ok := store.Lookup("cat")
	require.True(t, ok)
	assert.Equal(t, "an animal", got)
}

func TestMemoryStore_InsertIsNotIdempotent(t *testing.T) {
	store := NewMemoryStore()
	store.Insert("apple", "a fruit")
	store.Insert("apple", "a company")

	assert.Equal(t, 2, store.Count())

	got, ok := store.Lookup("apple")
	require.True(t, ok)
	assert.Equal(t, "a fruit", got)
}

func TestMemoryStore_ConcurrentInserts(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			word := fmt.Sprintf("word%c%c", 'a'+rune(i/26), 'a'+rune(i%26))
			store.Insert(word, "definition")
			assert.True(t, store.Exists(word))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, store.Count())
}
