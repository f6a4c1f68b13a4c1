package keywords_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lonelywalls-events/internal/pkg/keywords"
)

func TestGenerate(t *testing.T) {
	t.Run("Prefixes Of Each Token", func(t *testing.T) {
		got := keywords.Generate("Blue Sky")
		assert.Equal(t, []string{"b", "bl", "blu", "blue", "s", "sk", "sky"}, got)
	})

	t.Run("Lowercases Input", func(t *testing.T) {
		assert.Equal(t, keywords.Generate("blue sky"), keywords.Generate("BLUE SKY"))
	})

	t.Run("Deduplicates Shared Prefixes", func(t *testing.T) {
		got := keywords.Generate("sun sunset")
		assert.Equal(t, []string{"s", "su", "sun", "suns", "sunse", "sunset"}, got)
	})

	t.Run("Empty Input", func(t *testing.T) {
		assert.Empty(t, keywords.Generate(""))
		assert.Empty(t, keywords.Generate("   "))
	})

	t.Run("Multibyte Runes", func(t *testing.T) {
		got := keywords.Generate("été")
		assert.Equal(t, []string{"é", "ét", "été"}, got)
	})
}

func TestGeneratePhrase(t *testing.T) {
	t.Run("Includes Full Phrase", func(t *testing.T) {
		got := keywords.GeneratePhrase("Blue Sky")
		assert.Contains(t, got, "blue sky")
		assert.Contains(t, got, "blue")
		assert.Contains(t, got, "sky")
	})

	t.Run("Single Token Has No Duplicate Phrase", func(t *testing.T) {
		got := keywords.GeneratePhrase("Blue")
		assert.Equal(t, []string{"b", "bl", "blu", "blue"}, got)
	})
}

func TestMerge(t *testing.T) {
	got := keywords.Merge([]string{"a", "b"}, []string{"b", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}
