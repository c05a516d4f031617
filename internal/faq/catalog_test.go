package faq

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shippedCatalog = "../../data/faqs.json"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPreservesDocumentOrder(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "faqs.json", `{
  "zeta": [{"question": "Z one?", "answer": "z", "keywords": ["z"]}],
  "alpha": [
    {"question": "A one?", "answer": "a1", "keywords": ["a"]},
    {"question": "A two?", "answer": "a2", "keywords": ["a"]}
  ],
  "mid": [{"question": "M one?", "answer": "m", "keywords": ["m"]}]
}`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, c.CategoryNames())
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, []string{path}, c.Sources())

	cats := c.Categories()
	assert.Equal(t, "A one?", cats[1].Entries[0].Question)
	assert.Equal(t, "A two?", cats[1].Entries[1].Question)
}

func TestLoadYAMLAndGlobMerge(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "faqs/a.yml", `
shipping:
  - question: How long does shipping take?
    answer: Three days.
    keywords: [shipping]
`)
	writeFile(t, dir, "faqs/nested/b.yaml", `
billing:
  - question: Which cards do you take?
    answer: All of them.
    keywords: [card]
shipping:
  - question: Do you ship abroad?
    answer: Yes.
    keywords: [abroad]
`)

	c, err := Load(filepath.Join(dir, "faqs", "**", "*.{yml,yaml}"))
	require.NoError(t, err)
	assert.Equal(t, []string{"shipping", "billing"}, c.CategoryNames())
	assert.Equal(t, 3, c.Len())
	assert.Len(t, c.Sources(), 2)

	shipping := c.Categories()[0]
	require.Len(t, shipping.Entries, 2)
	assert.Equal(t, "Do you ship abroad?", shipping.Entries[1].Question)
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Sources())
}

func TestLoadRejectsInvalidEntries(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "faqs.json", `{"x": [{"question": "Q?", "answer": "A", "keywords": []}]}`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "faqs.json", `["not", "a", "mapping"]`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEntryValidate(t *testing.T) {
	assert.ErrorIs(t, Entry{Answer: "a", Keywords: []string{"k"}}.Validate(), ErrInvalidEntry)
	assert.ErrorIs(t, Entry{Question: "q", Keywords: []string{"k"}}.Validate(), ErrInvalidEntry)
	assert.ErrorIs(t, Entry{Question: "q", Answer: "a"}.Validate(), ErrInvalidEntry)
	assert.NoError(t, Entry{Question: "q", Answer: "a", Keywords: []string{"k"}}.Validate())
}

func TestShippedCatalogIntegrity(t *testing.T) {
	c, err := Load(shippedCatalog)
	require.NoError(t, err)

	for _, name := range []string{
		"order_related", "return_refund", "technical_support",
		"billing_payment", "account_management", "product_questions",
	} {
		assert.Contains(t, c.CategoryNames(), name)
	}

	total := 0
	for _, cat := range c.Categories() {
		assert.NotEmpty(t, cat.Entries, cat.Name)
		for _, e := range cat.Entries {
			total++
			assert.NoError(t, e.Validate())
			assert.Greater(t, len(e.Answer), 10)
			assert.Less(t, len(e.Answer), 1000)
		}
	}
	assert.Greater(t, total, 0)
	assert.Less(t, total, 1000)
}
