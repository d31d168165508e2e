package symtab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lazykbest/kbest/symtab"
)

func TestTable_RootPreregistered(t *testing.T) {
	tab := symtab.NewTable()
	word, ok := tab.WordOf(symtab.RootID)
	assert.True(t, ok)
	assert.Equal(t, "ROOT", word)
	assert.True(t, tab.IsNonterminal(symtab.RootID))
}

func TestTable_AddWordIdempotent(t *testing.T) {
	tab := symtab.NewTable()
	id1 := tab.AddWord("a")
	id2 := tab.AddWord("a")
	id3 := tab.AddWord("b")
	assert.Equal(t, id1, id2)
	assert.NotEqual(t, id1, id3)
	assert.False(t, tab.IsNonterminal(id1))

	word, ok := tab.WordOf(id1)
	assert.True(t, ok)
	assert.Equal(t, "a", word)
}

func TestTable_UnknownSymbol(t *testing.T) {
	tab := symtab.NewTable()
	_, ok := tab.WordOf(999)
	assert.False(t, ok)
}

func TestTable_AddNonterminalDescendingIDs(t *testing.T) {
	tab := symtab.NewTable() // ROOT already took -1
	sID := tab.AddNonterminal("S")
	npID := tab.AddNonterminal("NP")
	assert.Equal(t, -2, sID)
	assert.Equal(t, -3, npID)
}
