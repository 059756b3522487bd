package models

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNewPlayer_Defaults(t *testing.T) {
	p := NewPlayer("conn-1", "Alice", "cat", "park", true)

	assert.Equal(t, DefaultTime, p.Time)
	assert.Equal(t, DefaultEnergy, p.Energy)
	assert.Equal(t, DefaultSuperEnergy, p.SuperEnergy)
	assert.True(t, p.IsHost)
	assert.True(t, p.Connected)
}

func TestNewPlayer_TruncatesName(t *testing.T) {
	p := NewPlayer("conn-1", "AVeryLongNameThatGoesOnAndOn", "cat", "park", false)

	assert.Len(t, p.Name, MaxNameLength)
	assert.Equal(t, "AVeryLongNameThatGoe", p.Name)
}

func TestNewPlayer_TruncatesMultibyteNameOnRuneBoundary(t *testing.T) {
	p := NewPlayer("conn-1", strings.Repeat("日", 25), "cat", "park", false)

	assert.True(t, utf8.ValidString(p.Name))
	assert.Equal(t, MaxNameLength, utf8.RuneCountInString(p.Name))
	assert.Equal(t, strings.Repeat("日", 20), p.Name)
}

func TestClampResource(t *testing.T) {
	assert.Equal(t, 0, ClampResource(-10))
	assert.Equal(t, 0, ClampResource(0))
	assert.Equal(t, 55, ClampResource(55))
	assert.Equal(t, 100, ClampResource(100))
	assert.Equal(t, 100, ClampResource(150))
}
