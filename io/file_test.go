package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileReader(t *testing.T) {
	assert := assert.New(t)

	fr := NewFileReader(bytes.NewReader([]byte{0x32, 0x33}))

	value, ok, err := fr.Poll()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(byte(0x32), value)

	value, ok, err = fr.Poll()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(byte(0x33), value)

	// Exhaustion is sticky.
	for i := 0; i < 3; i++ {
		value, ok, err = fr.Poll()
		assert.ErrorIs(err, ErrExhausted)
		assert.False(ok)
		assert.Equal(byte(0), value)
	}
}

func TestFileWriter(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	fw := &FileWriter{Output: &buf}

	n, err := fw.Write([]byte("A\nB"))
	assert.NoError(err)
	assert.Equal(3, n)
	// Bytes pass through untranslated.
	assert.Equal("A\nB", buf.String())
}
