package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminal(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	term := &Terminal{Output: &buf}

	// Each line feed picks up a carriage return; n counts input bytes.
	n, err := term.Write([]byte("A\nB"))
	assert.NoError(err)
	assert.Equal(3, n)
	assert.Equal("A\r\nB", buf.String())

	buf.Reset()
	n, err = term.Write([]byte("\n\n"))
	assert.NoError(err)
	assert.Equal(2, n)
	assert.Equal("\r\n\r\n", buf.String())
}
