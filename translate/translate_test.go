package translate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("line 3 'PUSH' bad", From("line %d '%v' %v", 3, "PUSH", "bad"))
	assert.Equal("plain", From("plain"))
}

func TestFprintf(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	n, err := Fprintf(buf, "Usage: %v <%v>\n", "encode", "file")
	assert.NoError(err)
	assert.Equal(buf.Len(), n)
	assert.Equal("Usage: encode <file>\n", buf.String())
}

func TestPrinterInit(t *testing.T) {
	assert := assert.New(t)

	// Package level error values format messages while initializing, so
	// the printer must exist before any importer's var blocks run.
	assert.NotNil(printer)
}
