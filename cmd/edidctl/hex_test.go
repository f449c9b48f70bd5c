package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/edidkit/internal/format"
	"github.com/joshuapare/edidkit/internal/testutil"
)

func TestHexGrid(t *testing.T) {
	resetFlags(t)
	path := writeExport(t, testutil.SampleEDID())

	output, err := captureOutput(t, func() error { return runHex([]string{path}) })
	require.NoError(t, err)
	assertContains(t, output, []string{
		"     00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f\n",
		"00 | 00 ff ff ff ff ff ff 00",
		"70 |",
	})
	assertNotContains(t, output, []string{"changed:"})

	resetFlags(t)
	hexEdit.diagonal = 21.5
	output, err = captureOutput(t, func() error { return runHex([]string{path}) })
	require.NoError(t, err)
	assertContains(t, output, []string{"10 | 1d 1e 01 04 a5 30 1b", "changed: 0x15 0x16 0x7F"})
}

func TestHexString(t *testing.T) {
	resetFlags(t)
	hexString = true
	path := writeExport(t, testutil.SampleEDID())

	output, err := captureOutput(t, func() error { return runHex([]string{path}) })
	require.NoError(t, err)
	assert.Equal(t, format.FormatHex(testutil.SampleEDID())+"\n", output)
}

func TestHexQRCode(t *testing.T) {
	resetFlags(t)
	hexString = true
	hexQR = filepath.Join(t.TempDir(), "edid.png")
	path := writeExport(t, testutil.SampleEDID())

	_, err := captureOutput(t, func() error { return runHex([]string{path}) })
	require.NoError(t, err)

	png, err := os.ReadFile(hexQR)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestRenderHexGridLayout(t *testing.T) {
	resetFlags(t)
	noColor = true
	var a, b format.Block
	b[0x7F] = 0x01
	grid := renderHexGrid(a, b)
	assert.Contains(t, grid, "70 | 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 01\n")
	assert.Contains(t, grid, "changed: 0x7F\n")
}
