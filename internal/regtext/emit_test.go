package regtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/edidkit/internal/format"
	"github.com/joshuapare/edidkit/internal/testutil"
)

func sampleBlock(t *testing.T) format.Block {
	t.Helper()
	b, err := format.FromBytes(testutil.SampleEDID())
	require.NoError(t, err)
	return b
}

func TestOverrideDocument(t *testing.T) {
	b := sampleBlock(t)
	out, err := OverrideDocument(testutil.DevicePath, b, EmitOptions{})
	require.NoError(t, err)

	want := "Windows Registry Editor Version 5.00\r\n\r\n" +
		`[HKEY_LOCAL_MACHINE\SYSTEM\CurrentControlSet\Enum\` + testutil.DevicePath + `\Device Parameters\EDID_OVERRIDE]` + "\r\n" +
		`"0"=hex:` + testutil.HexList(b[:]) + "\r\n"
	assert.Equal(t, want, string(out))
}

func TestRemovalDocument(t *testing.T) {
	out, err := RemovalDocument(testutil.DevicePath, EmitOptions{})
	require.NoError(t, err)

	want := "Windows Registry Editor Version 5.00\r\n\r\n" +
		"[" + testutil.OverrideKey(testutil.DevicePath) + "]\r\n" +
		"\"0\"=-\r\n"
	assert.Equal(t, want, string(out))
}

func TestOverrideDocumentWrapped(t *testing.T) {
	b := sampleBlock(t)
	out, err := OverrideDocument(testutil.DevicePath, b, EmitOptions{WrapLines: true})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(out), CRLF), CRLF)
	require.Greater(t, len(lines), 5)
	for _, l := range lines[3:] {
		assert.LessOrEqual(t, len(l), WrapWidth, l)
	}
	for _, l := range lines[3 : len(lines)-1] {
		assert.True(t, strings.HasSuffix(l, ",\\"), l)
	}
	for _, l := range lines[4:] {
		assert.True(t, strings.HasPrefix(l, ContinuationIndent), l)
	}
}

func TestOverrideDocumentRoundTrip(t *testing.T) {
	b := format.WithPhysicalSize(sampleBlock(t), 48, 27, true)
	for _, opts := range []EmitOptions{
		{},
		{WrapLines: true},
		{OutputEncoding: EncodingUTF16LE, WithBOM: true},
		{OutputEncoding: EncodingUTF16LE, WithBOM: true, WrapLines: true},
	} {
		out, err := OverrideDocument(testutil.DevicePath, b, opts)
		require.NoError(t, err)

		// An override document is a valid export with an override but no EDID.
		rec, err := Parse(out, ParseOptions{})
		require.NoError(t, err)
		assert.True(t, rec.WellFormed)
		assert.True(t, rec.OverridePresent, "%+v", opts)
		assert.False(t, rec.PayloadFound)
	}
}

func TestRemovalDocumentUTF16(t *testing.T) {
	out, err := RemovalDocument(testutil.DevicePath, EmitOptions{OutputEncoding: "utf-16le", WithBOM: true})
	require.NoError(t, err)
	assert.Equal(t, UTF16LEBOM, out[:2])

	rec, err := Parse(out, ParseOptions{})
	require.NoError(t, err)
	assert.True(t, rec.WellFormed)
	assert.False(t, rec.OverridePresent)
}

func TestEmitUnsupportedEncoding(t *testing.T) {
	_, err := OverrideDocument(testutil.DevicePath, sampleBlock(t), EmitOptions{OutputEncoding: "latin9"})
	require.ErrorIs(t, err, ErrUnsupportedEncoding)
	_, err = RemovalDocument(testutil.DevicePath, EmitOptions{OutputEncoding: "latin9"})
	require.ErrorIs(t, err, ErrUnsupportedEncoding)
}

func TestKeyHelpers(t *testing.T) {
	assert.Equal(t, testutil.DeviceParametersKey(testutil.DevicePath), DeviceParametersKey(testutil.DevicePath))
	assert.Equal(t, testutil.OverrideKey(testutil.DevicePath), OverrideKey(testutil.DevicePath))
}
