package regtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/edidkit/internal/testutil"
	"github.com/joshuapare/edidkit/pkg/types"
)

func TestParseMonitorExport(t *testing.T) {
	edid := testutil.SampleEDID()
	doc := testutil.NewRegBuilder().
		Section(testutil.DeviceParametersKey(`DISPLAY\ABC123\4&a1b2`)).
		Hex("EDID", edid)

	rec, err := Parse(doc.Bytes(), ParseOptions{})
	require.NoError(t, err)
	assert.True(t, rec.WellFormed)
	assert.True(t, rec.PayloadFound)
	assert.False(t, rec.OverridePresent)
	assert.Equal(t, `DISPLAY\ABC123\4&a1b2`, rec.DevicePath)
	require.NotNil(t, rec.Payload)
	assert.Equal(t, edid, rec.Payload.Bytes())
	assert.Empty(t, rec.Diagnostics)
	assert.Equal(t, []Device{{Path: `DISPLAY\ABC123\4&a1b2`, HasEDID: true}}, rec.Devices)
}

func TestParseMalformedHeader(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty", doc: ""},
		{name: "regedit4", doc: "REGEDIT4\r\n\r\n[HKEY_LOCAL_MACHINE\\X]\r\n"},
		{name: "header not first", doc: "; comment\r\nWindows Registry Editor Version 5.00\r\n"},
		{name: "wrong version", doc: "Windows Registry Editor Version 4.00\r\n"},
	}
	edid := testutil.SampleEDID()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := tt.doc + "[" + testutil.DeviceParametersKey(testutil.DevicePath) + "]\r\n" +
				`"EDID"=hex:` + testutil.HexList(edid) + "\r\n"
			rec, err := Parse([]byte(doc), ParseOptions{})
			require.NoError(t, err)
			assert.False(t, rec.WellFormed)
			assert.False(t, rec.PayloadFound)
			assert.Nil(t, rec.Payload)
			assert.Empty(t, rec.DevicePath)
		})
	}
}

func TestParseHeaderCaseInsensitive(t *testing.T) {
	doc := "\r\n  WINDOWS registry editor version 5.00  \r\n"
	rec := ParseString(doc, ParseOptions{})
	assert.True(t, rec.WellFormed)
	assert.False(t, rec.PayloadFound)
}

func TestParseWrappedHex(t *testing.T) {
	edid := testutil.SampleEDID()
	rb := testutil.MonitorExport(testutil.DevicePath, edid)
	rb.Wrap = true
	rb.Section(testutil.OverrideKey(testutil.DevicePath)).Hex("0", edid)

	require.Contains(t, rb.String(), "\\\r\n  ")
	rec, err := Parse(rb.Bytes(), ParseOptions{})
	require.NoError(t, err)
	require.True(t, rec.PayloadFound)
	assert.Equal(t, edid, rec.Payload.Bytes())
	assert.True(t, rec.OverridePresent)
	require.Len(t, rec.Devices, 1)
	assert.True(t, rec.Devices[0].OverridePresent)
}

func TestParseSectionMatchingIsCaseInsensitive(t *testing.T) {
	edid := testutil.SampleEDID()
	key := strings.ToLower(testutil.DeviceParametersKey(testutil.DevicePath))
	doc := testutil.NewRegBuilder().Section(key).Line(`"edid"=HEX:` + strings.ToUpper(testutil.HexList(edid)))

	rec := ParseString(doc.String(), ParseOptions{})
	require.True(t, rec.PayloadFound)
	assert.Equal(t, strings.ToLower(testutil.DevicePath), rec.DevicePath)
	assert.Equal(t, edid, rec.Payload.Bytes())
}

func TestParseIgnoresOtherSections(t *testing.T) {
	edid := testutil.SampleEDID()
	doc := testutil.NewRegBuilder().
		// EDID outside Device Parameters.
		Section(`HKEY_LOCAL_MACHINE\SYSTEM\CurrentControlSet\Enum\` + testutil.DevicePath).
		Hex("EDID", edid).
		// Not a DISPLAY instance.
		Section(testutil.DeviceParametersKey(`USB\VID_046D&PID_C52B\5&1b2c`)).
		Hex("EDID", edid).
		// Deeper key under Device Parameters.
		Section(testutil.DeviceParametersKey(testutil.DevicePath) + `\Other`).
		Hex("EDID", edid).
		// Deleted key.
		Section("-" + testutil.DeviceParametersKey(testutil.DevicePath)).
		Hex("EDID", edid).
		// Override value outside the override key.
		Section(`HKEY_CURRENT_USER\Software\X`).
		Hex("0", edid)

	rec := ParseString(doc.String(), ParseOptions{})
	assert.True(t, rec.WellFormed)
	assert.False(t, rec.PayloadFound)
	assert.False(t, rec.OverridePresent)
	assert.Empty(t, rec.Devices)
}

func TestParseValueBeforeAnySection(t *testing.T) {
	doc := testutil.NewRegBuilder().Hex("EDID", testutil.SampleEDID())
	rec := ParseString(doc.String(), ParseOptions{})
	assert.True(t, rec.WellFormed)
	assert.False(t, rec.PayloadFound)
}

func TestParseShortPayload(t *testing.T) {
	doc := testutil.NewRegBuilder().
		Section(testutil.DeviceParametersKey(testutil.DevicePath)).
		Hex("EDID", testutil.SampleEDID()[:127])

	rec := ParseString(doc.String(), ParseOptions{})
	assert.False(t, rec.PayloadFound)
	assert.Nil(t, rec.Payload)
	require.Len(t, rec.Diagnostics, 1)
	assert.Equal(t, types.SevWarning, rec.Diagnostics[0].Severity)
	assert.Contains(t, rec.Diagnostics[0].Issue, "127 bytes")
}

func TestParseInvalidTokenInBlock0(t *testing.T) {
	list := strings.Split(testutil.HexList(testutil.SampleEDID()), ",")
	list[20] = "zz"
	doc := testutil.NewRegBuilder().
		Section(testutil.DeviceParametersKey(testutil.DevicePath)).
		Line(`"EDID"=hex:` + strings.Join(list, ","))

	rec := ParseString(doc.String(), ParseOptions{})
	assert.False(t, rec.PayloadFound)
	require.Len(t, rec.Diagnostics, 1)
	d := rec.Diagnostics[0]
	assert.Equal(t, types.DiagSyntax, d.Category)
	assert.Equal(t, 20, d.Offset)
	assert.Equal(t, 4, d.Line)
	assert.Contains(t, d.Issue, `"zz"`)
}

func TestParseInvalidTokenAfterBlock0(t *testing.T) {
	edid := testutil.SampleEDID()
	doc := testutil.NewRegBuilder().
		Section(testutil.DeviceParametersKey(testutil.DevicePath)).
		Line(`"EDID"=hex:` + testutil.HexList(edid) + ",02,03,xyz,00")

	rec := ParseString(doc.String(), ParseOptions{})
	require.True(t, rec.PayloadFound)
	assert.Equal(t, edid, rec.Payload.Bytes())
	require.Len(t, rec.Diagnostics, 1)
	assert.Equal(t, 130, rec.Diagnostics[0].Offset)
}

func TestParseExtensionBlocksIgnored(t *testing.T) {
	edid := testutil.SampleEDID()
	ext := make([]byte, 128)
	ext[0] = 0x02
	doc := testutil.NewRegBuilder().
		Section(testutil.DeviceParametersKey(testutil.DevicePath)).
		Hex("EDID", append(append([]byte{}, edid...), ext...))

	rec := ParseString(doc.String(), ParseOptions{})
	require.True(t, rec.PayloadFound)
	assert.Equal(t, edid, rec.Payload.Bytes())
}

func TestParseOverrideNeedsFullBlock(t *testing.T) {
	doc := testutil.NewRegBuilder().
		Section(testutil.OverrideKey(testutil.DevicePath)).
		Hex("0", []byte{0x00, 0xFF}).
		Line(`"1"=hex:` + testutil.HexList(testutil.SampleEDID())).
		Line(`"0"=-`)

	rec := ParseString(doc.String(), ParseOptions{})
	assert.False(t, rec.OverridePresent)
	assert.Empty(t, rec.Diagnostics)
}

func TestParseMultipleMonitors(t *testing.T) {
	first := testutil.SampleEDID()
	second := testutil.SampleEDID()
	second[0x15], second[0x16] = 60, 34
	testutil.FixChecksum(second)

	const other = `DISPLAY\GSM5B7F\4&1a2b3c&0&UID256`
	doc := testutil.MonitorExport(testutil.DevicePath, first).
		Section(testutil.DeviceParametersKey(other)).
		Hex("EDID", second).
		Section(testutil.OverrideKey(testutil.DevicePath)).
		Hex("0", first)

	rec := ParseString(doc.String(), ParseOptions{})
	require.True(t, rec.PayloadFound)
	assert.Equal(t, other, rec.DevicePath, "last EDID wins")
	assert.Equal(t, second, rec.Payload.Bytes())
	assert.True(t, rec.OverridePresent)
	assert.Equal(t, []Device{
		{Path: testutil.DevicePath, HasEDID: true, OverridePresent: true},
		{Path: other, HasEDID: true},
	}, rec.Devices)

	rec = ParseString(doc.String(), ParseOptions{DevicePath: strings.ToUpper(testutil.DevicePath)})
	require.True(t, rec.PayloadFound)
	assert.Equal(t, testutil.DevicePath, rec.DevicePath)
	assert.Equal(t, first, rec.Payload.Bytes())
	assert.True(t, rec.OverridePresent)
	assert.Len(t, rec.Devices, 1)

	rec = ParseString(doc.String(), ParseOptions{DevicePath: other})
	assert.False(t, rec.OverridePresent)
}

func TestParseUnsupportedEncoding(t *testing.T) {
	_, err := Parse([]byte(RegFileHeader), ParseOptions{InputEncoding: "EBCDIC"})
	require.ErrorIs(t, err, ErrUnsupportedEncoding)
}

func TestClassifyKey(t *testing.T) {
	tests := []struct {
		key      string
		wantKind section
		wantPath string
	}{
		{key: EnumKeyPrefix + `DISPLAY\A\1\Device Parameters`, wantKind: sectionDeviceParameters, wantPath: `DISPLAY\A\1`},
		{key: EnumKeyPrefix + `DISPLAY\A\1\Device Parameters\EDID_OVERRIDE`, wantKind: sectionOverride, wantPath: `DISPLAY\A\1`},
		{key: EnumKeyPrefix + `display\a\1\device parameters\edid_override`, wantKind: sectionOverride, wantPath: `display\a\1`},
		{key: EnumKeyPrefix + `DISPLAY\Device Parameters`, wantKind: sectionOther},
		{key: EnumKeyPrefix + `PCI\A\1\Device Parameters`, wantKind: sectionOther},
		{key: `HKEY_LOCAL_MACHINE\SYSTEM\ControlSet001\Enum\DISPLAY\A\1\Device Parameters`, wantKind: sectionOther},
		{key: `HKEY_LOCAL_MACHINE\SOFTWARE`, wantKind: sectionOther},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			kind, path := classifyKey(tt.key)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestParseStringLeadingByteOrderMark(t *testing.T) {
	doc := "\ufeff" + testutil.MonitorExport(testutil.DevicePath, testutil.SampleEDID()).String()

	rec := ParseString(doc, ParseOptions{})
	assert.True(t, rec.WellFormed)
	assert.True(t, rec.PayloadFound)
	assert.Equal(t, testutil.DevicePath, rec.DevicePath)
}
