package types

// Encoding identifies how a song file's bytes were decoded.
type Encoding int

const (
	// EncodingUnknown is reported before detection has run.
	EncodingUnknown Encoding = iota // Unknown
	// EncodingUTF8BOM is UTF-8 with a leading byte order mark.
	EncodingUTF8BOM // UTF-8 (BOM)
	// EncodingUTF32LE is little-endian UTF-32 with a BOM.
	EncodingUTF32LE // UTF-32LE
	// EncodingUTF32BE is big-endian UTF-32 with a BOM.
	EncodingUTF32BE // UTF-32BE
	// EncodingUTF16LE is little-endian UTF-16 with a BOM.
	EncodingUTF16LE // UTF-16LE
	// EncodingUTF16BE is big-endian UTF-16 with a BOM.
	EncodingUTF16BE // UTF-16BE
	// EncodingUTF8 is BOM-less text that validated as strict UTF-8.
	EncodingUTF8 // UTF-8
	// EncodingWindows1252 is the legacy single-byte fallback.
	EncodingWindows1252 // Windows-1252
)

var encodingNames = [...]string{
	EncodingUnknown:     "Unknown",
	EncodingUTF8BOM:     "UTF-8 (BOM)",
	EncodingUTF32LE:     "UTF-32LE",
	EncodingUTF32BE:     "UTF-32BE",
	EncodingUTF16LE:     "UTF-16LE",
	EncodingUTF16BE:     "UTF-16BE",
	EncodingUTF8:        "UTF-8",
	EncodingWindows1252: "Windows-1252",
}

func (e Encoding) String() string {
	if e < 0 || int(e) >= len(encodingNames) {
		return "Unknown"
	}
	return encodingNames[e]
}
