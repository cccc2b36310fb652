package content

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

var (
	// ErrBinary is returned for documents that are not text.
	ErrBinary = errors.New("not a text document")
	// ErrTooLarge is returned for documents over maxDocumentBytes.
	ErrTooLarge = errors.New("document too large")
)

const maxDocumentBytes = 8 << 20

const (
	textDetectionSampleSize      = 4096
	nonPrintableThresholdPercent = 30
)

type unicodeEncoding int

const (
	encodingUnknown unicodeEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

var binaryExtensions = map[string]struct{}{
	".7z":   {},
	".bin":  {},
	".gif":  {},
	".gz":   {},
	".ico":  {},
	".jpeg": {},
	".jpg":  {},
	".pdf":  {},
	".png":  {},
	".svgz": {},
	".tar":  {},
	".wasm": {},
	".webp": {},
	".zip":  {},
}

// decodeDocument turns fetched bytes into normalized UTF-8 text. Documents
// that look binary are rejected with ErrBinary.
func decodeDocument(ref string, data []byte) (string, error) {
	if len(data) > maxDocumentBytes {
		return "", fmt.Errorf("%s: %w (over %d bytes)", ref, ErrTooLarge, maxDocumentBytes)
	}
	if !isText(ref, data) {
		return "", fmt.Errorf("%s: %w", ref, ErrBinary)
	}
	return normalizeText(decodeUnicode(data)), nil
}

// isText sniffs the start of content. The reference's extension
// short-circuits obvious binary formats.
func isText(ref string, content []byte) bool {
	if _, ok := binaryExtensions[strings.ToLower(path.Ext(ref))]; ok {
		return false
	}
	if len(content) == 0 {
		return true
	}

	sample := content
	if len(sample) > textDetectionSampleSize {
		sample = sample[:textDetectionSampleSize]
	}
	if detectUnicodeEncoding(sample) != encodingUnknown {
		return true
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	printable := 0
	for _, b := range sample {
		if isCommonTextByte(b) {
			printable++
		}
	}
	if printable == 0 {
		return false
	}
	return (len(sample)-printable)*100/len(sample) < nonPrintableThresholdPercent
}

func isCommonTextByte(b byte) bool {
	switch {
	case b == 0x09 || b == 0x0A || b == 0x0D:
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	case b == 0x1B:
		return true
	case b >= 0x80:
		return true
	default:
		return false
	}
}

func detectUnicodeEncoding(sample []byte) unicodeEncoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return encodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingUnknown
}

// decodeUnicode strips a UTF-8 BOM and converts UTF-16 to UTF-8.
func decodeUnicode(content []byte) string {
	switch detectUnicodeEncoding(content) {
	case encodingUTF8BOM:
		return string(content[3:])
	case encodingUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case encodingUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return string(content)
	}
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	out, err := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder().Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}
