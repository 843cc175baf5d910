package catalog

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const sniffSize = 4096

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// legacyCharsets maps chardet results to decoders. Anything unknown falls
// back to Windows-1252, which is what spreadsheet exports on the front-office
// machines produce.
var legacyCharsets = map[string]encoding.Encoding{
	"ISO-8859-1":   charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"ISO-8859-9":   charmap.ISO8859_9,
	"ISO-8859-15":  charmap.ISO8859_15,
	"windows-1250": charmap.Windows1250,
}

// utf8Reader wraps r so that price lists saved in UTF-16, Latin-1 or
// Windows code pages decode to UTF-8. A UTF-8 BOM is stripped.
func utf8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReaderSize(r, sniffSize)

	head, err := br.Peek(sniffSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("peek: %w", err)
	}

	switch {
	case bytes.HasPrefix(head, bomUTF8):
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	case bytes.HasPrefix(head, bomUTF16LE):
		return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), nil
	case bytes.HasPrefix(head, bomUTF16BE):
		return transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), nil
	case utf8.Valid(completeRunes(head, err == nil)):
		return br, nil
	}

	if res, err := chardet.NewTextDetector().DetectBest(head); err == nil {
		if res.Charset == "UTF-8" {
			return br, nil
		}

		if enc, ok := legacyCharsets[res.Charset]; ok {
			return transform.NewReader(br, enc.NewDecoder()), nil
		}
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}

// completeRunes drops a multi-byte sequence cut off at the end of a full
// peek buffer. A short read is returned unchanged.
func completeRunes(head []byte, full bool) []byte {
	if !full {
		return head
	}

	for i := len(head) - 1; i >= 0 && i >= len(head)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(head[i]) {
			continue
		}

		if !utf8.FullRune(head[i:]) {
			return head[:i]
		}

		break
	}

	return head
}
