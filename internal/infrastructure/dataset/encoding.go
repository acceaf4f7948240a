package dataset

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// normalizeUTF8 devuelve el contenido como UTF-8 válido. Los exportes
// gubernamentales antiguos vienen a veces en ISO-8859-1; si los bytes no son
// UTF-8 válido se reinterpretan con ese charset (Latin-1 mapea byte a byte,
// así que la conversión nunca falla).
func normalizeUTF8(b []byte) []byte {
	if utf8.Valid(b) {
		return b
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return b
	}
	return out
}
