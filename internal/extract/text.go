package extract

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// decodeText returns data as UTF-8, reading it as Latin-1 when it is not valid UTF-8.
func decodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
