package funcs

import (
	"encoding/base64"
	"fmt"

	"github.com/h2non/filetype"
)

// inline-sprite($map) - the whole sheet as a data URI, for single-request
// delivery of small sheets
func inlineSprite(args []Value) (Value, error) {
	m, err := mapArg(args, 0)
	if err != nil {
		return nil, err
	}
	data, err := m.Data()
	if err != nil {
		return nil, fmt.Errorf("inline-sprite: %w", err)
	}
	return Str{Val: fmt.Sprintf("url('data:%s;base64,%s')",
		sheetMIME(data), base64.StdEncoding.EncodeToString(data))}, nil
}

// sheetMIME sniffs the MIME type of encoded sheet bytes. Sheets are PNG in
// practice, so that is the fallback when sniffing fails.
func sheetMIME(data []byte) string {
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		return kind.MIME.Value
	}
	return "image/png"
}
