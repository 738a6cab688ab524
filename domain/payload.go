package domain

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"mime"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/pretty"
)

var payloadPrettyOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// FormatPayload re-indents JSON bodies and returns anything else unchanged.
// Objects and arrays are always recognised; scalar JSON is only reformatted
// when the declared MIME type says the body is JSON.
func FormatPayload(p Payload) string {
	trimmed := bytes.TrimSpace([]byte(p.Text))
	if len(trimmed) == 0 {
		return p.Text
	}
	if !isContainer(trimmed) && !IsJSONMimeType(p.MimeType) {
		return p.Text
	}
	if !json.Valid(trimmed) {
		return p.Text
	}

	formatted := pretty.PrettyOptions(trimmed, payloadPrettyOptions)
	return string(bytes.TrimRight(formatted, "\n"))
}

// IsJSONMimeType reports whether a Content-Type denotes JSON, including
// structured suffixes such as application/problem+json.
func IsJSONMimeType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	}
	switch {
	case mediaType == "application/json", mediaType == "text/json":
		return true
	case strings.HasSuffix(mediaType, "+json"):
		return true
	}
	return false
}

func isContainer(b []byte) bool {
	return b[0] == '{' || b[0] == '['
}

// decodeContentText undoes base64 transfer encoding of a response body. The
// raw text is kept if decoding fails or the result is not UTF-8 text.
func decodeContentText(c Content) (string, bool) {
	if !strings.EqualFold(c.Encoding, "base64") || c.Text == "" {
		return c.Text, true
	}
	decoded, err := base64.StdEncoding.DecodeString(c.Text)
	if err != nil {
		return c.Text, false
	}
	if !utf8.Valid(decoded) {
		return c.Text, false
	}
	return string(decoded), true
}

// paramsJSON renders form params as a JSON object, keeping their order.
func paramsJSON(params []Param) string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, param := range params {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, _ := json.Marshal(param.Name)
		value, _ := json.Marshal(param.Value)
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.String()
}
