package domain

import (
	"io"
	"log/slog"
	"strings"
)

// Extractor turns HAR entries into rows. It never fails: a field missing from
// an entry becomes an empty cell.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Extractor{logger: logger}
}

// Extract derives the row for the entry at position index.
//
// HAR records only the server address, so both IP columns carry
// serverIPAddress; the client address is not part of the format.
func (x *Extractor) Extract(index int, entry Entry) Row {
	method := strings.ToUpper(strings.TrimSpace(entry.Request.Method))
	if method == "" {
		x.logger.Debug("entry has no request method", "entry", index)
	}

	return Row{
		Time:            entry.StartedDateTime,
		SourceIP:        entry.ServerIPAddress,
		DestinationIP:   entry.ServerIPAddress,
		Method:          method,
		StatusCode:      entry.Response.Status,
		RequestURL:      entry.Request.URL,
		RequestPayload:  FormatPayload(x.requestPayload(entry.Request)),
		ResponsePayload: FormatPayload(x.responsePayload(index, entry.Response)),
	}
}

// ExtractAll returns one row per entry, in entry order.
func (x *Extractor) ExtractAll(entries []Entry) []Row {
	rows := make([]Row, 0, len(entries))
	for i, entry := range entries {
		rows = append(rows, x.Extract(i, entry))
	}
	return rows
}

func (x *Extractor) requestPayload(req Request) Payload {
	if req.PostData == nil {
		return Payload{}
	}

	mimeType := req.PostData.MimeType
	if mimeType == "" {
		mimeType = req.Headers.Get("Content-Type")
	}

	text := req.PostData.Text
	if text == "" && len(req.PostData.Params) > 0 {
		return Payload{Text: paramsJSON(req.PostData.Params), MimeType: "application/json"}
	}
	return Payload{Text: text, MimeType: mimeType}
}

func (x *Extractor) responsePayload(index int, resp Response) Payload {
	mimeType := resp.Content.MimeType
	if mimeType == "" {
		mimeType = resp.Headers.Get("Content-Type")
	}

	text, ok := decodeContentText(resp.Content)
	if !ok {
		x.logger.Debug("response body kept encoded", "entry", index, "encoding", resp.Content.Encoding)
	}
	return Payload{Text: text, MimeType: mimeType}
}
