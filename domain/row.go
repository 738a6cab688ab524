package domain

import "strconv"

// Columns is the fixed header of the output sheet.
var Columns = []string{
	"Time",
	"Source IP",
	"Destination IP",
	"Method",
	"Status Code",
	"Request URL",
	"Request Payload",
	"Response Payload",
}

// Row is one output line, derived from exactly one entry.
type Row struct {
	Time            string
	SourceIP        string
	DestinationIP   string
	Method          string
	StatusCode      int
	RequestURL      string
	RequestPayload  string
	ResponsePayload string
}

// Cells returns the row as text in Columns order. A zero status code,
// recorded for aborted requests, is left empty.
func (r Row) Cells() []string {
	status := ""
	if r.StatusCode != 0 {
		status = strconv.Itoa(r.StatusCode)
	}
	return []string{
		r.Time,
		r.SourceIP,
		r.DestinationIP,
		r.Method,
		status,
		r.RequestURL,
		r.RequestPayload,
		r.ResponsePayload,
	}
}
