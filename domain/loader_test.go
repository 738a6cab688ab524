package domain

import (
	"errors"
	"testing"
)

const sampleHAR = `{
	"log": {
		"version": "1.2",
		"creator": {"name": "WebInspector", "version": "537.36"},
		"entries": [
			{
				"startedDateTime": "2024-01-01T00:00:00.000Z",
				"time": 150,
				"serverIPAddress": "93.184.216.34",
				"request": {
					"method": "get",
					"url": "https://api.example.com/users?page=1",
					"httpVersion": "HTTP/1.1",
					"headers": [{"name": "Accept", "value": "application/json"}],
					"queryString": [{"name": "page", "value": "1"}],
					"headersSize": -1,
					"bodySize": -1
				},
				"response": {
					"status": 200,
					"statusText": "OK",
					"httpVersion": "HTTP/1.1",
					"headers": [{"name": "Content-Type", "value": "application/json"}],
					"content": {"size": 12, "mimeType": "application/json", "text": "{\"users\":[]}"},
					"redirectURL": "",
					"headersSize": -1,
					"bodySize": 12
				},
				"timings": {"send": 1, "wait": 100, "receive": 49}
			},
			{
				"startedDateTime": "2024-01-01T00:00:01.000Z",
				"time": 0,
				"request": {
					"method": "POST",
					"url": "https://api.example.com/users",
					"httpVersion": "HTTP/1.1",
					"headers": [],
					"queryString": [],
					"postData": {"mimeType": "application/json", "text": "{\"name\":\"John\"}"},
					"headersSize": -1,
					"bodySize": 15
				},
				"response": {
					"status": 0,
					"statusText": "",
					"httpVersion": "",
					"headers": [],
					"content": {"size": 0, "mimeType": "x-unknown"},
					"redirectURL": "",
					"headersSize": -1,
					"bodySize": -1
				}
			}
		]
	}
}`

func TestParseDocument(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument([]byte(sampleHAR))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Log.Version != "1.2" {
		t.Errorf("expected version 1.2, got %q", doc.Log.Version)
	}
	if doc.Log.Creator == nil || doc.Log.Creator.Name != "WebInspector" {
		t.Errorf("expected creator WebInspector, got %+v", doc.Log.Creator)
	}
	if len(doc.Log.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(doc.Log.Entries))
	}

	first := doc.Log.Entries[0]
	if first.ServerIPAddress != "93.184.216.34" {
		t.Errorf("unexpected server IP %q", first.ServerIPAddress)
	}
	if first.Timings == nil || first.Timings.Wait != 100 {
		t.Errorf("expected timings to be decoded, got %+v", first.Timings)
	}
	if got := first.Response.Headers.Get("content-type"); got != "application/json" {
		t.Errorf("expected case-insensitive header lookup, got %q", got)
	}

	second := doc.Log.Entries[1]
	if second.Request.URL != "https://api.example.com/users" {
		t.Errorf("entries out of order: second URL is %q", second.Request.URL)
	}
	if second.Request.PostData == nil || second.Request.PostData.Text != `{"name":"John"}` {
		t.Errorf("expected post data, got %+v", second.Request.PostData)
	}
}

func TestParseDocumentDefaults(t *testing.T) {
	t.Parallel()

	t.Run("missing version defaults to 1.1", func(t *testing.T) {
		t.Parallel()
		doc, err := ParseDocument([]byte(`{"log": {"entries": []}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Log.Version != DefaultVersion {
			t.Errorf("expected %q, got %q", DefaultVersion, doc.Log.Version)
		}
	})

	t.Run("empty entries is a valid document", func(t *testing.T) {
		t.Parallel()
		doc, err := ParseDocument([]byte(`{"log": {"version": "1.2", "entries": []}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(doc.Log.Entries) != 0 {
			t.Errorf("expected no entries, got %d", len(doc.Log.Entries))
		}
	})
}

func TestParseDocumentErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		sentinel error
		line     int
	}{
		{name: "malformed JSON", input: "{\n  \"log\": {,\n}", line: 2},
		{name: "not an object", input: `[1, 2, 3]`, line: 1},
		{name: "empty input", input: ``},
		{name: "missing log", input: `{"entries": []}`, sentinel: ErrMissingLog},
		{name: "null log", input: `{"log": null}`, sentinel: ErrMissingLog},
		{name: "missing entries", input: `{"log": {"version": "1.2"}}`, sentinel: ErrMissingEntries},
		{name: "unsupported version", input: `{"log": {"version": "2.0", "entries": []}}`, sentinel: ErrUnsupportedVersion},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := ParseDocument([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if doc != nil {
				t.Error("expected no document on error")
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("expected %v, got %v", tt.sentinel, err)
			}
			if tt.line != 0 && parseErr.Line != tt.line {
				t.Errorf("expected line %d, got %d", tt.line, parseErr.Line)
			}
		})
	}
}
