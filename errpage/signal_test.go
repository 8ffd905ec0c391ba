package errpage

import (
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		present  bool
		want     uint32
		fallback bool
	}{
		{"absent", "", false, 404, false},
		{"plain", "500", true, 500, false},
		{"not a status", "999", true, 999, false},
		{"leading zeros", "007", true, 7, false},
		{"largest", "4294967295", true, 4294967295, false},
		{"overflow", "4294967296", true, 404, true},
		{"prefixed", "x500", true, 404, true},
		{"negative", "-1", true, 404, true},
		{"empty", "", true, 404, true},
		{"padded", " 500", true, 404, true},
		{"decimal", "500.0", true, 404, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, fb := ParseCode(tt.value, tt.present)
			assert.Equal(t, tt.want, code)
			if !tt.fallback {
				assert.Nil(t, fb)
				return
			}
			require.NotNil(t, fb)
			assert.Equal(t, CodeHeader, fb.Header)
			assert.Equal(t, tt.value, fb.Value)
			var numErr *strconv.NumError
			assert.True(t, errors.As(fb, &numErr))
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		present bool
		want    string
		err     error
	}{
		{"absent", "", false, "html", nil},
		{"json", "application/json", true, "json", nil},
		{"html", "text/html", true, "html", nil},
		{"upper case", "APPLICATION/JSON", true, "json", nil},
		{"with parameters", "text/html; charset=utf-8", true, "html", nil},
		{"structured suffix", "application/vnd.api+json", true, "vnd.api+json", nil},
		{"no subtype", "text", true, "html", ErrMissingSubtype},
		{"dot dot subtype", "application/..", true, "html", ErrUnsafeSubtype},
		{"dot dot inside subtype", "application/a..b", true, "html", ErrUnsafeSubtype},
		{"any", "*/*", true, "*", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtype, fb := ParseFormat(tt.value, tt.present)
			assert.Equal(t, tt.want, subtype)
			if tt.err == nil {
				assert.Nil(t, fb)
				return
			}
			require.NotNil(t, fb)
			assert.ErrorIs(t, fb, tt.err)
		})
	}
}

func TestParseFormatRejectsMalformed(t *testing.T) {
	for _, value := range []string{
		"",
		"text/",
		"/json",
		"text/../secret",
		"text/a\\b",
		"/etc/passwd",
		"text/html; charset",
		"text html",
		"text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"application/json, text/plain",
	} {
		t.Run(value, func(t *testing.T) {
			subtype, fb := ParseFormat(value, true)
			assert.Equal(t, DefaultFormat, subtype)
			require.NotNil(t, fb)
			assert.Equal(t, FormatHeader, fb.Header)
			assert.Equal(t, value, fb.Value)
		})
	}
}

func TestParseSignal(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, fallbacks := ParseSignal(http.Header{})
		assert.Equal(t, Signal{Code: 404, Subtype: "html"}, s)
		assert.Empty(t, fallbacks)
	})

	t.Run("both headers", func(t *testing.T) {
		h := http.Header{}
		h.Set("X-Code", "500")
		h.Set("X-Format", "application/json")
		s, fallbacks := ParseSignal(h)
		assert.Equal(t, Signal{Code: 500, Subtype: "json"}, s)
		assert.Empty(t, fallbacks)
	})

	t.Run("first value wins", func(t *testing.T) {
		h := http.Header{}
		h.Add("X-Code", "503")
		h.Add("X-Code", "500")
		s, _ := ParseSignal(h)
		assert.Equal(t, uint32(503), s.Code)
	})

	t.Run("fallbacks in header order", func(t *testing.T) {
		h := http.Header{}
		h.Set("X-Code", "x500")
		h.Set("X-Format", "bogus")
		s, fallbacks := ParseSignal(h)
		assert.Equal(t, Signal{Code: 404, Subtype: "html"}, s)
		require.Len(t, fallbacks, 2)
		assert.Equal(t, CodeHeader, fallbacks[0].Header)
		assert.Equal(t, FormatHeader, fallbacks[1].Header)
	})

	t.Run("traversal attempt behaves like invalid format", func(t *testing.T) {
		for _, format := range []string{"text/../../etc/passwd", "application/..", "/etc/passwd"} {
			h := http.Header{}
			h.Set("X-Code", "500")
			h.Set("X-Format", format)
			s, fallbacks := ParseSignal(h)
			assert.Equal(t, "500.html", s.Filename(), format)
			require.Len(t, fallbacks, 1, format)
			assert.Equal(t, format, fallbacks[0].Value)
		}
	})
}

func TestSignalFilename(t *testing.T) {
	assert.Equal(t, "404.html", Signal{Code: 404, Subtype: "html"}.Filename())
	assert.Equal(t, "0.json", Signal{Code: 0, Subtype: "json"}.Filename())
	assert.Equal(t, "4294967295.xml", Signal{Code: 4294967295, Subtype: "xml"}.Filename())
}

func TestFallbackError(t *testing.T) {
	fb := &Fallback{Header: FormatHeader, Value: "application/..", Err: ErrUnsafeSubtype}
	assert.Equal(t, `invalid X-Format header "application/..": subtype is not a plain file extension`, fb.Error())
	assert.ErrorIs(t, fb, ErrUnsafeSubtype)
}
