package errpage

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
)

// The name of the header used as source of the status code whose page is
// returned.
const CodeHeader = "X-Code"

// The name of the header used to select the page format, which is the value
// of the Accept header the proxy received from the client.
const FormatHeader = "X-Format"

const DefaultCode uint32 = 404

// The format used when the format header is missing or invalid.
const DefaultFormat = "html"

var (
	ErrMissingSubtype = errors.New("media type has no subtype")
	ErrUnsafeSubtype  = errors.New("subtype is not a plain file extension")
)

// Signal is what a request asks for: the page of a status code rendered in
// some format.
type Signal struct {
	Code    uint32
	Subtype string
}

// Filename returns the name of the template file rendering the signal,
// relative to the templates directory.
func (s Signal) Filename() string {
	return strconv.FormatUint(uint64(s.Code), 10) + "." + s.Subtype
}

// Fallback records a header whose value could not be used and was replaced by
// its default.
type Fallback struct {
	Header string
	Value  string
	Err    error
}

func (f *Fallback) Error() string {
	return fmt.Sprintf("invalid %s header %q: %v", f.Header, f.Value, f.Err)
}

func (f *Fallback) Unwrap() error {
	return f.Err
}

// ParseCode parses the value of the code header. Any base-10 value that fits
// 32 bits is accepted, whether or not it is a real HTTP status.
func ParseCode(value string, present bool) (uint32, *Fallback) {
	if !present {
		return DefaultCode, nil
	}
	code, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return DefaultCode, &Fallback{CodeHeader, value, err}
	}
	return uint32(code), nil
}

// ParseFormat parses the value of the format header as a media type and
// returns its lower-cased subtype.
func ParseFormat(value string, present bool) (string, *Fallback) {
	if !present {
		return DefaultFormat, nil
	}
	mediatype, _, err := mime.ParseMediaType(value)
	if err != nil {
		return DefaultFormat, &Fallback{FormatHeader, value, err}
	}
	typ, subtype, ok := strings.Cut(mediatype, "/")
	if !ok || typ == "" || subtype == "" {
		return DefaultFormat, &Fallback{FormatHeader, value, ErrMissingSubtype}
	}
	if !safeSubtype(subtype) {
		return DefaultFormat, &Fallback{FormatHeader, value, ErrUnsafeSubtype}
	}
	return subtype, nil
}

// ParseSignal derives the signal of a request from its headers. Headers that
// could not be used are reported as fallbacks, in header order.
func ParseSignal(h http.Header) (Signal, []Fallback) {
	var fallbacks []Fallback

	code, fb := ParseCode(first(h, CodeHeader))
	if fb != nil {
		fallbacks = append(fallbacks, *fb)
	}
	subtype, fb := ParseFormat(first(h, FormatHeader))
	if fb != nil {
		fallbacks = append(fallbacks, *fb)
	}

	return Signal{Code: code, Subtype: subtype}, fallbacks
}

func first(h http.Header, key string) (string, bool) {
	values := h.Values(key)
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// safeSubtype reports whether a subtype can be used as a file extension
// without leaving the templates directory.
func safeSubtype(subtype string) bool {
	return !strings.ContainsAny(subtype, `/\`) &&
		!strings.ContainsRune(subtype, filepath.Separator) &&
		!strings.Contains(subtype, "..")
}
