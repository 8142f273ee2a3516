package rental

import (
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"testing"
)

func response(status int, contentType, body string) *http.Response {
	header := http.Header{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestNormalize_HTTPErrorAlwaysWins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantMessage string
	}{
		{
			name:        "json body with message field",
			status:      404,
			contentType: "application/json",
			body:        `{"message":"not found"}`,
			wantMessage: "HTTP error! status: 404: not found",
		},
		{
			name:        "json body with error field",
			status:      500,
			contentType: "application/json",
			body:        `{"error":"boom"}`,
			wantMessage: "HTTP error! status: 500: boom",
		},
		{
			name:        "message field preferred over error field",
			status:      400,
			contentType: "application/json",
			body:        `{"error":"secondary","message":"primary"}`,
			wantMessage: "HTTP error! status: 400: primary",
		},
		{
			name:        "non-json body is ignored silently",
			status:      502,
			contentType: "text/html",
			body:        "<html>Bad Gateway</html>",
			wantMessage: "HTTP error! status: 502",
		},
		{
			name:        "empty body",
			status:      500,
			contentType: "application/json",
			body:        "",
			wantMessage: "HTTP error! status: 500",
		},
		{
			name:        "json array body carries no message",
			status:      503,
			contentType: "application/json",
			body:        `["a","b"]`,
			wantMessage: "HTTP error! status: 503",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dest any
			err := normalize(response(tt.status, tt.contentType, tt.body), &dest)

			var httpErr *HTTPError
			if !errors.As(err, &httpErr) {
				t.Fatalf("normalize error = %v, want *HTTPError", err)
			}
			if httpErr.Status != tt.status {
				t.Fatalf("Status = %d, want %d", httpErr.Status, tt.status)
			}
			if httpErr.Message != tt.wantMessage {
				t.Fatalf("Message = %q, want %q", httpErr.Message, tt.wantMessage)
			}
			if httpErr.Error() != tt.wantMessage {
				t.Fatalf("Error() = %q, want %q", httpErr.Error(), tt.wantMessage)
			}
		})
	}
}

func TestNormalize_HTTPErrorKeepsParsedBody(t *testing.T) {
	t.Parallel()

	var dest any
	err := normalize(response(404, "application/json", `{"message":"not found","code":7}`), &dest)

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("normalize error = %v, want *HTTPError", err)
	}
	body, ok := httpErr.Data.(map[string]any)
	if !ok {
		t.Fatalf("Data = %#v, want map", httpErr.Data)
	}
	if body["message"] != "not found" || body["code"] != float64(7) {
		t.Fatalf("Data = %#v, want full parsed body", body)
	}

	// Unparseable bodies leave Data unset.
	err = normalize(response(500, "text/plain", "oops"), &dest)
	if !errors.As(err, &httpErr) {
		t.Fatalf("normalize error = %v, want *HTTPError", err)
	}
	if httpErr.Data != nil {
		t.Fatalf("Data = %#v, want nil for non-JSON body", httpErr.Data)
	}
}

func TestNormalize_WrongContentType(t *testing.T) {
	t.Parallel()

	// Even a valid JSON body fails when the declared type is not JSON.
	var dest any
	err := normalize(response(200, "text/html", `{"id":"1"}`), &dest)

	var ctErr *ContentTypeError
	if !errors.As(err, &ctErr) {
		t.Fatalf("normalize error = %v, want *ContentTypeError", err)
	}
	if err.Error() != "Response is not JSON" {
		t.Fatalf("Error() = %q, want Response is not JSON", err.Error())
	}
}

func TestNormalize_MissingContentTypeIsAccepted(t *testing.T) {
	t.Parallel()

	// No declared media type at all: the body still gets decoded.
	var dest map[string]any
	if err := normalize(response(200, "", `{"id":"1"}`), &dest); err != nil {
		t.Fatalf("normalize returned error: %v", err)
	}
	if dest["id"] != "1" {
		t.Fatalf("dest = %#v, want id=1", dest)
	}
}

func TestNormalize_CharsetSuffixIsAccepted(t *testing.T) {
	t.Parallel()

	var dest []string
	err := normalize(response(200, "application/json; charset=utf-8", `["x"]`), &dest)
	if err != nil {
		t.Fatalf("normalize returned error: %v", err)
	}
}

func TestNormalize_EmptyBody(t *testing.T) {
	t.Parallel()

	var dest any
	err := normalize(response(200, "application/json", ""), &dest)

	var emptyErr *EmptyBodyError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("normalize error = %v, want *EmptyBodyError", err)
	}
	if err.Error() != "Empty response received" {
		t.Fatalf("Error() = %q, want Empty response received", err.Error())
	}
}

func TestNormalize_MalformedJSON(t *testing.T) {
	t.Parallel()

	var dest any
	err := normalize(response(200, "application/json", "{not-json"), &dest)

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("normalize error = %v, want *ParseError", err)
	}
	if !strings.HasPrefix(err.Error(), "Invalid JSON response: ") {
		t.Fatalf("Error() = %q, want Invalid JSON response prefix", err.Error())
	}
	if parseErr.Unwrap() == nil {
		t.Fatalf("ParseError should wrap the decoder error")
	}
	if !strings.Contains(err.Error(), parseErr.Unwrap().Error()) {
		t.Fatalf("Error() = %q, want it to include %q", err.Error(), parseErr.Unwrap().Error())
	}
}

func TestNormalize_SuccessIsIdempotent(t *testing.T) {
	t.Parallel()

	const body = `[{"id":"1","name":"Station One","bookings":[]}]`

	var first, second []Station
	if err := normalize(response(200, "application/json", body), &first); err != nil {
		t.Fatalf("first normalize returned error: %v", err)
	}
	if err := normalize(response(200, "application/json", body), &second); err != nil {
		t.Fatalf("second normalize returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("normalize not idempotent: %#v vs %#v", first, second)
	}
	if len(first) != 1 || first[0].Name != "Station One" {
		t.Fatalf("payload = %#v, want Station One", first)
	}
}
