// Package rental provides an HTTP client for the rental station API.
//
// # Overview
//
// The package has two halves: a thin fetch client (client.go) covering the
// four read endpoints the dashboard needs, and a response normalizer
// (normalize.go) that converts every raw HTTP response into either a typed
// payload or one of four structured errors.
//
// # API Endpoints
//
//   - GET /stations: all stations with their bookings
//   - GET /stations/{id}: a single station
//   - GET /stations?name={q}: stations filtered by name (server-defined match)
//   - GET /stations/{stationId}/bookings/{bookingId}: a single booking
//
// Each operation issues exactly one GET and delegates all result
// interpretation to the normalizer. There is no caching and no retry; a
// failed call is retried only by repeating the user action.
//
// # Error Taxonomy
//
// The normalizer produces one of four error types, all matchable with
// errors.As:
//
//   - *HTTPError: non-2xx status; carries the status code, a message of the
//     form "HTTP error! status: 404: not found", and the parsed error body
//     when it was valid JSON
//   - *ContentTypeError: 2xx response whose declared media type is not JSON
//   - *EmptyBodyError: 2xx JSON response with an empty body
//   - *ParseError: body that failed to decode, wrapping the decoder error
//
// The checks run strictly in that order. Error responses are never subjected
// to the content-type or JSON checks: an HTML error page from a proxy still
// surfaces as an HTTPError with its status code intact.
//
// # Thread Safety
//
// The Client is safe for concurrent use; it holds no mutable state beyond
// the underlying http.Client's connection pool. Concurrent calls are fully
// independent.
package rental
