// Package shell serves the static application shell over HTTP.
//
// Every GET that does not name a file under the public directory receives
// index.html so client-side routes resolve. The server also exposes
// /healthz and Prometheus metrics at /metrics, and moves to the next port
// when the configured one is already bound.
package shell
