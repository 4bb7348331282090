package main

import (
	"net/http"
	"time"
)

// Per-call bound on board API requests; a timeout aborts the whole assembly
// cycle like any other fetch failure.
const externalHTTPTimeout = 15 * time.Second

var externalHTTPClient = &http.Client{
	Timeout: externalHTTPTimeout,
}
