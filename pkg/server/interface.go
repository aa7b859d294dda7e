/*
Package server implements msgpack IPC for the word helper.

The protocol is a request/response pair over stdin/stdout, in the
same shape an editor or UI front-end would drive: the client sends a
clue snapshot, the server answers with the qualifying words in rank
order. Messages are processed synchronously and each response carries
timing info.

A search request:

	{"id": "req_001", "k": {"1": "r"}, "e": "a", "n": "i", "l": 200}

where "k" maps word positions to locked letters, "e" lists the
letters known present, "n" the letters known absent and "l" caps the
result count.

The server responds with the matches in rank-descending order:

	{"id": "req_001", "s": [{"w": "crane", "r": 90}, {"w": "trace", "r": 85}], "c": 2, "t": 41}

A zero-match response is a normal reply with "c": 0, never an error.
Errors are reserved for undecodable payloads and invalid fields:

	{"id": "req_002", "e": "position 7 out of range", "c": 400}
*/
package server

// SearchRequest is one clue snapshot from the client. Locked is
// keyed by the position's decimal string so the wire format stays a
// plain string map.
type SearchRequest struct {
	ID          string            `msgpack:"id"`
	Locked      map[string]string `msgpack:"k,omitempty"`
	Existent    string            `msgpack:"e,omitempty"`
	Nonexistent string            `msgpack:"n,omitempty"`
	Limit       int               `msgpack:"l,omitempty"`
}

// SearchMatch is one qualifying word with its corpus rank.
type SearchMatch struct {
	Word string  `msgpack:"w"`
	Rank float64 `msgpack:"r"`
}

// SearchResponse carries the capped, rank-ordered match list.
type SearchResponse struct {
	ID        string        `msgpack:"id"`
	Matches   []SearchMatch `msgpack:"s"`
	Count     int           `msgpack:"c"`
	TimeTaken int64         `msgpack:"t"`
}

// SearchError holds basic error information for failed requests.
type SearchError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
