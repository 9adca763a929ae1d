/*
Package ssechunk simulates how a backend chunks a text payload into Server-Sent Events.

A payload is split into fixed-size slices by Unicode code point, each slice is wrapped
in a JSON content event and written as an SSE "data:" line, and the stream closes with
a done event carrying the full text. The tool exists to check chunk boundaries and
encoding of multi-byte text before it reaches a streaming client.

# Wire format

	data: {"type":"content","text":"置換積分（u置換）\n  - 形"}

	data: {"type":"done","full_text":"..."}

JSON payloads keep non-ASCII text literally; nothing is escaped to \u sequences
except what JSON requires.

# Usage

	err := ssechunk.Stream(ctx, os.Stdout, "abcdef", 2)

For reports, fixtures and replay see packages runner, fixture and sse.
*/
package ssechunk
