/*
Package domain contains the event shapes exchanged over a simulated SSE stream.

It is kept free of I/O: encoding lives in package sse and the pipeline in package
runner.

# Key Entities

  - ContentEvent: one chunk of the streamed text.
  - DoneEvent: completion marker carrying the full text.
  - MetaEvent: optional stream header (subject, model).
  - ErrorEvent: a failure reported in-band by the backend.
*/
package domain
