/*
Package runner drives a simulation: it chunks a fixture, renders every chunk as an
SSE content event, closes with a done event and presents the result.

# Modes

  - Run: prints a human-readable report (quoted lines, first chunks, truncated done line).
  - Stream: writes the raw SSE stream, as a backend would send it.
  - Replay: reads a raw stream back, as the browser client would, and checks that the
    concatenated content matches the done event.

# Usage

	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithMetrics(observer), // any Observer, e.g. a Prometheus-backed recorder
	)

	if _, err := r.Run(ctx, fixture.Default(), os.Stdout); err != nil {
		log.Fatal(err)
	}
*/
package runner
