// Package logging configures slog for gridsynth.
//
// The CLI installs a JSON handler on stderr before any command runs. The level
// comes from --log-level, or from LOG_LEVEL when the flag is not given:
//
//	LOG_LEVEL=debug gridsynth build --run ./runs/test_Pacific --year 2030
//
// Every record carries the module and version attributes. At debug level the
// source location is added as well.
//
// Library packages (store, dataset, builder, disaggregate) do not touch the
// default logger. They take a *slog.Logger through WithLogger and resolve nil
// with OrDefault. Tests hand in Discard, or a handler over a buffer when they
// assert on a warning.
//
// Levels are used as follows:
//
//   - Info marks progress: "loaded run folder", "build step finished" (with
//     created, skipped and duration), "split generators", "system built".
//   - Warn reports input that was skipped while the build went on, such as a
//     duplicate reference unit name or an optional dataset that could not
//     be joined.
//   - Debug covers per-row decisions. Records emitted once per generator
//     set trace=true so they can be filtered out of large runs.
//   - Error is reserved for a failed build step; it carries the step name
//     and the structured error code.
package logging
