// Package display supplies the presentation metadata the layout engine
// attaches to diagram nodes without ever inspecting it.
//
// Two collaborator surfaces live here:
//
//   - [Resolver]: derives a title/summary/status/tag for a raw script node,
//     optionally using the original source text. Callers embedding the
//     engine can supply their own implementation; [DefaultResolver]
//     reproduces the editor's stock behavior, including the long-body
//     elision rule (bodies over 14 lines collapse to the first and last six
//     non-empty lines around a "<...>" marker).
//
//   - [Theme]: maps a node's visual type to an accent color and an edge
//     label to an edge style. Colors are opaque strings passed straight
//     through to the renderer.
//
// Both surfaces are pure lookups with no I/O, keeping layout deterministic.
package display
