// Package compose implements the note-authoring screen: the draft being
// written, the background location lookup and the save pipeline that turns
// a draft into a server-acknowledged entry.
//
// # Components
//
//   - DraftStore holds the draft and notifies subscribers after every
//     change. Rendering layers subscribe to it and never own state.
//   - LocationResolver turns a one-shot position into a place label and
//     writes both into the draft. Failures are logged and absorbed.
//   - Orchestrator runs the save pipeline:
//     Idle → Validating → UploadingMedia → Submitting → Done | Aborted.
//   - Screen wires the three together with the first-entry flag and the
//     hint dialog.
//
// # Concurrency
//
// A save snapshots title, body and media when it starts; coordinates, place
// label and the first-entry flag are read when they are needed, so a slow
// location lookup never blocks a save. A second save while one is in flight
// returns OutcomeIgnored.
//
// Status upgrade and profile refresh after an accepted entry run on their own
// goroutines with a detached context and a timeout. They are never retried
// and their failures are only logged.
package compose
