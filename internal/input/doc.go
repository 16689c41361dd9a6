// Package input defines the raw events the router consumes from the
// engine's input subsystem, and the live state it queries while
// handling them.
//
// Events are plain values. Producers (the terminal source, an engine
// binding, tests) build them and hand them to the router in the order the
// platform delivered them.
package input
