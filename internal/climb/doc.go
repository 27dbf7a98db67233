// Package climb owns the domain data model for climbing-session analysis.
//
// Responsibilities: accelerometer samples and sessions, the bounded
// buffer used by live-recording collaborators, detected moves and the
// move-type vocabulary, and the error sentinels shared by the analysis
// and geometry stages.
// Key types: Sample, Session, SessionBuffer, Move, MoveSet.
//
// Dependency rule: climb depends only on the standard library. The
// analysis, geometry, and anim subpackages build on climb, never the
// reverse.
package climb
