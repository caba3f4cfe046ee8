// Package cache persists resolved flash results in a local SQLite
// database so repeated lookups of identical state points skip the
// engine entirely.
//
// Keys normalize the constraint pair order, so a hit for (T,P) also
// serves (P,T). The cache is an optional layer: callers fall through
// to the engine on a miss and a write failure never fails the lookup
// that produced the value.
package cache
