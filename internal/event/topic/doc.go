// Package topic provides hierarchical topic names and wildcard matching for
// the event bus.
//
// Topics use dot notation:
//
//	buffer.changed
//	cursor.moved
//	config.reloaded
//
// Subscription patterns may use two wildcards:
//
//   - "*" matches exactly one segment
//   - "**" matches zero or more segments
//
// Examples:
//
//	buffer.*    matches buffer.changed, buffer.saved
//	*.changed   matches buffer.changed
//	**          matches everything
package topic
