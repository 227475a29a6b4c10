// Package template implements the bracketed naming-pattern language used to
// build target filenames.
//
// A pattern is literal text interleaved with placeholders:
//
//	[title]          metadata title, or "Unknown"
//	[year]           metadata year, or "Unknown"
//	[##] / [#]       season, zero-padded to two digits / unpadded
//	E[##] / E[#]     episode, when the pattern has an S..E.. shape
//	[episode_title]  always blank
//
// [Apply] is pure and safe for concurrent use. [Parse] and [Validate]
// introspect a pattern without rendering it. Validation is advisory:
// Apply renders invalid patterns too.
package template
