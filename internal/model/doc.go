// Package model defines the output records produced by the metadata
// resolver and the media-format descriptor they are assembled for.
//
// # ReleaseRecord
//
// One ReleaseRecord is produced per retained media format of a release:
//
//	record.Album      // resolved album title
//	record.Artist     // resolved albumartist
//	record.Tracks     // resolved tracks, in release order
//
// # TrackRecord
//
// TrackRecord is the frozen form of a parsed track. Its fields mirror the
// host application's track model, including vinyl-specific ones such as
// TrackAlt and Medium.
//
// All records are plain data: they are assembled once by the metadata
// aggregator and never mutated afterwards.
package model
