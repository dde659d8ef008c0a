// Package bitmap provides PositionSet, a Roaring Bitmap of row positions.
//
// Grouped index entries hold one PositionSet per key, and lookups use one to
// de-duplicate positions reached through several keys or query rows.
// Roaring keeps sparse and dense position sets compact and makes repeated
// inserts of the same position free.
package bitmap
