// Package record defines the typed row model consumed by indexes.
//
// A Record maps field names to Values. A Value is a closed variant: null,
// int, float, string, bool, or an array of values.
//
//	rec := record.Record{
//	    "title":  record.String("Winnie the Pooh"),
//	    "data":   record.Array([]record.Value{record.Int(1), record.Int(2)}),
//	    "author": record.String("Milne"),
//	}
//
// Loosely typed rows (map[string]any, decoded JSON) go through the adapter
// helpers FromAny, RecordFromAny, RecordsFromAny and DecodeJSON.
package record
