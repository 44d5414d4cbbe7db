// Package inventory loads the device inventory that scans are checked
// against.
//
// The inventory is a delimited text file (usually a CSV export) whose first
// row is a header. One column holds the object ID used as the lookup key;
// four more hold the device details shown when a scan matches:
//
//	Object ID,Prefix,Merk,Type,MAC-adres
//	100200,HP,HP,Laptop,AA:BB:CC:DD:EE:FF
//
// Column names are configurable through Options. Rows with an empty object
// ID are skipped and a later row with the same ID replaces an earlier one.
package inventory
