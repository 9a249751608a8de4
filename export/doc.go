// Package export writes graph snapshots for external tooling.
//
// Two formats are supported, both one-way: nothing in the engine reads them
// back.
//
//   - CSV: a two-section table, node attributes first and edge attributes
//     second, matching the layout the dashboard's spreadsheet tooling
//     expects.
//   - GeoJSON: a FeatureCollection of node Points and edge LineStrings for
//     map layers.
//
// Rows and features are emitted in ascending node-ID order so repeated
// exports of the same graph are byte-identical.
package export
