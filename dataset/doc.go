// Package dataset bundles the demo city network used by the CLI and the
// dashboard backend: a Manhattan-style grid of residential, commercial,
// park, transit, education, medical and entertainment locations with
// realistic distances, travel times and traffic factors.
//
// The engine itself never loads data; it consumes whatever graph snapshot it
// is handed. This package is one convenient producer of such a snapshot.
package dataset
