// Package server exposes the route-finding and placement engine over a
// small JSON API for the dashboard frontend.
//
// The server holds a single in-memory graph for its whole lifetime. Planning
// endpoints are read-only: they compute candidate layouts and metrics without
// marking stations on the shared graph, so concurrent requests never observe
// each other's half-applied plans.
package server
