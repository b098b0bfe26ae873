// Package naming implements the convention engine shared by every backend.
//
// All per-backend operation metadata (HTTP verb, path template, CLI
// subcommand, RPC method name, GraphQL classification) derives from the single
// prefix table in this package so independent backends always agree on what an
// operation is called and how it routes.
package naming
