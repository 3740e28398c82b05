// Package config loads, merges and validates the configuration of the
// tracker server and client.
//
// Configuration is assembled from several sources; for each field the
// first source that sets a non-zero value wins:
//  1. Environment variables (a .env file is loaded first when present)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
