// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the tracker client application: a cobra command tree
// whose root command opens the terminal dashboard and whose subcommands
// script the same actions (list, add, update, delete, watch, register,
// login, logout, version).
//
// Configuration, the local session store, the server adapter and the
// client services are built once per invocation before the command runs.
package client
