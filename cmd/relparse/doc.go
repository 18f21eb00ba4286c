// Command relparse parses scene and P2P release names and media paths.
//
// Subcommands parse single names, file paths and directory names, process
// batches from files or stdin, scan a media library into a SQLite index,
// query that index, and serve the same operations over HTTP. Output is a
// table on a terminal and JSON otherwise unless --format says differently.
package main
