package hvsampledata

// Version is the library version, reported in the download User-Agent and by
// the CLI. Keep in sync with release tags.
const Version = "0.2.0"
