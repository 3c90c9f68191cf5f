// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage under ~/.gsuites
//   - LoadCredential: credential JSON files, ~/.gsuites/credentials.json by default
package file
