// Package file provides file-based configuration and prompt storage.
// Settings live in a TOML file and prompts in user-editable text
// files, both under the pdfchat config directory (~/.pdfchat by
// default).
package file
