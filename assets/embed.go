// assets/embed.go
//
// Embedded canonical dictionary. words.json is a JSON object mapping each
// lowercase word to its usage weight. It is the last-resort source when no
// dictionary file is configured.
package assets

import "embed"

//go:embed words.json
var FS embed.FS

// DictionaryName is the name of the canonical dictionary inside FS.
const DictionaryName = "words.json"

// Dictionary returns the raw bytes of the embedded canonical dictionary.
func Dictionary() ([]byte, error) {
	return FS.ReadFile(DictionaryName)
}
