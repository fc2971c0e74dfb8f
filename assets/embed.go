// apps/go-cli/assets/embed.go
//
// Embedded default dictionary, used when no dictionary path is configured.

package assets

import (
	"embed"
	"io"
)

// DictionaryName is the embedded file name, also used in error messages.
const DictionaryName = "words.txt"

//go:embed words.txt
var FS embed.FS

// Dictionary opens the embedded newline-delimited word list.
func Dictionary() (io.ReadCloser, error) {
	return FS.Open(DictionaryName)
}
