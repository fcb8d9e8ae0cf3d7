// assets/embed.go
//
// Embedded default vocabulary. The file ships inside the binary so the
// CLI and server run without any external word list configured.

package assets

import _ "embed"

//go:embed wordlist.txt
var WordList []byte
