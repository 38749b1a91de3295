package backends

import (
	"io"

	"github.com/khevencolino/Faisca/internal/parser"
)

// Backend consome um programa já analisado e escreve o resultado em w
type Backend interface {
	Compile(w io.Writer, programa parser.Programa) error
	GetName() string
	GetExtension() string
}
