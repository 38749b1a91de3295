package compiler

import (
	"fmt"
	"io"
	"strings"

	"github.com/khevencolino/Faisca/internal/backends"
	"github.com/khevencolino/Faisca/internal/debug"
	"github.com/khevencolino/Faisca/internal/lexer"
	"github.com/khevencolino/Faisca/internal/parser"
)

// Etapa identifica onde o pipeline falhou
type Etapa int

const (
	ENTRADA Etapa = iota
	LEXICA
	SINTATICA
	GERACAO
)

func (e Etapa) String() string {
	switch e {
	case ENTRADA:
		return "entrada"
	case LEXICA:
		return "análise léxica"
	case SINTATICA:
		return "análise sintática"
	case GERACAO:
		return "geração de código"
	default:
		return "desconhecida"
	}
}

// ErroCompilacao embrulha o erro tipado da etapa que falhou
type ErroCompilacao struct {
	Etapa Etapa
	Causa error
}

func (e *ErroCompilacao) Error() string {
	return fmt.Sprintf("erro na %s: %v", e.Etapa, e.Causa)
}

func (e *ErroCompilacao) Unwrap() error {
	return e.Causa
}

// Opcoes controla a escolha do backend e as impressões de depuração
type Opcoes struct {
	Backend       string
	Arch          string
	MostrarArvore bool
	MostrarTokens bool
}

// Compiler representa o compilador principal
type Compiler struct {
	opcoes  Opcoes
	backend backends.Backend
}

// NovoCompilador cria um novo compilador com o backend já resolvido
func NovoCompilador(opcoes Opcoes) (*Compiler, error) {
	if opcoes.Arch == "" {
		opcoes.Arch = "x86_64"
	}
	backend, err := selecionarBackend(opcoes.Backend, strings.ToLower(opcoes.Arch))
	if err != nil {
		return nil, &ErroCompilacao{Etapa: ENTRADA, Causa: err}
	}
	return &Compiler{opcoes: opcoes, backend: backend}, nil
}

// Backend retorna o gerador selecionado
func (c *Compiler) Backend() backends.Backend {
	return c.backend
}

// Compilar roda léxico, sintático e geração, nessa ordem, escrevendo em w.
// A primeira falha interrompe o pipeline.
func (c *Compiler) Compilar(fonte string, w io.Writer) error {
	debug.Printf("Compilando com backend %s...\n", c.backend.GetName())

	tokens, err := lexer.Tokenizar(fonte)
	if err != nil {
		return &ErroCompilacao{Etapa: LEXICA, Causa: err}
	}

	if c.opcoes.MostrarTokens {
		fmt.Fprintln(debug.Saida, "Tokens encontrados:")
		lexer.ImprimirTokens(debug.Saida, tokens)
	}

	programa, err := parser.Analisar(tokens)
	if err != nil {
		return &ErroCompilacao{Etapa: SINTATICA, Causa: err}
	}
	debug.Printf("%d statement(s) analisados\n", len(programa))

	if c.opcoes.MostrarArvore {
		parser.NovoVisualizador().ImprimirArvore(debug.Saida, programa)
	}

	if err := c.backend.Compile(w, programa); err != nil {
		return &ErroCompilacao{Etapa: GERACAO, Causa: err}
	}

	debug.Printf("Compilação concluída\n")
	return nil
}

// PrepararEntrada completa o último statement com ';' quando o texto não termina em um
func PrepararEntrada(fonte string) string {
	limpo := strings.TrimSpace(fonte)
	if limpo == "" || strings.HasSuffix(limpo, ";") {
		return fonte
	}
	return fonte + ";"
}
