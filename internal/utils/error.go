package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/khevencolino/Faisca/internal/lexer"
)

// CompilerError representa um erro do compilador com informações de posição
type CompilerError struct {
	Mensagem string // Mensagem de erro
	Linha    int    // Linha onde ocorreu o erro
	Coluna   int    // Coluna onde ocorreu o erro
	Detalhes string // Detalhes adicionais do erro
}

// Error implementa a interface error
func (e *CompilerError) Error() string {
	if e.Linha > 0 && e.Coluna > 0 {
		var builder strings.Builder
		builder.WriteString(e.Mensagem)
		fmt.Fprintf(&builder, " em linha %d, coluna %d", e.Linha, e.Coluna)
		if e.Detalhes != "" {
			builder.WriteString(" (")
			builder.WriteString(e.Detalhes)
			builder.WriteString(")")
		}
		return builder.String()
	}
	if e.Detalhes != "" {
		return e.Mensagem + ": " + e.Detalhes
	}
	return e.Mensagem
}

// NovoErro cria um novo erro do compilador
func NovoErro(mensagem string, linha, coluna int, detalhes string) *CompilerError {
	return &CompilerError{
		Mensagem: mensagem,
		Linha:    linha,
		Coluna:   coluna,
		Detalhes: detalhes,
	}
}

// ErroPosicionado é um erro que sabe qual trecho da fonte sublinhar
type ErroPosicionado interface {
	error
	Intervalo() (int, int)
	Resumo() string
}

// Sublinhar devolve a linha da fonte que contém inicio e, abaixo dela,
// um '^' para cada byte de [inicio, fim) que cai nessa linha
func Sublinhar(fonte string, inicio, fim int) string {
	if inicio < 0 {
		inicio = 0
	}
	if inicio > len(fonte) {
		inicio = len(fonte)
	}

	comecoLinha := strings.LastIndexByte(fonte[:inicio], '\n') + 1
	fimLinha := len(fonte)
	if i := strings.IndexByte(fonte[comecoLinha:], '\n'); i >= 0 {
		fimLinha = comecoLinha + i
	}

	// Marcadores podem passar uma posição do fim da linha (EOF)
	if fim > fimLinha+1 {
		fim = fimLinha + 1
	}
	marcadores := fim - inicio
	if marcadores < 1 {
		marcadores = 1
	}

	var builder strings.Builder
	builder.WriteString(fonte[comecoLinha:fimLinha])
	builder.WriteByte('\n')
	for _, c := range []byte(fonte[comecoLinha:inicio]) {
		// Tabs são preservados para o alinhamento bater no terminal
		if c == '\t' {
			builder.WriteByte('\t')
		} else {
			builder.WriteByte(' ')
		}
	}
	builder.WriteString(strings.Repeat("^", marcadores))
	return builder.String()
}

// FormatarDiagnostico monta a mensagem exibida ao usuário: erros com posição
// ganham linha e coluna e o trecho sublinhado, os demais só a mensagem
func FormatarDiagnostico(fonte string, err error) string {
	var posicionado ErroPosicionado
	if !errors.As(err, &posicionado) {
		return err.Error()
	}

	inicio, fim := posicionado.Intervalo()
	posicao := lexer.PosicaoEm(fonte, inicio)
	cabecalho := NovoErro(posicionado.Resumo(), posicao.Line, posicao.Column, "")
	return cabecalho.Error() + "\n" + Sublinhar(fonte, inicio, fim)
}
