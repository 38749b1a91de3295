package lexer

import "fmt"

// Position representa uma posição no código fonte
type Position struct {
	Line   int // Linha no código
	Column int // Coluna no código
	Offset int // Posição absoluta no arquivo
}

// String retorna uma representação em string da posição
func (p Position) String() string {
	return fmt.Sprintf("linha %d, coluna %d", p.Line, p.Column)
}

// NovaPosicao cria uma nova posição
func NovaPosicao(linha, coluna, offset int) Position {
	return Position{
		Line:   linha,
		Column: coluna,
		Offset: offset,
	}
}

// PosicaoEm calcula linha e coluna (base 1) de um offset em bytes
func PosicaoEm(fonte string, offset int) Position {
	if offset > len(fonte) {
		offset = len(fonte)
	}
	linha, coluna := 1, 1
	for i := 0; i < offset; i++ {
		if fonte[i] == '\n' {
			linha++
			coluna = 1
		} else {
			coluna++
		}
	}
	return NovaPosicao(linha, coluna, offset)
}

// Span é um intervalo semiaberto [Inicio, Fim) de bytes no código fonte
type Span struct {
	Inicio int
	Fim    int
}

// NovoSpan cria um novo intervalo
func NovoSpan(inicio, fim int) Span {
	return Span{Inicio: inicio, Fim: fim}
}

// String retorna o intervalo no formato (inicio,fim)
func (s Span) String() string {
	return fmt.Sprintf("(%d,%d)", s.Inicio, s.Fim)
}
