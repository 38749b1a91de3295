package parser

import (
	"fmt"
	"strings"

	"github.com/khevencolino/Faisca/internal/lexer"
)

// Expressao representa a interface base para todos os nós da AST
type Expressao interface {
	Aceitar(visitante Visitante) interface{}
	String() string
}

// Programa é a sequência ordenada de statements
type Programa []Expressao

// String retorna um statement por linha
func (p Programa) String() string {
	linhas := make([]string, len(p))
	for i, stmt := range p {
		linhas[i] = stmt.String() + ";"
	}
	return strings.Join(linhas, "\n")
}

// Constante representa um literal inteiro na árvore
type Constante struct {
	Valor int64
	Token lexer.Token
}

// Aceitar implementa o padrão visitor para Constante
func (c *Constante) Aceitar(visitante Visitante) interface{} {
	return visitante.Constante(c)
}

// String retorna representação em string da constante
func (c *Constante) String() string {
	return fmt.Sprintf("%d", c.Valor)
}

// TotalVariaveis é o número de slots do frame, um por letra
const TotalVariaveis = 26

// TamanhoFrame é o espaço em bytes reservado para as variáveis locais
const TamanhoFrame = TotalVariaveis * 8

// VariavelLocal descreve a posição de uma variável no frame
type VariavelLocal struct {
	Offset int // distância em bytes abaixo da base do frame
}

// NovaVariavelLocal calcula o offset fixo de uma letra: 'a' -> 8 ... 'z' -> 208
func NovaVariavelLocal(letra byte) (VariavelLocal, error) {
	if letra < 'a' || letra > 'z' {
		return VariavelLocal{}, fmt.Errorf("identificador inválido '%c': apenas letras minúsculas", letra)
	}
	return VariavelLocal{Offset: int(letra-'a'+1) * 8}, nil
}

// Indice retorna a posição do slot (0 para 'a')
func (v VariavelLocal) Indice() int {
	return v.Offset/8 - 1
}

// Variavel representa a leitura de uma variável de uma letra
type Variavel struct {
	Nome  string
	Local VariavelLocal
	Token lexer.Token
}

// Aceitar implementa o padrão visitor para Variavel
func (v *Variavel) Aceitar(visitante Visitante) interface{} {
	return visitante.Variavel(v)
}

// String retorna o nome da variável
func (v *Variavel) String() string {
	return v.Nome
}

// Atribuicao armazena o valor da direita no alvo da esquerda e produz esse valor
type Atribuicao struct {
	OperandoEsquerdo Expressao
	OperandoDireito  Expressao
	Token            lexer.Token
}

// Aceitar implementa o padrão visitor para Atribuicao
func (a *Atribuicao) Aceitar(visitante Visitante) interface{} {
	return visitante.Atribuicao(a)
}

// String retorna representação em string da atribuição
func (a *Atribuicao) String() string {
	return fmt.Sprintf("(%s = %s)", a.OperandoEsquerdo.String(), a.OperandoDireito.String())
}

// OperacaoBinaria representa uma operação binária na árvore
type OperacaoBinaria struct {
	OperandoEsquerdo Expressao
	Operador         TipoOperador
	OperandoDireito  Expressao
	Token            lexer.Token // token original; '>' e '>=' ficam registrados aqui
}

// Aceitar implementa o padrão visitor para OperacaoBinaria
func (o *OperacaoBinaria) Aceitar(visitante Visitante) interface{} {
	return visitante.OperacaoBinaria(o)
}

// String retorna representação em string da operação
func (o *OperacaoBinaria) String() string {
	return fmt.Sprintf("(%s %s %s)",
		o.OperandoEsquerdo.String(),
		o.Operador.String(),
		o.OperandoDireito.String())
}

// TipoOperador representa os tipos de operadores
type TipoOperador int

const (
	ADICAO TipoOperador = iota
	SUBTRACAO
	MULTIPLICACAO
	DIVISAO
	IGUALDADE
	DIFERENCA
	MENOR_QUE
	MENOR_IGUAL
)

// String retorna representação em string do operador
func (t TipoOperador) String() string {
	switch t {
	case ADICAO:
		return "+"
	case SUBTRACAO:
		return "-"
	case MULTIPLICACAO:
		return "*"
	case DIVISAO:
		return "/"
	case IGUALDADE:
		return "=="
	case DIFERENCA:
		return "!="
	case MENOR_QUE:
		return "<"
	case MENOR_IGUAL:
		return "<="
	default:
		return "?"
	}
}

// Visitante define a interface para o padrão visitor
type Visitante interface {
	Constante(constante *Constante) interface{}
	Variavel(variavel *Variavel) interface{}
	Atribuicao(atribuicao *Atribuicao) interface{}
	OperacaoBinaria(operacao *OperacaoBinaria) interface{}
}
