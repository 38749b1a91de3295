package lexer

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// padrao associa um tipo de token à sua expressão regular ancorada
type padrao struct {
	tipo  TokenType
	regex *regexp.Regexp
}

// Ordem importa: operadores de dois caracteres antes do prefixo de um caractere
var padroes = []padrao{
	{NUMBER, regexp.MustCompile(`^[0-9]+`)},    // Números: 123, 456
	{EQUAL, regexp.MustCompile(`^==`)},         // Igualdade: ==
	{NOT_EQUAL, regexp.MustCompile(`^!=`)},     // Diferença: !=
	{GREATER_EQUAL, regexp.MustCompile(`^>=`)}, // Maior ou igual: >=
	{LESS_EQUAL, regexp.MustCompile(`^<=`)},    // Menor ou igual: <=
	{ASSIGN, regexp.MustCompile(`^=`)},         // Atribuição: =
	{GREATER, regexp.MustCompile(`^>`)},        // Maior que: >
	{LESS, regexp.MustCompile(`^<`)},           // Menor que: <
	{PLUS, regexp.MustCompile(`^\+`)},          // Adição: +
	{MINUS, regexp.MustCompile(`^-`)},          // Subtração: -
	{MULTIPLY, regexp.MustCompile(`^\*`)},      // Multiplicação: *
	{DIVIDE, regexp.MustCompile(`^/`)},         // Divisão: /
	{LPAREN, regexp.MustCompile(`^\(`)},        // Parêntese esquerdo: (
	{RPAREN, regexp.MustCompile(`^\)`)},        // Parêntese direito: )
	{SEMICOLON, regexp.MustCompile(`^;`)},      // Fim de statement: ;
	{IDENTIFIER, regexp.MustCompile(`^[a-z]`)}, // Variáveis: uma única letra minúscula
}

var espacos = regexp.MustCompile(`^[ \t\r\n]+`)

// Lexer representa o analisador léxico
type Lexer struct {
	entrada string // Código fonte de entrada
	posicao int    // Posição atual no código
}

// NovoLexer cria um novo analisador léxico
func NovoLexer(entrada string) *Lexer {
	return &Lexer{entrada: entrada}
}

// Tokenizar converte a entrada em uma lista de tokens terminada por EOF
func (l *Lexer) Tokenizar() ([]Token, error) {
	var tokens []Token

	for {
		l.pularEspacos()

		token, err := l.proximoToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)

		if token.Type == EOF {
			break
		}
	}

	return tokens, nil
}

// Tokenizar é um atalho para NovoLexer(fonte).Tokenizar()
func Tokenizar(fonte string) ([]Token, error) {
	return NovoLexer(fonte).Tokenizar()
}

// proximoToken encontra o próximo token a partir da posição atual
func (l *Lexer) proximoToken() (Token, error) {
	inicio := l.posicao
	if !l.temMais() {
		return NovoToken(EOF, "", NovoSpan(inicio, inicio)), nil
	}

	restante := l.entrada[l.posicao:]
	for _, p := range padroes {
		match := p.regex.FindString(restante)
		if match == "" {
			continue
		}
		if p.tipo == NUMBER {
			if _, err := strconv.ParseUint(match, 10, 64); err != nil {
				return Token{}, &ErroLexico{Tipo: NUMERO_INVALIDO, Texto: match, Span: NovoSpan(inicio, inicio+len(match))}
			}
		}
		l.avancar(len(match))
		return NovoToken(p.tipo, match, NovoSpan(inicio, l.posicao)), nil
	}

	// '!' só é válido como prefixo de "!=": sem próximo byte, faltou entrada
	if l.espiar() == '!' && len(restante) < 2 {
		return Token{}, erroFimInesperado(len(l.entrada))
	}

	return Token{}, erroCaractereInvalido(l.espiar(), inicio)
}

// pularEspacos avança sobre espaços, tabs e quebras de linha
func (l *Lexer) pularEspacos() {
	if !l.temMais() {
		return
	}
	l.avancar(len(espacos.FindString(l.entrada[l.posicao:])))
}

// avancar move a posição do lexer para frente
func (l *Lexer) avancar(comprimento int) {
	l.posicao += comprimento
	if l.posicao > len(l.entrada) {
		l.posicao = len(l.entrada)
	}
}

// espiar retorna o caractere atual sem avançar
func (l *Lexer) espiar() byte {
	if l.posicao >= len(l.entrada) {
		return 0
	}
	return l.entrada[l.posicao]
}

// temMais verifica se há mais caracteres para processar
func (l *Lexer) temMais() bool {
	return l.posicao < len(l.entrada)
}

// ImprimirTokens escreve todos os tokens em formato de tabela
func ImprimirTokens(w io.Writer, tokens []Token) {
	fmt.Fprintf(w, "%-14s %-8s %-10s %s\n", "TIPO", "VALOR", "INTERVALO", "CATEGORIA")
	fmt.Fprintln(w, strings.Repeat("-", 46))

	for _, token := range tokens {
		if token.Type != EOF {
			fmt.Fprintf(w, "%-14s %-8s %-10s %s\n", token.Type, token.Value, token.Span, categoria(token))
		}
	}
}

func categoria(token Token) string {
	switch {
	case token.ENumero():
		return "número"
	case token.EOperador():
		return "aritmético"
	case token.EComparacao():
		return "comparação"
	case token.EParenteses():
		return "agrupamento"
	case token.Type == IDENTIFIER:
		return "variável"
	default:
		return "pontuação"
	}
}
