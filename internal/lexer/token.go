package lexer

import "fmt"

// TokenType representa o tipo de token
type TokenType int

const (
	// Tipos de tokens
	NUMBER        TokenType = iota // Números
	PLUS                           // Operador de adição (+)
	MINUS                          // Operador de subtração (-)
	MULTIPLY                       // Operador de multiplicação (*)
	DIVIDE                         // Operador de divisão (/)
	LPAREN                         // Parêntese esquerdo (()
	RPAREN                         // Parêntese direito ())
	EQUAL                          // Igualdade (==)
	NOT_EQUAL                      // Diferença (!=)
	GREATER_EQUAL                  // Maior ou igual (>=)
	GREATER                        // Maior que (>)
	LESS_EQUAL                     // Menor ou igual (<=)
	LESS                           // Menor que (<)
	SEMICOLON                      // Fim de statement (;)
	ASSIGN                         // Atribuição (=)
	IDENTIFIER                     // Variável de uma letra
	EOF                            // Fim da entrada
)

// String retorna uma representação em string do tipo de token
func (t TokenType) String() string {
	switch t {
	case NUMBER:
		return "NUMBER"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case MULTIPLY:
		return "MULTIPLY"
	case DIVIDE:
		return "DIVIDE"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case EQUAL:
		return "EQUAL"
	case NOT_EQUAL:
		return "NOT_EQUAL"
	case GREATER_EQUAL:
		return "GREATER_EQUAL"
	case GREATER:
		return "GREATER"
	case LESS_EQUAL:
		return "LESS_EQUAL"
	case LESS:
		return "LESS"
	case SEMICOLON:
		return "SEMICOLON"
	case ASSIGN:
		return "ASSIGN"
	case IDENTIFIER:
		return "IDENTIFIER"
	case EOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// Token representa um token encontrado no código fonte
type Token struct {
	Type  TokenType // Tipo do token
	Value string    // Texto do token
	Span  Span      // Intervalo no código fonte
}

// String retorna uma representação em string do token
func (t Token) String() string {
	if t.Type == EOF {
		return fmt.Sprintf("EOF@%s", t.Span)
	}
	return fmt.Sprintf("%s('%s')@%s", t.Type, t.Value, t.Span)
}

// NovoToken cria um novo token
func NovoToken(tipoToken TokenType, valor string, span Span) Token {
	return Token{
		Type:  tipoToken,
		Value: valor,
		Span:  span,
	}
}

// EOperador verifica se o token é um operador aritmético
func (t Token) EOperador() bool {
	return t.Type == PLUS || t.Type == MINUS || t.Type == MULTIPLY || t.Type == DIVIDE
}

// EComparacao verifica se o token é um dos seis operadores de comparação
func (t Token) EComparacao() bool {
	switch t.Type {
	case EQUAL, NOT_EQUAL, GREATER_EQUAL, GREATER, LESS_EQUAL, LESS:
		return true
	}
	return false
}

// ENumero verifica se o token é um número
func (t Token) ENumero() bool {
	return t.Type == NUMBER
}

// EParenteses verifica se o token é um parêntese
func (t Token) EParenteses() bool {
	return t.Type == LPAREN || t.Type == RPAREN
}
