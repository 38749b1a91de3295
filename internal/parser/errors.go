package parser

import (
	"fmt"

	"github.com/khevencolino/Faisca/internal/lexer"
)

// TipoErroSintatico classifica as falhas do parser
type TipoErroSintatico int

const (
	TOKEN_INESPERADO TipoErroSintatico = iota
	FIM_INESPERADO
	NUMERO_INVALIDO
)

// ErroSintatico descreve a primeira falha encontrada; não há recuperação
type ErroSintatico struct {
	Tipo     TipoErroSintatico
	Token    lexer.Token
	Esperado string
}

func (e *ErroSintatico) Error() string {
	switch e.Tipo {
	case TOKEN_INESPERADO:
		return fmt.Sprintf("token inesperado %s (esperado %s)", e.Token, e.Esperado)
	case FIM_INESPERADO:
		return fmt.Sprintf("fim inesperado da entrada (esperado %s)", e.Esperado)
	case NUMERO_INVALIDO:
		return fmt.Sprintf("número inválido '%s' em %s", e.Token.Value, e.Token.Span)
	default:
		return "erro sintático"
	}
}

// Intervalo expõe o span do token problemático
func (e *ErroSintatico) Intervalo() (int, int) {
	inicio, fim := e.Token.Span.Inicio, e.Token.Span.Fim
	if fim == inicio {
		fim++ // EOF ocupa zero bytes; sublinha a posição seguinte
	}
	return inicio, fim
}

// Resumo é a mensagem curta exibida ao lado dos marcadores '^'
func (e *ErroSintatico) Resumo() string {
	switch e.Tipo {
	case TOKEN_INESPERADO:
		return fmt.Sprintf("esperado %s, encontrado '%s'", e.Esperado, e.Token.Value)
	case FIM_INESPERADO:
		return fmt.Sprintf("esperado %s antes do fim", e.Esperado)
	default:
		return "número inválido"
	}
}

// erroNoToken escolhe entre fim inesperado e token inesperado
func erroNoToken(token lexer.Token, esperado string) *ErroSintatico {
	if token.Type == lexer.EOF {
		return &ErroSintatico{Tipo: FIM_INESPERADO, Token: token, Esperado: esperado}
	}
	return &ErroSintatico{Tipo: TOKEN_INESPERADO, Token: token, Esperado: esperado}
}
