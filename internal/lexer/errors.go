package lexer

import "fmt"

// TipoErroLexico classifica as falhas da análise léxica
type TipoErroLexico int

const (
	CARACTERE_INVALIDO TipoErroLexico = iota // byte sem regra correspondente
	FIM_INESPERADO                           // lookahead de dois bytes sem entrada suficiente
	NUMERO_INVALIDO                          // literal que não cabe em 64 bits
)

// ErroLexico descreve uma falha do lexer com o intervalo afetado
type ErroLexico struct {
	Tipo      TipoErroLexico
	Caractere byte
	Texto     string
	Span      Span
}

func (e *ErroLexico) Error() string {
	switch e.Tipo {
	case CARACTERE_INVALIDO:
		return fmt.Sprintf("caractere inválido '%c' em %s", e.Caractere, e.Span)
	case FIM_INESPERADO:
		return fmt.Sprintf("fim inesperado da entrada em %s", e.Span)
	case NUMERO_INVALIDO:
		return fmt.Sprintf("número fora do intervalo de 64 bits '%s' em %s", e.Texto, e.Span)
	default:
		return "erro léxico"
	}
}

// Intervalo expõe o span para o formatador de diagnósticos
func (e *ErroLexico) Intervalo() (int, int) {
	return e.Span.Inicio, e.Span.Fim
}

// Resumo é a mensagem curta exibida ao lado dos marcadores '^'
func (e *ErroLexico) Resumo() string {
	switch e.Tipo {
	case CARACTERE_INVALIDO:
		return fmt.Sprintf("caractere inválido '%c'", e.Caractere)
	case NUMERO_INVALIDO:
		return "número fora do intervalo"
	default:
		return "fim inesperado da entrada"
	}
}

func erroCaractereInvalido(c byte, posicao int) *ErroLexico {
	return &ErroLexico{Tipo: CARACTERE_INVALIDO, Caractere: c, Span: NovoSpan(posicao, posicao+1)}
}

func erroFimInesperado(posicao int) *ErroLexico {
	return &ErroLexico{Tipo: FIM_INESPERADO, Span: NovoSpan(posicao, posicao)}
}
