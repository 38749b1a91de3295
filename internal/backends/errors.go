package backends

import (
	"fmt"

	"github.com/khevencolino/Faisca/internal/parser"
)

// TipoErroGeracao classifica as falhas da geração de código
type TipoErroGeracao int

const (
	NO_NAO_SUPORTADO TipoErroGeracao = iota // forma de nó que o gerador não sabe baixar
	ERRO_ESCRITA                            // falha ao escrever na saída
	ERRO_EXECUCAO                           // falha ao executar (VM e interpretador)
)

// ErroGeracao descreve uma falha de backend; Causa guarda o erro de E/S original
type ErroGeracao struct {
	Tipo     TipoErroGeracao
	No       parser.Expressao
	Mensagem string
	Causa    error
}

func (e *ErroGeracao) Error() string {
	switch e.Tipo {
	case NO_NAO_SUPORTADO:
		return fmt.Sprintf("nó não suportado %s: %s", e.No, e.Mensagem)
	case ERRO_ESCRITA:
		return fmt.Sprintf("erro ao escrever saída: %v", e.Causa)
	case ERRO_EXECUCAO:
		return fmt.Sprintf("erro de execução: %s", e.Mensagem)
	default:
		return "erro de geração"
	}
}

func (e *ErroGeracao) Unwrap() error {
	return e.Causa
}

// NovoErroNoNaoSuportado cria o erro para um alvo de atribuição que não é variável
func NovoErroNoNaoSuportado(no parser.Expressao, mensagem string) *ErroGeracao {
	return &ErroGeracao{Tipo: NO_NAO_SUPORTADO, No: no, Mensagem: mensagem}
}

// NovoErroEscrita embrulha uma falha do destino de saída
func NovoErroEscrita(causa error) *ErroGeracao {
	return &ErroGeracao{Tipo: ERRO_ESCRITA, Causa: causa}
}

// NovoErroExecucao cria um erro de execução para os backends que executam o programa
func NovoErroExecucao(no parser.Expressao, mensagem string) *ErroGeracao {
	return &ErroGeracao{Tipo: ERRO_EXECUCAO, No: no, Mensagem: mensagem}
}

// ComoErro extrai o erro do retorno interface{} de um visitante
func ComoErro(resultado interface{}) error {
	if erro, ok := resultado.(error); ok {
		return erro
	}
	return nil
}

// AlvoDaAtribuicao garante que o lado esquerdo de uma atribuição é uma variável
func AlvoDaAtribuicao(atribuicao *parser.Atribuicao) (*parser.Variavel, error) {
	variavel, ok := atribuicao.OperandoEsquerdo.(*parser.Variavel)
	if !ok {
		return nil, NovoErroNoNaoSuportado(atribuicao.OperandoEsquerdo, "o alvo de uma atribuição precisa ser uma variável")
	}
	return variavel, nil
}
