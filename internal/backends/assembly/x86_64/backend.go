package x86_64

import (
	"fmt"
	"io"
	"math"

	"github.com/khevencolino/Faisca/internal/backends"
	"github.com/khevencolino/Faisca/internal/debug"
	"github.com/khevencolino/Faisca/internal/parser"
)

// X86_64Backend gera assembly intel (sem prefixos) para uma máquina de pilha.
// Cada expressão deixa seu valor no topo da pilha nativa; variáveis vivem
// em um frame fixo de 208 bytes abaixo de rbp.
type X86_64Backend struct {
	saida io.Writer
}

func NewX86_64Backend() *X86_64Backend {
	return &X86_64Backend{}
}

func (a *X86_64Backend) GetName() string      { return "Assembly x86-64" }
func (a *X86_64Backend) GetExtension() string { return ".s" }

func (a *X86_64Backend) Compile(w io.Writer, programa parser.Programa) error {
	debug.Printf("Compilando para Assembly x86-64...\n")
	a.saida = w

	if err := a.gerarPrologo(); err != nil {
		return err
	}

	for i, stmt := range programa {
		debug.Printf("  Processando statement %d: %s\n", i+1, stmt)
		if err := a.gerarExpressao(stmt); err != nil {
			return err
		}
		// O statement vale só pelo efeito colateral; o último valor fica em rax
		if err := a.emitir("pop rax"); err != nil {
			return err
		}
	}

	return a.gerarEpilogo()
}

func (a *X86_64Backend) gerarExpressao(expr parser.Expressao) error {
	// Usa o padrão visitor para gerar código assembly
	return backends.ComoErro(expr.Aceitar(a))
}

// Implementação da interface visitor
func (a *X86_64Backend) Constante(constante *parser.Constante) interface{} {
	// push aceita apenas imediatos de 32 bits com extensão de sinal
	if constante.Valor >= math.MinInt32 && constante.Valor <= math.MaxInt32 {
		return a.emitir(fmt.Sprintf("push %d", constante.Valor))
	}
	return a.emitir(
		fmt.Sprintf("mov rax, %d", constante.Valor),
		"push rax",
	)
}

func (a *X86_64Backend) Variavel(variavel *parser.Variavel) interface{} {
	if err := a.gerarEndereco(variavel); err != nil {
		return err
	}
	return a.emitir(
		"pop rax",
		"mov rax, [rax]",
		"push rax",
	)
}

func (a *X86_64Backend) Atribuicao(atribuicao *parser.Atribuicao) interface{} {
	alvo, err := backends.AlvoDaAtribuicao(atribuicao)
	if err != nil {
		return err
	}

	if err := a.gerarEndereco(alvo); err != nil {
		return err
	}
	if err := a.gerarExpressao(atribuicao.OperandoDireito); err != nil {
		return err
	}

	// A atribuição também é expressão: o valor armazenado volta para a pilha
	return a.emitir(
		"pop rdi",
		"pop rax",
		"mov [rax], rdi",
		"push rdi",
	)
}

func (a *X86_64Backend) OperacaoBinaria(operacao *parser.OperacaoBinaria) interface{} {
	// Esquerda antes da direita: operandos podem ser atribuições
	if err := a.gerarExpressao(operacao.OperandoEsquerdo); err != nil {
		return err
	}
	if err := a.gerarExpressao(operacao.OperandoDireito); err != nil {
		return err
	}

	if err := a.emitir("pop rdi", "pop rax"); err != nil {
		return err
	}

	var err error
	switch operacao.Operador {
	case parser.ADICAO:
		err = a.emitir("add rax, rdi")
	case parser.SUBTRACAO:
		err = a.emitir("sub rax, rdi")
	case parser.MULTIPLICACAO:
		err = a.emitir("imul rax, rdi")
	case parser.DIVISAO:
		// cqo estende o sinal de rax para rdx antes da divisão
		err = a.emitir("cqo", "idiv rdi")
	case parser.IGUALDADE:
		err = a.gerarComparacao("sete")
	case parser.DIFERENCA:
		err = a.gerarComparacao("setne")
	case parser.MENOR_QUE:
		err = a.gerarComparacao("setl")
	case parser.MENOR_IGUAL:
		err = a.gerarComparacao("setle")
	default:
		return backends.NovoErroNoNaoSuportado(operacao, "operador desconhecido")
	}
	if err != nil {
		return err
	}

	return a.emitir("push rax")
}

// gerarComparacao produz exatamente 0 ou 1 em rax
func (a *X86_64Backend) gerarComparacao(set string) error {
	return a.emitir(
		"cmp rax, rdi",
		set+" al",
		"movzb rax, al",
	)
}

// gerarEndereco empilha o endereço rbp-offset da variável
func (a *X86_64Backend) gerarEndereco(variavel *parser.Variavel) error {
	return a.emitir(
		"mov rax, rbp",
		fmt.Sprintf("sub rax, %d", variavel.Local.Offset),
		"push rax",
	)
}

func (a *X86_64Backend) gerarPrologo() error {
	if err := a.emitirLinha(".intel_syntax noprefix", ".global main", "main:"); err != nil {
		return err
	}
	return a.emitir(
		"push rbp",
		"mov rbp, rsp",
		fmt.Sprintf("sub rsp, %d", parser.TamanhoFrame),
	)
}

func (a *X86_64Backend) gerarEpilogo() error {
	return a.emitir(
		"mov rsp, rbp",
		"pop rbp",
		"ret",
	)
}

// emitir escreve instruções indentadas; a primeira falha de escrita aborta
func (a *X86_64Backend) emitir(instrucoes ...string) error {
	for _, instrucao := range instrucoes {
		if _, err := fmt.Fprintf(a.saida, "  %s\n", instrucao); err != nil {
			return backends.NovoErroEscrita(err)
		}
	}
	return nil
}

// emitirLinha escreve diretivas e rótulos sem indentação
func (a *X86_64Backend) emitirLinha(linhas ...string) error {
	for _, linha := range linhas {
		if _, err := fmt.Fprintln(a.saida, linha); err != nil {
			return backends.NovoErroEscrita(err)
		}
	}
	return nil
}
