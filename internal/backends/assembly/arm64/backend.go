package arm64

import (
	"fmt"
	"io"

	"github.com/khevencolino/Faisca/internal/backends"
	"github.com/khevencolino/Faisca/internal/debug"
	"github.com/khevencolino/Faisca/internal/parser"
)

// ARM64Backend gera assembly AArch64 (Linux) com o mesmo modelo de frame do x86-64:
// x29 é a base do frame, variáveis em x29-offset, e cada valor intermediário
// ocupa um slot de 16 bytes na pilha para manter sp alinhado.
type ARM64Backend struct {
	saida io.Writer
}

func NewARM64Backend() *ARM64Backend {
	return &ARM64Backend{}
}

func (a *ARM64Backend) GetName() string      { return "Assembly ARM64 (Linux)" }
func (a *ARM64Backend) GetExtension() string { return ".s" }

func (a *ARM64Backend) Compile(w io.Writer, programa parser.Programa) error {
	debug.Printf("Compilando para ARM64...\n")
	a.saida = w

	if err := a.gerarPrologo(); err != nil {
		return err
	}

	for i, stmt := range programa {
		debug.Printf("  Processando statement %d: %s\n", i+1, stmt)
		if err := backends.ComoErro(stmt.Aceitar(a)); err != nil {
			return err
		}
		if err := a.desempilhar("x0"); err != nil {
			return err
		}
	}

	return a.gerarEpilogo()
}

// Implementação da interface visitor
func (a *ARM64Backend) Constante(constante *parser.Constante) interface{} {
	var err error
	if constante.Valor >= 0 && constante.Valor <= 0xffff {
		err = a.emitir(fmt.Sprintf("mov x0, #%d", constante.Valor))
	} else {
		// Pseudo-instrução: o montador cria a entrada no literal pool
		err = a.emitir(fmt.Sprintf("ldr x0, =%d", constante.Valor))
	}
	if err != nil {
		return err
	}
	return a.empilhar("x0")
}

func (a *ARM64Backend) Variavel(variavel *parser.Variavel) interface{} {
	if err := a.gerarEndereco(variavel); err != nil {
		return err
	}
	if err := a.desempilhar("x0"); err != nil {
		return err
	}
	if err := a.emitir("ldr x0, [x0]"); err != nil {
		return err
	}
	return a.empilhar("x0")
}

func (a *ARM64Backend) Atribuicao(atribuicao *parser.Atribuicao) interface{} {
	alvo, err := backends.AlvoDaAtribuicao(atribuicao)
	if err != nil {
		return err
	}

	if err := a.gerarEndereco(alvo); err != nil {
		return err
	}
	if err := backends.ComoErro(atribuicao.OperandoDireito.Aceitar(a)); err != nil {
		return err
	}

	if err := a.desempilhar("x1"); err != nil {
		return err
	}
	if err := a.desempilhar("x0"); err != nil {
		return err
	}
	if err := a.emitir("str x1, [x0]"); err != nil {
		return err
	}
	return a.empilhar("x1")
}

func (a *ARM64Backend) OperacaoBinaria(operacao *parser.OperacaoBinaria) interface{} {
	// Avalia operando esquerdo, depois o direito
	if err := backends.ComoErro(operacao.OperandoEsquerdo.Aceitar(a)); err != nil {
		return err
	}
	if err := backends.ComoErro(operacao.OperandoDireito.Aceitar(a)); err != nil {
		return err
	}

	// x0 = esquerdo, x1 = direito
	if err := a.desempilhar("x1"); err != nil {
		return err
	}
	if err := a.desempilhar("x0"); err != nil {
		return err
	}

	var err error
	switch operacao.Operador {
	case parser.ADICAO:
		err = a.emitir("add x0, x0, x1")
	case parser.SUBTRACAO:
		err = a.emitir("sub x0, x0, x1")
	case parser.MULTIPLICACAO:
		err = a.emitir("mul x0, x0, x1")
	case parser.DIVISAO:
		err = a.emitir("sdiv x0, x0, x1")
	case parser.IGUALDADE:
		err = a.emitir("cmp x0, x1", "cset x0, eq")
	case parser.DIFERENCA:
		err = a.emitir("cmp x0, x1", "cset x0, ne")
	case parser.MENOR_QUE:
		err = a.emitir("cmp x0, x1", "cset x0, lt")
	case parser.MENOR_IGUAL:
		err = a.emitir("cmp x0, x1", "cset x0, le")
	default:
		return backends.NovoErroNoNaoSuportado(operacao, "operador desconhecido")
	}
	if err != nil {
		return err
	}

	return a.empilhar("x0")
}

func (a *ARM64Backend) gerarEndereco(variavel *parser.Variavel) error {
	if err := a.emitir(fmt.Sprintf("sub x0, x29, #%d", variavel.Local.Offset)); err != nil {
		return err
	}
	return a.empilhar("x0")
}

func (a *ARM64Backend) empilhar(registrador string) error {
	return a.emitir(fmt.Sprintf("str %s, [sp, #-16]!", registrador))
}

func (a *ARM64Backend) desempilhar(registrador string) error {
	return a.emitir(fmt.Sprintf("ldr %s, [sp], #16", registrador))
}

func (a *ARM64Backend) gerarPrologo() error {
	if _, err := fmt.Fprint(a.saida, ".text\n.global main\n.align 2\nmain:\n"); err != nil {
		return backends.NovoErroEscrita(err)
	}
	return a.emitir(
		"stp x29, x30, [sp, #-16]!", // Salva frame pointer e link register
		"mov x29, sp",
		fmt.Sprintf("sub sp, sp, #%d", parser.TamanhoFrame),
	)
}

func (a *ARM64Backend) gerarEpilogo() error {
	// x0 já contém o valor do último statement
	return a.emitir(
		"mov sp, x29",
		"ldp x29, x30, [sp], #16",
		"ret",
	)
}

func (a *ARM64Backend) emitir(instrucoes ...string) error {
	for _, instrucao := range instrucoes {
		if _, err := fmt.Fprintf(a.saida, "    %s\n", instrucao); err != nil {
			return backends.NovoErroEscrita(err)
		}
	}
	return nil
}
