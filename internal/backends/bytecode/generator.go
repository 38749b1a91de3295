package bytecode

import (
	"fmt"
	"io"

	"github.com/khevencolino/Faisca/internal/backends"
	"github.com/khevencolino/Faisca/internal/debug"
	"github.com/khevencolino/Faisca/internal/parser"
)

type BytecodeBackend struct {
	instructions []Instruction
}

func NewBytecodeBackend() *BytecodeBackend {
	return &BytecodeBackend{
		instructions: make([]Instruction, 0),
	}
}

func (b *BytecodeBackend) GetName() string      { return "Bytecode + VM" }
func (b *BytecodeBackend) GetExtension() string { return ".bc" }

// Compile gera o bytecode, escreve a listagem em w e executa na VM
func (b *BytecodeBackend) Compile(w io.Writer, programa parser.Programa) error {
	instrucoes, err := b.Gerar(programa)
	if err != nil {
		return err
	}

	for i, instr := range instrucoes {
		if _, err := fmt.Fprintf(w, "%03d: %s\n", i, instr); err != nil {
			return backends.NovoErroEscrita(err)
		}
	}

	resultado, err := b.executarVM()
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Resultado: %d\n", resultado); err != nil {
		return backends.NovoErroEscrita(err)
	}
	return nil
}

// Gera apenas o bytecode, sem executar
func (b *BytecodeBackend) Gerar(programa parser.Programa) ([]Instruction, error) {
	debug.Printf("Compilando para Bytecode...\n")
	// Slice novo a cada chamada: o resultado anterior pertence a quem o recebeu
	b.instructions = make([]Instruction, 0)

	for i, stmt := range programa {
		debug.Printf("  Processando statement %d...\n", i+1)
		if err := b.visitarExpressao(stmt); err != nil {
			return nil, err
		}
		b.emit(OP_POP, 0, stmt)
	}

	b.emit(OP_HALT, 0, nil)
	return b.instructions, nil
}

func (b *BytecodeBackend) visitarExpressao(expr parser.Expressao) error {
	// Usa o padrão visitor para gerar bytecode
	return backends.ComoErro(expr.Aceitar(b))
}

// Implementação da interface visitor
func (b *BytecodeBackend) Constante(constante *parser.Constante) interface{} {
	b.emit(OP_CONST, constante.Valor, constante)
	return nil
}

func (b *BytecodeBackend) Variavel(variavel *parser.Variavel) interface{} {
	b.emit(OP_LOAD, int64(variavel.Local.Indice()), variavel)
	return nil
}

func (b *BytecodeBackend) Atribuicao(atribuicao *parser.Atribuicao) interface{} {
	alvo, err := backends.AlvoDaAtribuicao(atribuicao)
	if err != nil {
		return err
	}
	if err := b.visitarExpressao(atribuicao.OperandoDireito); err != nil {
		return err
	}
	b.emit(OP_STORE, int64(alvo.Local.Indice()), atribuicao)
	return nil
}

func (b *BytecodeBackend) OperacaoBinaria(operacao *parser.OperacaoBinaria) interface{} {
	if err := b.visitarExpressao(operacao.OperandoEsquerdo); err != nil {
		return err
	}
	if err := b.visitarExpressao(operacao.OperandoDireito); err != nil {
		return err
	}

	switch operacao.Operador {
	case parser.ADICAO:
		b.emit(OP_ADD, 0, operacao)
	case parser.SUBTRACAO:
		b.emit(OP_SUB, 0, operacao)
	case parser.MULTIPLICACAO:
		b.emit(OP_MUL, 0, operacao)
	case parser.DIVISAO:
		b.emit(OP_DIV, 0, operacao)

	// Operações de comparação
	case parser.IGUALDADE:
		b.emit(OP_EQ, 0, operacao)
	case parser.DIFERENCA:
		b.emit(OP_NE, 0, operacao)
	case parser.MENOR_QUE:
		b.emit(OP_LT, 0, operacao)
	case parser.MENOR_IGUAL:
		b.emit(OP_LE, 0, operacao)
	default:
		return backends.NovoErroNoNaoSuportado(operacao, "operador desconhecido")
	}
	return nil
}

func (b *BytecodeBackend) emit(op OpCode, operand int64, origem parser.Expressao) {
	instr := Instruction{OpCode: op, Operand: operand}
	switch no := origem.(type) {
	case *parser.Constante:
		instr.Span = no.Token.Span
	case *parser.Variavel:
		instr.Span = no.Token.Span
	case *parser.Atribuicao:
		instr.Span = no.Token.Span
	case *parser.OperacaoBinaria:
		instr.Span = no.Token.Span
	}
	b.instructions = append(b.instructions, instr)
}

func (b *BytecodeBackend) executarVM() (int64, error) {
	debug.Printf("Executando na Virtual Machine...\n")

	vm := NewVM()
	resultado, err := vm.Execute(b.instructions)
	if err != nil {
		return 0, backends.NovoErroExecucao(nil, err.Error())
	}
	return resultado, nil
}
