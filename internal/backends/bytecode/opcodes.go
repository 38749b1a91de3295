package bytecode

import (
	"fmt"

	"github.com/khevencolino/Faisca/internal/lexer"
)

type OpCode byte

const (
	OP_CONST OpCode = iota // CONST valor
	OP_ADD                 // ADD
	OP_SUB                 // SUB
	OP_MUL                 // MUL
	OP_DIV                 // DIV
	OP_LOAD                // LOAD slot
	OP_STORE               // STORE slot (mantém o valor na pilha)
	OP_POP                 // POP (fim de statement)
	OP_HALT                // HALT

	// Operações de comparação
	OP_EQ // EQUAL (==)
	OP_NE // NOT_EQUAL (!=)
	OP_LT // LESS_THAN (<)
	OP_LE // LESS_EQUAL (<=)
)

type Instruction struct {
	OpCode  OpCode
	Operand int64
	Span    lexer.Span // para debug
}

func (i Instruction) String() string {
	switch i.OpCode {
	case OP_CONST, OP_LOAD, OP_STORE:
		return fmt.Sprintf("%s %d", i.OpCode, i.Operand)
	default:
		return i.OpCode.String()
	}
}

func (op OpCode) String() string {
	switch op {
	case OP_CONST:
		return "CONST"
	case OP_ADD:
		return "ADD"
	case OP_SUB:
		return "SUB"
	case OP_MUL:
		return "MUL"
	case OP_DIV:
		return "DIV"
	case OP_LOAD:
		return "LOAD"
	case OP_STORE:
		return "STORE"
	case OP_POP:
		return "POP"
	case OP_HALT:
		return "HALT"
	case OP_EQ:
		return "EQ"
	case OP_NE:
		return "NE"
	case OP_LT:
		return "LT"
	case OP_LE:
		return "LE"
	default:
		return "UNKNOWN"
	}
}
