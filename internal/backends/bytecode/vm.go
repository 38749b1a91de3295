package bytecode

import (
	"fmt"

	"github.com/khevencolino/Faisca/internal/debug"
	"github.com/khevencolino/Faisca/internal/parser"
)

type VM struct {
	stack     []int64 // cresce conforme a profundidade da expressão
	variables []int64
	pc        int // program counter
	ultimo    int64
}

func NewVM() *VM {
	return &VM{
		stack:     make([]int64, 0, 256),
		variables: make([]int64, parser.TotalVariaveis),
		pc:        0,
	}
}

// Execute roda as instruções e devolve o último valor descartado por POP
func (vm *VM) Execute(instructions []Instruction) (int64, error) {
	debug.Printf("Bytecode gerado (%d instruções):\n", len(instructions))
	if debug.Enabled {
		for i, instr := range instructions {
			debug.Printf("  %03d: %s\n", i, instr)
		}
		debug.Println()
	}

	for vm.pc < len(instructions) {
		instr := instructions[vm.pc]

		switch instr.OpCode {
		case OP_CONST:
			if err := vm.push(instr.Operand); err != nil {
				return 0, err
			}

		case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_EQ, OP_NE, OP_LT, OP_LE:
			if err := vm.binaria(instr); err != nil {
				return 0, err
			}

		case OP_LOAD:
			if instr.Operand < 0 || int(instr.Operand) >= len(vm.variables) {
				return 0, fmt.Errorf("índice de variável inválido: %d", instr.Operand)
			}
			if err := vm.push(vm.variables[instr.Operand]); err != nil {
				return 0, err
			}

		case OP_STORE:
			value, err := vm.pop()
			if err != nil {
				return 0, err
			}
			if instr.Operand < 0 || int(instr.Operand) >= len(vm.variables) {
				return 0, fmt.Errorf("índice de variável inválido: %d", instr.Operand)
			}
			vm.variables[instr.Operand] = value
			if err := vm.push(value); err != nil { // atribuição retorna o valor
				return 0, err
			}

		case OP_POP:
			value, err := vm.pop()
			if err != nil {
				return 0, err
			}
			vm.ultimo = value

		case OP_HALT:
			debug.Printf("Execução concluída!\n")
			return vm.ultimo, nil

		default:
			return 0, fmt.Errorf("opcode desconhecido: %d", instr.OpCode)
		}

		vm.pc++
	}

	return vm.ultimo, nil
}

func (vm *VM) binaria(instr Instruction) error {
	b, err := vm.pop()
	if err != nil {
		return err
	}
	a, err := vm.pop()
	if err != nil {
		return err
	}

	var resultado int64
	switch instr.OpCode {
	case OP_ADD:
		resultado = a + b
	case OP_SUB:
		resultado = a - b
	case OP_MUL:
		resultado = a * b
	case OP_DIV:
		if b == 0 {
			return fmt.Errorf("divisão por zero em %s", instr.Span)
		}
		resultado = a / b
	case OP_EQ:
		resultado = booleano(a == b)
	case OP_NE:
		resultado = booleano(a != b)
	case OP_LT:
		resultado = booleano(a < b)
	case OP_LE:
		resultado = booleano(a <= b)
	}
	return vm.push(resultado)
}

// Variavel lê o slot de uma letra após a execução
func (vm *VM) Variavel(letra byte) int64 {
	local, err := parser.NovaVariavelLocal(letra)
	if err != nil {
		return 0
	}
	return vm.variables[local.Indice()]
}

func booleano(v bool) int64 {
	if v {
		return 1
	}
	return 0
}

func (vm *VM) push(value int64) error {
	vm.stack = append(vm.stack, value)
	return nil
}

func (vm *VM) pop() (int64, error) {
	if len(vm.stack) == 0 {
		return 0, fmt.Errorf("stack underflow")
	}
	topo := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return topo, nil
}
