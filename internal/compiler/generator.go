package compiler

import (
	"fmt"
	"strings"

	"github.com/khevencolino/Faisca/internal/backends"
	"github.com/khevencolino/Faisca/internal/backends/assembly"
	"github.com/khevencolino/Faisca/internal/backends/bytecode"
	"github.com/khevencolino/Faisca/internal/backends/interpreter"
	"github.com/khevencolino/Faisca/internal/backends/llvm"
)

// BackendsDisponiveis lista os nomes aceitos por -backend
var BackendsDisponiveis = []string{"assembly", "llvm", "bytecode", "interpreter"}

// selecionarBackend resolve o nome (e seus apelidos) para um gerador de código
func selecionarBackend(nome, arch string) (backends.Backend, error) {
	switch strings.ToLower(nome) {
	case "", "assembly", "asm", "native":
		return assembly.NewAssemblyBackend(arch)
	case "llvm", "llvmir", "ir":
		return llvm.NewLLVMBackend(), nil
	case "bytecode", "bc", "vm":
		return bytecode.NewBytecodeBackend(), nil
	case "interpreter", "interp", "ast":
		return interpreter.NewInterpreterBackend(), nil
	default:
		return nil, fmt.Errorf("backend desconhecido '%s' (disponíveis: %s)", nome, strings.Join(BackendsDisponiveis, ", "))
	}
}
