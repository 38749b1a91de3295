package llvm

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/khevencolino/Faisca/internal/debug"
)

// Clang compila o .ll em executável
var Clang = "clang"

// CompilarParaExecutavel usa o clang do sistema para ligar o módulo gerado
func CompilarParaExecutavel(arquivoLLVM, executavel string) error {
	debug.Printf("Tentando compilar LLVM IR para executável...\n")

	caminho, err := exec.LookPath(Clang)
	if err != nil {
		return fmt.Errorf("'%s' não encontrado; use 'clang %s -o %s' manualmente", Clang, arquivoLLVM, executavel)
	}

	var saidaErro bytes.Buffer
	cmd := exec.Command(caminho, "-O2", "-o", executavel, arquivoLLVM)
	cmd.Stderr = &saidaErro
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("erro ao compilar IR (%s): %v: %s", Clang, err, strings.TrimSpace(saidaErro.String()))
	}

	debug.Printf("Executável gerado em: %s\n", executavel)
	return nil
}
