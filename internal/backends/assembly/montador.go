package assembly

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/khevencolino/Faisca/internal/debug"
)

// Compilador é o driver C usado para montar e ligar; pode ser trocado em testes
var Compilador = "cc"

// Montar transforma o arquivo .s em executável usando o toolchain do sistema.
// O símbolo main gerado depende do runtime C para o ponto de entrada.
func Montar(arquivoAssembly, executavel string) error {
	debug.Printf("Criando arquivo executavel...\n")
	debug.Printf("Linkando com runtime...\n")

	caminho, err := exec.LookPath(Compilador)
	if err != nil {
		return fmt.Errorf("montador '%s' não encontrado: %v", Compilador, err)
	}

	var saidaErro bytes.Buffer
	cmd := exec.Command(caminho, "-o", executavel, arquivoAssembly)
	cmd.Stderr = &saidaErro
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("erro ao montar (%s): %v: %s", Compilador, err, strings.TrimSpace(saidaErro.String()))
	}

	debug.Printf("Executável gerado: %s\n", executavel)
	debug.Printf("Para executar: ./%s\n", executavel)

	return nil
}
