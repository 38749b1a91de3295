package assembly

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/khevencolino/Faisca/internal/lexer"
	"github.com/khevencolino/Faisca/internal/parser"
)

func TestSelecaoDeArquitetura(t *testing.T) {
	testes := map[string]string{
		"x86_64":  "Assembly x86-64",
		"amd64":   "Assembly x86-64",
		"arm64":   "Assembly ARM64 (Linux)",
		"aarch64": "Assembly ARM64 (Linux)",
	}
	for arch, nome := range testes {
		backend, err := NewAssemblyBackend(arch)
		if err != nil {
			t.Fatalf("%s: erro inesperado: %v", arch, err)
		}
		if backend.GetName() != nome || backend.GetExtension() != ".s" {
			t.Errorf("%s: backend inesperado %q", arch, backend.GetName())
		}
	}

	if _, err := NewAssemblyBackend("riscv64"); err == nil {
		t.Errorf("arquitetura desconhecida deveria falhar")
	}
}

func TestMontadorAusente(t *testing.T) {
	anterior := Compilador
	Compilador = "montador-que-nao-existe"
	defer func() { Compilador = anterior }()

	if err := Montar("programa.s", "programa"); err == nil {
		t.Errorf("esperado erro com montador ausente")
	}
}

// executar monta o assembly nativo e devolve o código de saída do processo
func executar(t *testing.T, fonte string) int {
	t.Helper()
	if runtime.GOOS != "linux" || runtime.GOARCH != "amd64" {
		t.Skip("e2e nativo só em linux/amd64")
	}
	if _, err := exec.LookPath(Compilador); err != nil {
		t.Skipf("%s não disponível", Compilador)
	}

	tokens, err := lexer.Tokenizar(fonte)
	if err != nil {
		t.Fatalf("%q: %v", fonte, err)
	}
	programa, err := parser.Analisar(tokens)
	if err != nil {
		t.Fatalf("%q: %v", fonte, err)
	}
	backend, _ := NewAssemblyBackend("x86_64")
	var saida bytes.Buffer
	if err := backend.Compile(&saida, programa); err != nil {
		t.Fatalf("%q: %v", fonte, err)
	}

	dir := t.TempDir()
	arquivo := filepath.Join(dir, "programa.s")
	if err := os.WriteFile(arquivo, saida.Bytes(), 0644); err != nil {
		t.Fatalf("erro ao escrever assembly: %v", err)
	}
	executavel := filepath.Join(dir, "programa")
	if err := Montar(arquivo, executavel); err != nil {
		t.Skipf("toolchain incapaz de montar: %v", err)
	}

	err = exec.Command(executavel).Run()
	var saidaProcesso *exec.ExitError
	if errors.As(err, &saidaProcesso) {
		return saidaProcesso.ExitCode()
	}
	if err != nil {
		t.Fatalf("%q: erro ao executar: %v", fonte, err)
	}
	return 0
}

func TestExecucaoNativa(t *testing.T) {
	testes := []struct {
		fonte    string
		esperado int
	}{
		{"a=3;b=5;a+b;", 8},
		{"0;", 0},
		{"42;", 42},
		{"5+20-4;", 21},
		{" 12 + 34 - 5 ;", 41},
		{"5+6*7;", 47},
		{"5*(9-6);", 15},
		{"(3+5)/2;", 4},
		{"-10+20;", 10},
		{"-3*+5+20;", 5},
		{"0==1;", 0},
		{"42==42;", 1},
		{"0!=1;", 1},
		{"1<2;", 1},
		{"2<=1;", 0},
		{"2>1;", 1},
		{"1>=2;", 0},
		{"a=b=3;a+b;", 6},
		{"z=7;y=z*z;y-z;", 42},
		{"-7/2+10;", 7},
		{"a=1;(a=5)+a;", 10},
	}

	for _, tt := range testes {
		if obtido := executar(t, tt.fonte); obtido != tt.esperado {
			t.Errorf("%q: esperado %d, obtido %d", tt.fonte, tt.esperado, obtido)
		}
	}
}
