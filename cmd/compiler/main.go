package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/khevencolino/Faisca/internal/backends/assembly"
	"github.com/khevencolino/Faisca/internal/backends/llvm"
	"github.com/khevencolino/Faisca/internal/compiler"
	"github.com/khevencolino/Faisca/internal/config"
	"github.com/khevencolino/Faisca/internal/debug"
	"github.com/khevencolino/Faisca/internal/utils"
)

type argumentos struct {
	fonte      string
	opcoes     compiler.Opcoes
	debug      bool
	saida      string
	executavel string
}

func main() {
	args, showHelp, err := processarArgumentos(config.Carregar())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}

	if showHelp {
		mostrarAjuda()
		return
	}

	debug.Enabled = args.debug
	fonte := compiler.PrepararEntrada(args.fonte)

	compilador, err := compiler.NovoCompilador(args.opcoes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}

	// Gera tudo em memória; nada é escrito se alguma etapa falhar
	var gerado bytes.Buffer
	if err := compilador.Compilar(fonte, &gerado); err != nil {
		fmt.Fprintf(os.Stderr, "Erro de compilação: %s\n", utils.FormatarDiagnostico(fonte, err))
		os.Exit(1)
	}

	if err := escreverSaida(args, compilador, gerado.Bytes()); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}

func processarArgumentos(cfg config.Config) (argumentos, bool, error) {
	// Define flags; o ambiente fornece os padrões
	backend := flag.String("backend", cfg.Backend, "Backend a ser usado (assembly, llvm, bytecode, interpreter)")
	arch := flag.String("arch", cfg.Arch, "Arquitetura para assembly (x86_64, arm64)")
	debugFlag := flag.Bool("debug", cfg.Debug, "Ativar mensagens de debug")
	arvore := flag.Bool("arvore", cfg.MostrarArvore, "Mostra a árvore sintática")
	tokens := flag.Bool("tokens", cfg.MostrarTokens, "Mostra os tokens encontrados")
	arquivo := flag.String("arquivo", "", "Lê o programa de um arquivo")
	saida := flag.String("o", "", "Escreve a saída em um arquivo em vez de stdout")
	executavel := flag.String("executavel", "", "Gera um executável com o toolchain do sistema")
	help := flag.Bool("help", false, "Mostra ajuda")

	flag.Parse()

	if *help {
		return argumentos{}, true, nil
	}

	args := argumentos{
		opcoes: compiler.Opcoes{
			Backend:       *backend,
			Arch:          *arch,
			MostrarArvore: *arvore,
			MostrarTokens: *tokens,
		},
		debug:      *debugFlag,
		saida:      *saida,
		executavel: *executavel,
	}

	switch {
	case *arquivo != "":
		conteudo, err := utils.LerArquivo(*arquivo)
		if err != nil {
			return argumentos{}, false, err
		}
		args.fonte = conteudo
	case flag.NArg() == 1:
		args.fonte = flag.Arg(0)
	case flag.NArg() == 0:
		return argumentos{}, false, fmt.Errorf("programa requerido (argumento ou -arquivo)")
	default:
		return argumentos{}, false, fmt.Errorf("esperado um único argumento com o programa, recebidos %d", flag.NArg())
	}

	return args, false, nil
}

// escreverSaida manda o código para stdout ou arquivo e, se pedido, gera o executável
func escreverSaida(args argumentos, compilador *compiler.Compiler, gerado []byte) error {
	backend := compilador.Backend()

	arquivoSaida := args.saida
	if arquivoSaida == "" && args.executavel != "" {
		arquivoSaida = utils.TrocarExtensao(args.executavel, backend.GetExtension())
	}

	if arquivoSaida == "" {
		_, err := os.Stdout.Write(gerado)
		return err
	}

	if err := utils.EscreverArquivo(arquivoSaida, gerado); err != nil {
		return err
	}
	debug.Printf("Saída escrita em '%s'\n", arquivoSaida)

	if args.executavel == "" {
		return nil
	}

	switch backend.GetExtension() {
	case ".s":
		return assembly.Montar(arquivoSaida, args.executavel)
	case ".ll":
		return llvm.CompilarParaExecutavel(arquivoSaida, args.executavel)
	default:
		return fmt.Errorf("o backend %s não gera executável", backend.GetName())
	}
}

func mostrarAjuda() {
	fmt.Printf(`Compilador Faísca - expressões inteiras para assembly

USO:
    faisca [flags] '<programa>'
    faisca [flags] -arquivo=<arquivo>

FLAGS:
    -backend=<tipo>       Backend a ser usado (padrão: assembly, ou $%s)
    -arch=<arquitetura>   Arquitetura para assembly (padrão: x86_64, ou $%s)
    -debug                Ativar mensagens de debug ($%s)
    -arvore               Mostra a árvore sintática ($%s)
    -tokens               Mostra os tokens encontrados ($%s)
    -arquivo=<arquivo>    Lê o programa de um arquivo
    -o=<arquivo>          Escreve a saída em um arquivo em vez de stdout
    -executavel=<nome>    Gera um executável (assembly usa cc, llvm usa clang)
    -help                 Mostra esta ajuda

LINGUAGEM:
    Statements terminados em ';' com inteiros de 64 bits, + - * /,
    == != < <= > >=, parênteses e variáveis de uma letra (a-z).
    O valor do último statement é o código de saída do programa.

BACKENDS DISPONÍVEIS:

assembly, asm, native
    - Assembly de máquina de pilha (x86_64 intel, arm64)
    - Pode ser montado com cc

llvm, llvmir, ir
    - Compilação para LLVM IR
    - Pode ser compilado para executável com clang

bytecode, bc, vm
    - Listagem de bytecode executada na VM

interpreter, interp, ast
    - Interpretação direta da AST
    - Mostra árvore sintática

EXEMPLOS:
    faisca 'a=3;b=5;a+b;' > programa.s
    faisca -executavel=programa 'a=3;b=5;a+b'    # ./programa; echo $?  -> 8
    faisca -backend=llvm '1+2*3;'
    faisca -backend=interpreter -arvore 'a=b=2;a*b;'
`, config.VarBackend, config.VarArch, config.VarDebug, config.VarArvore, config.VarTokens)
}
