package llvm

import (
	"io"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/khevencolino/Faisca/internal/backends"
	"github.com/khevencolino/Faisca/internal/debug"
	"github.com/khevencolino/Faisca/internal/parser"
)

// tipoFrame é o bloco de 26 slots i64, um por letra
var tipoFrame = types.NewArray(parser.TotalVariaveis, types.I64)

type LLVMBackend struct {
	module   *ir.Module
	block    *ir.Block
	function *ir.Func
	frame    *ir.InstAlloca
}

func NewLLVMBackend() *LLVMBackend {
	return &LLVMBackend{}
}

func (l *LLVMBackend) GetName() string      { return "LLVM IR" }
func (l *LLVMBackend) GetExtension() string { return ".ll" }

// Compile escreve o módulo LLVM IR em w
func (l *LLVMBackend) Compile(w io.Writer, programa parser.Programa) error {
	module, err := l.Gerar(programa)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, module.String()); err != nil {
		return backends.NovoErroEscrita(err)
	}
	return nil
}

// Gerar constrói o módulo; main devolve o último valor truncado para i32
func (l *LLVMBackend) Gerar(programa parser.Programa) (*ir.Module, error) {
	debug.Printf("Compilando para LLVM IR...\n")

	l.module = ir.NewModule()
	l.function = l.module.NewFunc("main", types.I32)
	l.block = l.function.NewBlock("")

	// Variáveis não atribuídas começam em zero
	l.frame = l.block.NewAlloca(tipoFrame)
	l.block.NewStore(constant.NewZeroInitializer(tipoFrame), l.frame)

	var ultimo value.Value = constant.NewInt(types.I64, 0)
	for i, stmt := range programa {
		debug.Printf("  Processando statement %d...\n", i+1)
		valor, err := l.processarExpressao(stmt)
		if err != nil {
			return nil, err
		}
		ultimo = valor
	}

	l.block.NewRet(l.block.NewTrunc(ultimo, types.I32))
	return l.module, nil
}

func (l *LLVMBackend) processarExpressao(expr parser.Expressao) (value.Value, error) {
	resultado := expr.Aceitar(l)
	if err := backends.ComoErro(resultado); err != nil {
		return nil, err
	}
	return resultado.(value.Value), nil
}

// slot devolve o ponteiro para o i64 da variável dentro do frame
func (l *LLVMBackend) slot(variavel *parser.Variavel) value.Value {
	return l.block.NewGetElementPtr(tipoFrame, l.frame,
		constant.NewInt(types.I64, 0),
		constant.NewInt(types.I64, int64(variavel.Local.Indice())))
}

// Implementação da interface visitor
func (l *LLVMBackend) Constante(constante *parser.Constante) interface{} {
	return constant.NewInt(types.I64, constante.Valor)
}

func (l *LLVMBackend) Variavel(variavel *parser.Variavel) interface{} {
	return l.block.NewLoad(types.I64, l.slot(variavel))
}

func (l *LLVMBackend) Atribuicao(atribuicao *parser.Atribuicao) interface{} {
	alvo, err := backends.AlvoDaAtribuicao(atribuicao)
	if err != nil {
		return err
	}
	valor, err := l.processarExpressao(atribuicao.OperandoDireito)
	if err != nil {
		return err
	}
	l.block.NewStore(valor, l.slot(alvo))
	return valor
}

func (l *LLVMBackend) OperacaoBinaria(operacao *parser.OperacaoBinaria) interface{} {
	esquerda, err := l.processarExpressao(operacao.OperandoEsquerdo)
	if err != nil {
		return err
	}
	direita, err := l.processarExpressao(operacao.OperandoDireito)
	if err != nil {
		return err
	}

	switch operacao.Operador {
	case parser.ADICAO:
		return l.block.NewAdd(esquerda, direita)
	case parser.SUBTRACAO:
		return l.block.NewSub(esquerda, direita)
	case parser.MULTIPLICACAO:
		return l.block.NewMul(esquerda, direita)
	case parser.DIVISAO:
		return l.block.NewSDiv(esquerda, direita)

	case parser.IGUALDADE:
		return l.comparar(enum.IPredEQ, esquerda, direita)
	case parser.DIFERENCA:
		return l.comparar(enum.IPredNE, esquerda, direita)
	case parser.MENOR_QUE:
		return l.comparar(enum.IPredSLT, esquerda, direita)
	case parser.MENOR_IGUAL:
		return l.comparar(enum.IPredSLE, esquerda, direita)

	default:
		return backends.NovoErroNoNaoSuportado(operacao, "operador desconhecido")
	}
}

// comparar produz 0 ou 1 em i64
func (l *LLVMBackend) comparar(predicado enum.IPred, esquerda, direita value.Value) value.Value {
	cmp := l.block.NewICmp(predicado, esquerda, direita)
	return l.block.NewZExt(cmp, types.I64)
}
