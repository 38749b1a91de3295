package parser

import (
	"strconv"

	"github.com/khevencolino/Faisca/internal/lexer"
)

// Precedencia define a precedência dos operadores, da menor para a maior
type Precedencia int

const (
	PRECEDENCIA_NENHUMA       Precedencia = iota
	PRECEDENCIA_ATRIBUICAO                // = (associativo à direita)
	PRECEDENCIA_IGUALDADE                 // == !=
	PRECEDENCIA_RELACIONAL                // < <= > >=
	PRECEDENCIA_SOMA                      // + -
	PRECEDENCIA_MULTIPLICACAO             // * /
	PRECEDENCIA_UNARIA                    // + - prefixos
)

// Parser representa o analisador sintático
type Parser struct {
	tokens       []lexer.Token
	posicaoAtual int
}

// NovoParser cria um novo analisador sintático
func NovoParser(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens:       tokens,
		posicaoAtual: 0,
	}
}

// Analisar é um atalho para NovoParser(tokens).AnalisarPrograma()
func Analisar(tokens []lexer.Token) (Programa, error) {
	return NovoParser(tokens).AnalisarPrograma()
}

// obterPrecedencia retorna a precedência de um operador binário
func (p *Parser) obterPrecedencia(tokenType lexer.TokenType) Precedencia {
	switch tokenType {
	case lexer.ASSIGN:
		return PRECEDENCIA_ATRIBUICAO
	case lexer.EQUAL, lexer.NOT_EQUAL:
		return PRECEDENCIA_IGUALDADE
	case lexer.LESS, lexer.LESS_EQUAL, lexer.GREATER, lexer.GREATER_EQUAL:
		return PRECEDENCIA_RELACIONAL
	case lexer.PLUS, lexer.MINUS:
		return PRECEDENCIA_SOMA
	case lexer.MULTIPLY, lexer.DIVIDE:
		return PRECEDENCIA_MULTIPLICACAO
	default:
		return PRECEDENCIA_NENHUMA
	}
}

// AnalisarPrograma analisa statements até o EOF; programa vazio é válido
func (p *Parser) AnalisarPrograma() (Programa, error) {
	var statements Programa

	for !p.chegouAoFim() {
		statement, err := p.analisarStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, statement)
	}

	return statements, nil
}

// analisarStatement: statement := expression ";"
func (p *Parser) analisarStatement() (Expressao, error) {
	expressao, err := p.analisarExpressao()
	if err != nil {
		return nil, err
	}

	if err := p.verificarProximoToken(lexer.SEMICOLON, "';'"); err != nil {
		return nil, err
	}

	return expressao, nil
}

// analisarExpressao: expression := assignment
func (p *Parser) analisarExpressao() (Expressao, error) {
	return p.analisarAtribuicao()
}

// analisarAtribuicao: assignment := equality ("=" assignment)*
func (p *Parser) analisarAtribuicao() (Expressao, error) {
	esquerda, err := p.analisarBinaria(PRECEDENCIA_IGUALDADE)
	if err != nil {
		return nil, err
	}

	for p.tokenAtual().Type == lexer.ASSIGN {
		operadorToken := p.proximoToken()

		// Recursão à direita: a=b=c vira a=(b=c)
		direita, err := p.analisarAtribuicao()
		if err != nil {
			return nil, err
		}

		esquerda = &Atribuicao{
			OperandoEsquerdo: esquerda,
			OperandoDireito:  direita,
			Token:            operadorToken,
		}
	}

	return esquerda, nil
}

// analisarBinaria trata um nível associativo à esquerda e desce para o próximo
func (p *Parser) analisarBinaria(nivel Precedencia) (Expressao, error) {
	if nivel >= PRECEDENCIA_UNARIA {
		return p.analisarUnario()
	}

	esquerda, err := p.analisarBinaria(nivel + 1)
	if err != nil {
		return nil, err
	}

	for p.obterPrecedencia(p.tokenAtual().Type) == nivel {
		operadorToken := p.proximoToken()

		direita, err := p.analisarBinaria(nivel + 1)
		if err != nil {
			return nil, err
		}

		esquerda = novaOperacao(operadorToken, esquerda, direita)
	}

	return esquerda, nil
}

// novaOperacao constrói o nó binário; '>' e '>=' viram '<' e '<=' com operandos trocados
func novaOperacao(token lexer.Token, esquerda, direita Expressao) *OperacaoBinaria {
	operacao := &OperacaoBinaria{
		OperandoEsquerdo: esquerda,
		OperandoDireito:  direita,
		Token:            token,
	}

	switch token.Type {
	case lexer.PLUS:
		operacao.Operador = ADICAO
	case lexer.MINUS:
		operacao.Operador = SUBTRACAO
	case lexer.MULTIPLY:
		operacao.Operador = MULTIPLICACAO
	case lexer.DIVIDE:
		operacao.Operador = DIVISAO
	case lexer.EQUAL:
		operacao.Operador = IGUALDADE
	case lexer.NOT_EQUAL:
		operacao.Operador = DIFERENCA
	case lexer.LESS:
		operacao.Operador = MENOR_QUE
	case lexer.LESS_EQUAL:
		operacao.Operador = MENOR_IGUAL
	case lexer.GREATER:
		operacao.Operador = MENOR_QUE
		operacao.OperandoEsquerdo, operacao.OperandoDireito = direita, esquerda
	case lexer.GREATER_EQUAL:
		operacao.Operador = MENOR_IGUAL
		operacao.OperandoEsquerdo, operacao.OperandoDireito = direita, esquerda
	}

	return operacao
}

// analisarUnario: unary := ("+" | "-")? primary
func (p *Parser) analisarUnario() (Expressao, error) {
	switch p.tokenAtual().Type {
	case lexer.PLUS:
		p.proximoToken()
		return p.analisarPrimario()

	case lexer.MINUS:
		tokenMenos := p.proximoToken()
		operando, err := p.analisarPrimario()
		if err != nil {
			return nil, err
		}
		// -x vira (0 - x)
		return &OperacaoBinaria{
			OperandoEsquerdo: &Constante{Valor: 0, Token: tokenMenos},
			Operador:         SUBTRACAO,
			OperandoDireito:  operando,
			Token:            tokenMenos,
		}, nil
	}

	return p.analisarPrimario()
}

// analisarPrimario: primary := NUMBER | IDENT | "(" expression ")"
func (p *Parser) analisarPrimario() (Expressao, error) {
	token := p.tokenAtual()

	switch token.Type {
	case lexer.NUMBER:
		p.proximoToken()
		valor, err := strconv.ParseUint(token.Value, 10, 64)
		if err != nil {
			return nil, &ErroSintatico{Tipo: NUMERO_INVALIDO, Token: token, Esperado: "número de 64 bits"}
		}
		// O lexer já recusa literais acima de 64 bits; o erro acima só
		// aparece com fluxos de tokens montados fora dele.
		// Acima de 2^63-1 o valor dá a volta, como no registrador
		return &Constante{Valor: int64(valor), Token: token}, nil

	case lexer.IDENTIFIER:
		p.proximoToken()
		if len(token.Value) != 1 {
			return nil, &ErroSintatico{Tipo: TOKEN_INESPERADO, Token: token, Esperado: "variável de uma letra"}
		}
		local, err := NovaVariavelLocal(token.Value[0])
		if err != nil {
			return nil, &ErroSintatico{Tipo: TOKEN_INESPERADO, Token: token, Esperado: "variável de uma letra"}
		}
		return &Variavel{Nome: token.Value, Local: local, Token: token}, nil

	case lexer.LPAREN:
		p.proximoToken()
		expressao, err := p.analisarExpressao()
		if err != nil {
			return nil, err
		}

		// Verifica parêntese fechando
		if err := p.verificarProximoToken(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}

		return expressao, nil

	default:
		return nil, erroNoToken(token, "número, variável ou '('")
	}
}

// proximoToken retorna o token atual e avança a posição
func (p *Parser) proximoToken() lexer.Token {
	token := p.tokenAtual()
	if p.posicaoAtual < len(p.tokens) {
		p.posicaoAtual++
	}
	return token
}

// verificarProximoToken consome o token se for do tipo esperado
func (p *Parser) verificarProximoToken(tipoEsperado lexer.TokenType, descricao string) error {
	token := p.tokenAtual()
	if token.Type != tipoEsperado {
		return erroNoToken(token, descricao)
	}
	p.proximoToken()
	return nil
}

// tokenAtual retorna o token atual sem avançar; além do fim, um EOF sintético
func (p *Parser) tokenAtual() lexer.Token {
	if p.posicaoAtual >= len(p.tokens) {
		fim := 0
		if len(p.tokens) > 0 {
			fim = p.tokens[len(p.tokens)-1].Span.Fim
		}
		return lexer.NovoToken(lexer.EOF, "", lexer.NovoSpan(fim, fim))
	}
	return p.tokens[p.posicaoAtual]
}

// chegouAoFim verifica se chegou ao fim dos tokens
func (p *Parser) chegouAoFim() bool {
	return p.tokenAtual().Type == lexer.EOF
}
