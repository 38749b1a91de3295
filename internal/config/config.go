package config

import (
	"strings"

	"github.com/xyproto/env/v2"
)

// Variáveis de ambiente lidas pelo compilador
const (
	VarBackend = "FAISCA_BACKEND"
	VarArch    = "FAISCA_ARCH"
	VarDebug   = "FAISCA_DEBUG"
	VarArvore  = "FAISCA_ARVORE"
	VarTokens  = "FAISCA_TOKENS"
)

// Config guarda os padrões que as flags da linha de comando podem sobrescrever
type Config struct {
	Backend       string
	Arch          string
	Debug         bool
	MostrarArvore bool
	MostrarTokens bool
}

// Carregar lê a configuração do ambiente
func Carregar() Config {
	return Config{
		Backend:       strings.ToLower(env.Str(VarBackend, "assembly")),
		Arch:          strings.ToLower(env.Str(VarArch, "x86_64")),
		Debug:         env.Bool(VarDebug),
		MostrarArvore: env.Bool(VarArvore),
		MostrarTokens: env.Bool(VarTokens),
	}
}
