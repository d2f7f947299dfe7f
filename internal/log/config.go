package log

import (
	"fmt"
	"os"
	"strings"

	"github.com/iancoleman/strcase"
	"go.uber.org/zap/zapcore"
)

const (
	envLevel  = "LOG_LEVEL"
	envFormat = "LOG_FORMAT"
)

var (
	envFunc = env
)

func parseLevel(s string) (zapcore.Level, bool) {
	var lvl zapcore.Level
	err := lvl.Set(strings.ToLower(s))
	if err != nil {
		return zapcore.InfoLevel, false
	}
	return lvl, true
}

func env(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

func parseLevelFromEnv(key string) (zapcore.Level, bool) {
	v, ok := envFunc(key)
	if !ok {
		return zapcore.InfoLevel, false
	}
	return parseLevel(v)
}

// moduleKeys lists the env keys consulted for a module path, most specific first:
// LOG_LEVEL__SESSION__TOKEN_CLIENT, LOG_LEVEL__SESSION, LOG_LEVEL.
func moduleKeys(names []string) []string {
	skNames := make([]string, len(names))
	for i, n := range names {
		skNames[i] = strcase.ToScreamingSnake(n)
	}

	keys := make([]string, 0, len(names)+1)
	for i := len(skNames); i > 0; i-- {
		keys = append(keys, fmt.Sprintf("%s__%s", envLevel, strings.Join(skNames[:i], "__")))
	}
	return append(keys, envLevel)
}

func moduleLevel(names []string) zapcore.Level {
	for _, k := range moduleKeys(names) {
		if lv, ok := parseLevelFromEnv(k); ok {
			return lv
		}
	}
	return zapcore.InfoLevel
}

// jsonFormat reports whether LOG_FORMAT asks for structured JSON output.
func jsonFormat() bool {
	v, ok := envFunc(envFormat)
	return ok && strings.EqualFold(v, "json")
}
