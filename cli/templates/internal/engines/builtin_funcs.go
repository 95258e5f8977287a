package engines

import (
	"strings"
	"text/template"

	"github.com/iancoleman/strcase"
	"github.com/stampcli/stamp/cli/util"
	"golang.org/x/exp/slices"
)

// builtinFuncs are available in every template.
var builtinFuncs = template.FuncMap{
	"snake":          strcase.ToSnake,
	"screamingSnake": strcase.ToScreamingSnake,
	"kebab":          strcase.ToKebab,
	"camel":          strcase.ToCamel,
	"lowerCamel":     strcase.ToLowerCamel,
	"upper":          strings.ToUpper,
	"lower":          strings.ToLower,
	"has":            has,
	"join":           join,
	"cwdRelative":    util.RelativeToCurrentWorkingDir,
}

// has checks if a multi-select answer contains the choice id.
func has(list []string, item string) bool {
	return slices.Contains(list, item)
}

// join joins a multi-select answer with sep.
func join(list []string, sep string) string {
	return strings.Join(list, sep)
}
