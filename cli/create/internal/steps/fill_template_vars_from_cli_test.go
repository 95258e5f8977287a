package steps

import (
	"testing"

	create_ctx "github.com/stampcli/stamp/cli/create/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCliVarsParsing(t *testing.T) {
	var createCtx create_ctx.CreateCtx
	templateCtx := NewTemplateContext()
	templateCtx.Vars["var1"] = "from file"

	createCtx.VarsFromCli = append(createCtx.VarsFromCli, "var1=value1",
		"var2=value2", "var3=value=value", "features=")
	fillTemplateVarsFromCli := FillTemplateVarsFromCli{}
	require.NoError(t, fillTemplateVarsFromCli.Run(&createCtx, &templateCtx))

	assert.Equal(t, map[string]string{
		"var1":     "value1",
		"var2":     "value2",
		"var3":     "value=value",
		"features": "",
	}, templateCtx.Vars)
}

func TestCliVarsParseErrorHandling(t *testing.T) {
	var createCtx create_ctx.CreateCtx
	templateCtx := NewTemplateContext()

	fillTemplateVarsFromCli := FillTemplateVarsFromCli{}
	for _, definition := range []string{"=value", "=", "missing_equal_sign", " =x"} {
		createCtx.VarsFromCli = []string{definition}
		err := fillTemplateVarsFromCli.Run(&createCtx, &templateCtx)
		assert.Error(t, err, definition)
	}
}
