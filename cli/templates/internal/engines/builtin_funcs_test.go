package engines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseFuncs(t *testing.T) {
	data := map[string]any{"name": "my crate name"}
	tests := []struct {
		templateText string
		expected     string
	}{
		{"{{ snake .name }}", "my_crate_name"},
		{"{{ screamingSnake .name }}", "MY_CRATE_NAME"},
		{"{{ kebab .name }}", "my-crate-name"},
		{"{{ camel .name }}", "MyCrateName"},
		{"{{ lowerCamel .name }}", "myCrateName"},
		{"{{ upper .name }}", "MY CRATE NAME"},
		{"{{ .name | lower }}", "my crate name"},
	}

	engine := GoTextEngine{}
	for _, tc := range tests {
		t.Run(tc.templateText, func(t *testing.T) {
			actual, err := engine.RenderText(tc.templateText, data)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestListFuncs(t *testing.T) {
	data := map[string]any{"features": []string{"ws", "tls"}}
	engine := GoTextEngine{}

	actual, err := engine.RenderText(`{{ if has .features "ws" }}ws on{{ end }}`+
		`{{ if has .features "grpc" }} grpc on{{ end }}`, data)
	require.NoError(t, err)
	assert.Equal(t, "ws on", actual)

	actual, err = engine.RenderText(`[{{ join .features ", " }}]`, data)
	require.NoError(t, err)
	assert.Equal(t, "[ws, tls]", actual)
}
