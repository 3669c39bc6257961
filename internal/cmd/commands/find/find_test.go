package find

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/restkit/internal/cmd/base"
)

func newCommand(t *testing.T, serverURL string) (*Command, *cli.MockUi) {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/restkit.hcl", []byte(`
client "main" {
  url = "`+serverURL+`"
}
`), 0o644))

	ui := cli.NewMockUi()
	return &Command{Command: &base.Command{UI: ui, Log: hclog.NewNullLogger(), Fs: fs}}, ui
}

func TestCommand_Run_ByID(t *testing.T) {
	var body string
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.Write([]byte(`{"data":[{"id":42,"name":"Lamp"}]}`))
	}))
	defer mockServer.Close()

	c, ui := newCommand(t, mockServer.URL)

	code := c.Run([]string{"-config", "/restkit.hcl", "-id", "42", "products"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	assert.JSONEq(t, `{"search":{"filters":[{"field":"id","value":42}]}}`, body)
	assert.JSONEq(t, `{"id":42,"name":"Lamp"}`, ui.OutputWriter.String())
}

func TestCommand_Run_NoMatch(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer mockServer.Close()

	c, ui := newCommand(t, mockServer.URL)

	code := c.Run([]string{"-config", "/restkit.hcl", "-query", `{"filters":[{"field":"name","value":"none"}]}`, "products"})
	assert.Equal(t, 2, code)
	assert.Contains(t, ui.ErrorWriter.String(), "no matching record")
	assert.Empty(t, ui.OutputWriter.String())
}
