package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unionize/internal/schemafile"
	"unionize/union"
)

const schemaYAML = `
version: "1"
unions:
  - name: Shape
    tag: kind
    variants:
      circle: {fields: {radius: float}}
      rect: {fields: {w: float, h: float}}
      dot:
  - name: Result
    value: value
    variants:
      ok: {type: int}
      err: {type: string}
`

func writeSchema(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "unions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	color.NoColor = true

	var out bytes.Buffer

	log := logrus.New()
	log.SetOutput(io.Discard)

	err := newApp(&out, log).Run(append([]string{"unionize"}, args...))

	return out.String(), err
}

func TestCheck(t *testing.T) {
	path := writeSchema(t, schemaYAML)

	out, err := run(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 unions ok")
}

func TestCheckReportsErrors(t *testing.T) {
	path := writeSchema(t, `
unions:
  - name: Bad
    variants:
      default: {}
      circle: {fields: {r: flaot}}
`)

	out, err := run(t, "check", path)
	require.ErrorIs(t, err, errSchemaInvalid)
	assert.Contains(t, out, "error: "+path+": Bad.default: [reserved_variant]")
	assert.Contains(t, out, "[unknown_kind]")
	assert.Contains(t, out, "float")
	assert.NotContains(t, out, "unions ok")
}

func TestCheckSeveralFiles(t *testing.T) {
	good := writeSchema(t, schemaYAML)
	bad := writeSchema(t, `
unions:
  - name: Empty
    variants: []
`)

	out, err := run(t, "check", good, good)
	require.NoError(t, err)
	assert.Contains(t, out, "2 files, 4 unions ok")

	out, err = run(t, "check", good, bad)
	require.ErrorIs(t, err, errSchemaInvalid)
	assert.Contains(t, out, bad+": Empty: [empty_union]")
	assert.NotContains(t, out, good+":")
}

func TestFmt(t *testing.T) {
	path := writeSchema(t, schemaYAML)

	out, err := run(t, "fmt", path)
	require.NoError(t, err)
	assert.Contains(t, out, "name: circle")
	assert.Contains(t, out, "tag: tag", "defaults are written out")

	want, err := schemafile.LoadFile(path)
	require.NoError(t, err)

	printed, err := schemafile.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, want, printed)

	out, err = run(t, "fmt", "-w", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "name: rect")

	rewritten, err := schemafile.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, rewritten)

	_, err = run(t, "fmt")
	require.ErrorIs(t, err, errUsage)
}

func TestCheckUsage(t *testing.T) {
	_, err := run(t, "check")
	require.ErrorIs(t, err, errUsage)
}

func TestList(t *testing.T) {
	path := writeSchema(t, schemaYAML)

	out, err := run(t, "list", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Shape")
	assert.Contains(t, out, "(tag: kind)")
	assert.Contains(t, out, "(tag: tag, value: value)")
	assert.Regexp(t, `rect\s+record\s+h:float w:float`, out)
	assert.Regexp(t, `ok\s+value\s+int`, out)
}

func TestCreate(t *testing.T) {
	path := writeSchema(t, schemaYAML)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "record variant",
			args: []string{"create", "-f", path, "-u", "Shape", "circle", "radius=2"},
			want: `{"kind":"circle","radius":2}` + "\n",
		},
		{
			name: "record variant without fields",
			args: []string{"create", "-f", path, "-u", "Shape", "dot"},
			want: `{"kind":"dot"}` + "\n",
		},
		{
			name: "value variant",
			args: []string{"create", "-f", path, "-u", "Result", "ok", "3"},
			want: `{"tag":"ok","value":3}` + "\n",
		},
		{
			name: "yaml output",
			args: []string{"-o", "yaml", "create", "-f", path, "-u", "Shape", "dot"},
			want: "kind: dot\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCreateErrors(t *testing.T) {
	path := writeSchema(t, schemaYAML)

	_, err := run(t, "create", "-f", path, "circle")
	require.ErrorIs(t, err, errUsage, "two unions need --union")

	_, err = run(t, "create", "-u", "Shape", "circle")
	require.ErrorIs(t, err, errUsage, "--file is required")

	_, err = run(t, "create", "-f", path, "-u", "Shape", "circel")
	require.ErrorIs(t, err, union.ErrUnknownVariant)
	assert.Contains(t, err.Error(), "did you mean circle?")

	_, err = run(t, "-o", "toml", "create", "-f", path, "-u", "Shape", "dot")
	require.ErrorIs(t, err, errUsage)
}

func TestIs(t *testing.T) {
	path := writeSchema(t, schemaYAML)

	out, err := run(t, "is", "-f", path, "-u", "Shape", "circle", `{"kind":"circle","radius":1}`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, "is", "-f", path, "-u", "Shape", "rect", `{"kind":"circle","radius":1}`)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestCast(t *testing.T) {
	path := writeSchema(t, schemaYAML)

	out, err := run(t, "cast", "-f", path, "-u", "Result", "ok", `{"tag":"ok","value":3}`)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	_, err = run(t, "cast", "-f", path, "-u", "Shape", "rect", `{"kind":"circle","radius":1}`)
	require.ErrorIs(t, err, union.ErrCastMismatch)
	assert.EqualError(t, err, "Attempted to cast circle as rect")
}

func TestCastInstanceFromFile(t *testing.T) {
	path := writeSchema(t, schemaYAML)
	inst := filepath.Join(t.TempDir(), "inst.json")
	require.NoError(t, os.WriteFile(inst, []byte(`{"kind":"rect","w":1,"h":2}`), 0o600))

	out, err := run(t, "cast", "-f", path, "-u", "Shape", "rect", "@"+inst)
	require.NoError(t, err)
	assert.Equal(t, `{"h":2,"w":1}`+"\n", out)
}

func TestUpdate(t *testing.T) {
	path := writeSchema(t, schemaYAML)

	out, err := run(t, "update", "-f", path, "-u", "Shape", `{"kind":"rect","w":1,"h":2}`, "w=5")
	require.NoError(t, err)
	assert.Equal(t, `{"h":2,"kind":"rect","w":5}`+"\n", out)

	out, err = run(t, "update", "-f", path, "-u", "Result", `{"tag":"err","value":"boom"}`, "bang")
	require.NoError(t, err)
	assert.Equal(t, `{"tag":"err","value":"bang"}`+"\n", out)

	_, err = run(t, "update", "-f", path, "-u", "Shape", `{"kind":"hexagon"}`)
	require.Error(t, err)

	_, err = run(t, "update", "-f", path, "-u", "Shape", `[1, 2]`)
	require.Error(t, err)
}
