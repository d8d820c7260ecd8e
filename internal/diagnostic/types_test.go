package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Severities(t *testing.T) {
	var d Diagnostics
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Err())

	d.AddInfo("info_code", "just so you know", "Shape", "")
	d.AddWarning("warn_code", "careful", "Shape", "circle")
	assert.False(t, d.HasErrors())

	d.AddError("bad_kind", `unknown kind "strng"`, "Shape", "circle", "string")
	require.True(t, d.HasErrors())

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)

	assert.EqualError(t, d.Err(), `Shape.circle: [bad_kind] unknown kind "strng" (did you mean string?)`)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddError("e1", "first", "", "")
	b.AddError("e2", "second", "U", "")
	b.AddWarning("w1", "warn", "", "v")

	a.Merge(b)
	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
	assert.EqualError(t, a.Err(), "[e1] first; U: [e2] second")
}

func TestDiagnostics_SetSource(t *testing.T) {
	var a, b Diagnostics
	a.AddError("e1", "first", "U", "")
	a.SetSource("a.yaml")

	b.AddWarning("w1", "warn", "V", "v")
	b.AddInfo("i1", "note", "", "")
	b.SetSource("b.yaml")

	a.Merge(b)
	a.SetSource("ignored.yaml")

	all := a.All()
	require.Len(t, all, 3)
	assert.Equal(t, "a.yaml: U: [e1] first", all[0].String())
	assert.Equal(t, "b.yaml: V.v: [w1] warn", all[1].String())
	assert.Equal(t, "b.yaml: [i1] note", all[2].String())
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		diag Diagnostic
		want string
	}{
		{Diagnostic{Message: "plain"}, "plain"},
		{Diagnostic{Code: "c", Message: "m"}, "[c] m"},
		{Diagnostic{Code: "c", Message: "m", Union: "U"}, "U: [c] m"},
		{Diagnostic{Code: "c", Message: "m", Variant: "v"}, "v: [c] m"},
		{Diagnostic{Code: "c", Message: "m", Union: "U", Variant: "v", Suggestions: []string{"a", "b"}}, "U.v: [c] m (did you mean a or b?)"},
		{Diagnostic{Code: "c", Message: "m", Union: "U", Source: "s.yaml"}, "s.yaml: U: [c] m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.diag.String())
	}
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
