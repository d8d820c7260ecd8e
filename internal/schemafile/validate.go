package schemafile

import (
	"fmt"

	"unionize/internal/diagnostic"
	"unionize/internal/suggest"
	"unionize/union"
)

// Diagnostic codes reported by Validate.
const (
	CodeFileIsNil          = "file_is_nil"
	CodeUnsupportedVersion = "unsupported_version"
	CodeNoUnions           = "no_unions"
	CodeMissingUnionName   = "missing_union_name"
	CodeDuplicateUnion     = "duplicate_union"
	CodeSameTagAndValue    = "same_tag_and_value"
	CodeEmptyUnion         = "empty_union"
	CodeMissingVariantName = "missing_variant_name"
	CodeReservedVariant    = "reserved_variant"
	CodeDuplicateVariant   = "duplicate_variant"
	CodeFieldsAndType      = "fields_and_type"
	CodeValueFieldRequired = "value_field_required"
	CodeUnknownKind        = "unknown_kind"
	CodeTagFieldShadowed   = "tag_field_shadowed"
	CodeValueFieldUnused   = "value_field_unused"
)

// Validate checks the declarations of f. It never fails; problems are
// reported as diagnostics.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(CodeFileIsNil, "schema file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError(CodeUnsupportedVersion, fmt.Sprintf("unsupported version %q", f.Version), "", "")
	}

	if len(f.Unions) == 0 {
		res.AddWarning(CodeNoUnions, "schema file declares no unions", "", "")
	}

	seen := map[string]struct{}{}

	for i := range f.Unions {
		d := &f.Unions[i]

		if d.Name == "" {
			res.AddError(CodeMissingUnionName, fmt.Sprintf("union #%d has no name", i+1), "", "")
		} else if _, dup := seen[d.Name]; dup {
			res.AddError(CodeDuplicateUnion, fmt.Sprintf("duplicate union %q", d.Name), d.Name, "")
		} else {
			seen[d.Name] = struct{}{}
		}

		validateDeclaration(res, d)
	}

	return res
}

func validateDeclaration(res *diagnostic.Diagnostics, d *Declaration) {
	tag := d.Tag
	if tag == "" {
		tag = union.DefaultTagField
	}

	if d.Value != "" && d.Value == tag {
		res.AddError(CodeSameTagAndValue, fmt.Sprintf("tag field and value field are both %q", tag), d.Name, "")
	}

	if len(d.Variants) == 0 {
		res.AddError(CodeEmptyUnion, "union declares no variants", d.Name, "")
		return
	}

	seen := map[string]struct{}{}
	values := 0

	for i := range d.Variants {
		v := &d.Variants[i]

		switch _, dup := seen[v.Name]; {
		case v.Name == "":
			res.AddError(CodeMissingVariantName, fmt.Sprintf("variant #%d has no name", i+1), d.Name, "")
		case v.Name == union.DefaultCase:
			res.AddError(CodeReservedVariant, fmt.Sprintf("%q is reserved for default cases", v.Name), d.Name, v.Name)
		case dup:
			res.AddError(CodeDuplicateVariant, fmt.Sprintf("duplicate variant %q", v.Name), d.Name, v.Name)
		default:
			seen[v.Name] = struct{}{}
		}

		if v.IsValue() {
			values++
			validateVariantValue(res, d, v)
		}

		for _, field := range v.FieldNames() {
			checkKind(res, d.Name, v.Name, fmt.Sprintf("field %q", field), v.Fields[field])

			if field == tag && d.Value == "" {
				res.AddWarning(CodeTagFieldShadowed,
					fmt.Sprintf("field %q shares the tag field name and is overwritten by the tag", field),
					d.Name, v.Name)
			}
		}
	}

	if d.Value != "" && values == 0 {
		res.AddInfo(CodeValueFieldUnused,
			fmt.Sprintf("every variant is record-shaped; records are nested under %q", d.Value), d.Name, "")
	}
}

func validateVariantValue(res *diagnostic.Diagnostics, d *Declaration, v *VariantDecl) {
	if len(v.Fields) > 0 {
		res.AddError(CodeFieldsAndType, "variant declares both fields and a type", d.Name, v.Name)
	}

	if d.Value == "" {
		res.AddError(CodeValueFieldRequired,
			fmt.Sprintf("value-shaped variant of type %q requires the union to set a value field", v.Type),
			d.Name, v.Name)
	}

	checkKind(res, d.Name, v.Name, "type", v.Type)
}

func checkKind(res *diagnostic.Diagnostics, unionName, variant, what, spelling string) {
	if _, ok := ParseKind(spelling); ok {
		return
	}

	res.AddError(CodeUnknownKind, fmt.Sprintf("%s has unknown kind %q", what, spelling),
		unionName, variant, suggest.Closest(spelling, KindNames(), 2)...)
}
