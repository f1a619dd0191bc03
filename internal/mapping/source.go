package mapping

import (
	"github.com/tidwall/gjson"
)

// Selection modes of the parameter section.
const (
	ModeSingle   = "single"
	ModeMultiple = "multiple"
)

// Source is a worksheet whose parameter section is being imported.
type Source struct {
	WorksheetID string
	Data        []byte
}

// selection is one category/value pair read from the source, in order.
type selection struct {
	Category string
	Value    string
	// HasValue is false when the category was selected without a value.
	HasValue bool
}

// readSelections extracts selections from raw worksheet JSON. Shapes it
// does not understand yield no selections and a reason code.
func readSelections(data []byte) ([]selection, string) {
	if len(data) == 0 || !gjson.ValidBytes(data) {
		return nil, "invalid_source"
	}

	param := gjson.GetBytes(data, "parameter")
	if !param.IsObject() {
		return nil, "missing_parameter"
	}

	switch mode := param.Get("mode"); mode.String() {
	case ModeSingle:
		return readSingle(param), ""
	case ModeMultiple:
		return readMultiple(param), ""
	default:
		return nil, "unknown_mode"
	}
}

func readSingle(param gjson.Result) []selection {
	typ := param.Get("type")
	if typ.Type != gjson.String || typ.Str == "" {
		return nil
	}

	value := param.Get("specificValue")

	return []selection{{
		Category: typ.Str,
		Value:    value.Str,
		HasValue: value.Type == gjson.String && value.Str != "",
	}}
}

func readMultiple(param gjson.Result) []selection {
	types := param.Get("types")
	if !types.IsArray() {
		return nil
	}

	values := param.Get("specificValues").Map()

	var out []selection

	types.ForEach(func(_, t gjson.Result) bool {
		if t.Type != gjson.String || t.Str == "" {
			return true
		}

		v, ok := values[t.Str]

		out = append(out, selection{
			Category: t.Str,
			Value:    v.Str,
			HasValue: ok && v.Type == gjson.String && v.Str != "",
		})

		return true
	})

	return out
}
