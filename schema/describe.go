package schema

// FieldMeta is the renderable description of one object field. It is derived
// on demand for help output; validation never consults it.
type FieldMeta struct {
	Name        string
	Type        string // "string", "number", "boolean" or "enum"
	Required    bool
	Default     any
	Description string
	EnumValues  []string
}

// Describe extracts per-field metadata from a schema, in declaration order.
// Preprocess layers above the object are seen through; a schema that is not
// an object at its core yields an empty list. Describe never fails and never
// mutates the schema.
func Describe(t Type) []FieldMeta {
	for {
		p, ok := t.(*preprocessType)
		if !ok {
			break
		}
		t = p.inner
	}
	obj, ok := t.(*ObjectType)
	if !ok {
		return nil
	}

	metas := make([]FieldMeta, 0, len(obj.fields))
	for _, f := range obj.fields {
		meta := FieldMeta{
			Name:        f.Name,
			Type:        "string",
			Required:    true,
			Description: f.Desc,
		}

		node := f.Type
	unwrap:
		for {
			switch n := node.(type) {
			case *optionalType:
				meta.Required = false
				node = n.inner
			case *defaultType:
				meta.Required = false
				meta.Default = n.produce()
				node = n.inner
			default:
				break unwrap
			}
		}

		switch n := node.(type) {
		case stringType:
			meta.Type = "string"
		case *numberType:
			meta.Type = "number"
		case boolType:
			meta.Type = "boolean"
		case *enumType:
			meta.Type = "enum"
			meta.EnumValues = n.values
		default:
			// Preprocessed and otherwise unrecognized nodes render as plain
			// strings; their real shape only matters at validation time.
			meta.Type = "string"
		}
		metas = append(metas, meta)
	}
	return metas
}
