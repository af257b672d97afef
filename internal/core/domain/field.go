package domain

// FieldType is the declared type of a record field.
type FieldType string

// Supported field types.
const (
	FieldTypeString FieldType = "string"
	FieldTypeInt    FieldType = "int"
	FieldTypeFloat  FieldType = "float"
	FieldTypeBool   FieldType = "bool"
	FieldTypeList   FieldType = "list"
	FieldTypeDict   FieldType = "dict"
)

// IsValid returns true if the field type is recognised.
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeString, FieldTypeInt, FieldTypeFloat,
		FieldTypeBool, FieldTypeList, FieldTypeDict:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t FieldType) String() string {
	return string(t)
}

// FieldSchema describes one declared field of the record collection.
type FieldSchema struct {
	// Name is the field name.
	Name string

	// Type is the declared value type.
	Type FieldType
}

// InferFieldType returns the field type for a decoded JSON value.
// The second result is false for null, which carries no type.
func InferFieldType(value any) (FieldType, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return FieldTypeString, true
	case bool:
		return FieldTypeBool, true
	case int, int32, int64:
		return FieldTypeInt, true
	case float32:
		return FieldTypeFloat, true
	case float64:
		if v == float64(int64(v)) {
			return FieldTypeInt, true
		}
		return FieldTypeFloat, true
	case []any:
		return FieldTypeList, true
	case map[string]any:
		return FieldTypeDict, true
	default:
		return FieldTypeString, true
	}
}

// StringFieldNames returns the names of string-typed fields in schema order.
func StringFieldNames(schema []FieldSchema) []string {
	names := make([]string, 0, len(schema))
	for _, f := range schema {
		if f.Type == FieldTypeString {
			names = append(names, f.Name)
		}
	}
	return names
}
