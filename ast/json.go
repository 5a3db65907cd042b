package ast

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ToJSON renders n as a kind-discriminated JSON document. Every object
// carries a "kind" member first, then the node's own scalar members, then
// its child slots in child-field order. Absent and empty slots are omitted,
// so encoding is canonical: equal trees encode to equal bytes.
func ToJSON(n Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeNode(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToJSONIndent is ToJSON with two-space indentation.
func ToJSONIndent(n Node) ([]byte, error) {
	d, err := ToJSON(n)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, d, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FromJSON decodes a kind-discriminated JSON document produced by ToJSON
// (or an equivalent external producer) back into a node tree.
func FromJSON(data []byte) (Node, error) {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("ast: decode: %w", err)
	}
	return nodeFromRaw(raw)
}

func encodeNode(buf *bytes.Buffer, n Node) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}
	k := n.Kind()
	buf.WriteString(`{"kind":`)
	writeJSONString(buf, string(k))
	if err := encodePayload(buf, n); err != nil {
		return err
	}
	for _, field := range ChildFields(k) {
		switch c := Child(n, field).(type) {
		case nil:
		case Node:
			buf.WriteByte(',')
			writeJSONString(buf, field)
			buf.WriteByte(':')
			if err := encodeNode(buf, c); err != nil {
				return err
			}
		case []Node:
			buf.WriteByte(',')
			writeJSONString(buf, field)
			buf.WriteString(":[")
			for i, e := range c {
				if i > 0 {
					buf.WriteByte(',')
				}
				if err := encodeNode(buf, e); err != nil {
					return err
				}
			}
			buf.WriteByte(']')
		}
	}
	buf.WriteByte('}')
	return nil
}

// encodePayload writes the non-child scalar members a kind carries.
func encodePayload(buf *bytes.Buffer, n Node) error {
	switch n := n.(type) {
	case *Name:
		buf.WriteString(`,"value":`)
		writeJSONString(buf, n.Value)
	case *OperationDefinition:
		buf.WriteString(`,"operation":`)
		writeJSONString(buf, string(n.Operation))
	case *IntValue:
		buf.WriteString(`,"value":`)
		writeJSONString(buf, n.Value)
	case *FloatValue:
		buf.WriteString(`,"value":`)
		writeJSONString(buf, n.Value)
	case *StringValue:
		buf.WriteString(`,"value":`)
		writeJSONString(buf, n.Value)
		if n.Block {
			buf.WriteString(`,"block":true`)
		}
	case *BooleanValue:
		if n.Value {
			buf.WriteString(`,"value":true`)
		} else {
			buf.WriteString(`,"value":false`)
		}
	case *EnumValue:
		buf.WriteString(`,"value":`)
		writeJSONString(buf, n.Value)
	case *OperationTypeDefinition:
		buf.WriteString(`,"operation":`)
		writeJSONString(buf, string(n.Operation))
	case *DirectiveDefinition:
		if n.Repeatable {
			buf.WriteString(`,"repeatable":true`)
		}
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	d, _ := json.Marshal(s)
	buf.Write(d)
}

func nodeFromRaw(raw any) (Node, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("ast: decode: expected object, got %T", raw)
	}
	ks, ok := m["kind"].(string)
	if !ok {
		return nil, fmt.Errorf("ast: decode: object has no kind")
	}
	k := Kind(ks)
	if !k.IsValid() {
		return nil, fmt.Errorf("ast: decode: unrecognized kind %q", ks)
	}
	n := newNode(k)
	if err := decodePayload(n, m); err != nil {
		return nil, err
	}
	for _, field := range ChildFields(k) {
		rv, ok := m[field]
		if !ok || rv == nil {
			continue
		}
		var v any
		if rl, ok := rv.([]any); ok {
			list := make([]Node, len(rl))
			for i, re := range rl {
				e, err := nodeFromRaw(re)
				if err != nil {
					return nil, fmt.Errorf("ast: decode: %s.%s[%d]: %w", k, field, i, err)
				}
				list[i] = e
			}
			v = list
		} else {
			e, err := nodeFromRaw(rv)
			if err != nil {
				return nil, fmt.Errorf("ast: decode: %s.%s: %w", k, field, err)
			}
			v = e
		}
		if err := SetChild(n, field, v); err != nil {
			return nil, fmt.Errorf("ast: decode: %w", err)
		}
	}
	return n, nil
}

func decodePayload(n Node, m map[string]any) error {
	strField := func(key string, dst *string, required bool) error {
		rv, ok := m[key]
		if !ok {
			if required {
				return fmt.Errorf("ast: decode: %s has no %q", n.Kind(), key)
			}
			return nil
		}
		s, ok := rv.(string)
		if !ok {
			return fmt.Errorf("ast: decode: %s.%s: expected string, got %T", n.Kind(), key, rv)
		}
		*dst = s
		return nil
	}
	boolField := func(key string, dst *bool, required bool) error {
		rv, ok := m[key]
		if !ok {
			if required {
				return fmt.Errorf("ast: decode: %s has no %q", n.Kind(), key)
			}
			return nil
		}
		b, ok := rv.(bool)
		if !ok {
			return fmt.Errorf("ast: decode: %s.%s: expected bool, got %T", n.Kind(), key, rv)
		}
		*dst = b
		return nil
	}
	switch n := n.(type) {
	case *Name:
		return strField("value", &n.Value, true)
	case *OperationDefinition:
		return strField("operation", (*string)(&n.Operation), true)
	case *IntValue:
		return strField("value", &n.Value, true)
	case *FloatValue:
		return strField("value", &n.Value, true)
	case *StringValue:
		if err := strField("value", &n.Value, true); err != nil {
			return err
		}
		return boolField("block", &n.Block, false)
	case *BooleanValue:
		return boolField("value", &n.Value, true)
	case *EnumValue:
		return strField("value", &n.Value, true)
	case *OperationTypeDefinition:
		return strField("operation", (*string)(&n.Operation), true)
	case *DirectiveDefinition:
		return boolField("repeatable", &n.Repeatable, false)
	}
	return nil
}

func newNode(k Kind) Node {
	switch k {
	case KindName:
		return &Name{}
	case KindDocument:
		return &Document{}
	case KindOperationDefinition:
		return &OperationDefinition{}
	case KindVariableDefinition:
		return &VariableDefinition{}
	case KindVariable:
		return &Variable{}
	case KindSelectionSet:
		return &SelectionSet{}
	case KindField:
		return &Field{}
	case KindArgument:
		return &Argument{}
	case KindFragmentSpread:
		return &FragmentSpread{}
	case KindInlineFragment:
		return &InlineFragment{}
	case KindFragmentDefinition:
		return &FragmentDefinition{}
	case KindIntValue:
		return &IntValue{}
	case KindFloatValue:
		return &FloatValue{}
	case KindStringValue:
		return &StringValue{}
	case KindBooleanValue:
		return &BooleanValue{}
	case KindNullValue:
		return &NullValue{}
	case KindEnumValue:
		return &EnumValue{}
	case KindListValue:
		return &ListValue{}
	case KindObjectValue:
		return &ObjectValue{}
	case KindObjectField:
		return &ObjectField{}
	case KindDirective:
		return &Directive{}
	case KindNamedType:
		return &NamedType{}
	case KindListType:
		return &ListType{}
	case KindNonNullType:
		return &NonNullType{}
	case KindSchemaDefinition:
		return &SchemaDefinition{}
	case KindOperationTypeDefinition:
		return &OperationTypeDefinition{}
	case KindScalarTypeDefinition:
		return &ScalarTypeDefinition{}
	case KindObjectTypeDefinition:
		return &ObjectTypeDefinition{}
	case KindFieldDefinition:
		return &FieldDefinition{}
	case KindInputValueDefinition:
		return &InputValueDefinition{}
	case KindInterfaceTypeDefinition:
		return &InterfaceTypeDefinition{}
	case KindUnionTypeDefinition:
		return &UnionTypeDefinition{}
	case KindEnumTypeDefinition:
		return &EnumTypeDefinition{}
	case KindEnumValueDefinition:
		return &EnumValueDefinition{}
	case KindInputObjectTypeDefinition:
		return &InputObjectTypeDefinition{}
	case KindDirectiveDefinition:
		return &DirectiveDefinition{}
	case KindSchemaExtension:
		return &SchemaExtension{}
	case KindScalarTypeExtension:
		return &ScalarTypeExtension{}
	case KindObjectTypeExtension:
		return &ObjectTypeExtension{}
	case KindInterfaceTypeExtension:
		return &InterfaceTypeExtension{}
	case KindUnionTypeExtension:
		return &UnionTypeExtension{}
	case KindEnumTypeExtension:
		return &EnumTypeExtension{}
	case KindInputObjectTypeExtension:
		return &InputObjectTypeExtension{}
	}
	panic(fmt.Sprintf("ast: newNode of unknown kind %q", k))
}
