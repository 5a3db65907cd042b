package ast

import (
	"fmt"
	"maps"
	"slices"
)

// Kind discriminates the node variants of the query-language AST.
type Kind string

const (
	KindName Kind = "Name"

	// Document kinds.
	KindDocument            Kind = "Document"
	KindOperationDefinition Kind = "OperationDefinition"
	KindVariableDefinition  Kind = "VariableDefinition"
	KindVariable            Kind = "Variable"
	KindSelectionSet        Kind = "SelectionSet"
	KindField               Kind = "Field"
	KindArgument            Kind = "Argument"

	// Fragment kinds.
	KindFragmentSpread     Kind = "FragmentSpread"
	KindInlineFragment     Kind = "InlineFragment"
	KindFragmentDefinition Kind = "FragmentDefinition"

	// Value kinds.
	KindIntValue     Kind = "IntValue"
	KindFloatValue   Kind = "FloatValue"
	KindStringValue  Kind = "StringValue"
	KindBooleanValue Kind = "BooleanValue"
	KindNullValue    Kind = "NullValue"
	KindEnumValue    Kind = "EnumValue"
	KindListValue    Kind = "ListValue"
	KindObjectValue  Kind = "ObjectValue"
	KindObjectField  Kind = "ObjectField"

	// Directive kinds.
	KindDirective Kind = "Directive"

	// Type reference kinds.
	KindNamedType   Kind = "NamedType"
	KindListType    Kind = "ListType"
	KindNonNullType Kind = "NonNullType"

	// Type system definition kinds.
	KindSchemaDefinition          Kind = "SchemaDefinition"
	KindOperationTypeDefinition   Kind = "OperationTypeDefinition"
	KindScalarTypeDefinition      Kind = "ScalarTypeDefinition"
	KindObjectTypeDefinition      Kind = "ObjectTypeDefinition"
	KindFieldDefinition           Kind = "FieldDefinition"
	KindInputValueDefinition      Kind = "InputValueDefinition"
	KindInterfaceTypeDefinition   Kind = "InterfaceTypeDefinition"
	KindUnionTypeDefinition       Kind = "UnionTypeDefinition"
	KindEnumTypeDefinition        Kind = "EnumTypeDefinition"
	KindEnumValueDefinition       Kind = "EnumValueDefinition"
	KindInputObjectTypeDefinition Kind = "InputObjectTypeDefinition"
	KindDirectiveDefinition       Kind = "DirectiveDefinition"

	// Type system extension kinds.
	KindSchemaExtension          Kind = "SchemaExtension"
	KindScalarTypeExtension      Kind = "ScalarTypeExtension"
	KindObjectTypeExtension      Kind = "ObjectTypeExtension"
	KindInterfaceTypeExtension   Kind = "InterfaceTypeExtension"
	KindUnionTypeExtension       Kind = "UnionTypeExtension"
	KindEnumTypeExtension        Kind = "EnumTypeExtension"
	KindInputObjectTypeExtension Kind = "InputObjectTypeExtension"
)

func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k names a declared node kind.
func (k Kind) IsValid() bool {
	_, ok := childFields[k]
	return ok
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk := Kind(d)
	if !kk.IsValid() {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// childFields maps each kind to its ordered child field names. Traversal
// visits fields in exactly this order; downstream consumers depend on it,
// so the table is fixed per grammar and never mutated after init.
var childFields = map[Kind][]string{
	KindName: {},

	KindDocument:            {"definitions"},
	KindOperationDefinition: {"name", "variableDefinitions", "directives", "selectionSet"},
	KindVariableDefinition:  {"variable", "type", "defaultValue", "directives"},
	KindVariable:            {"name"},
	KindSelectionSet:        {"selections"},
	KindField:               {"alias", "name", "arguments", "directives", "selectionSet"},
	KindArgument:            {"name", "value"},

	KindFragmentSpread:     {"name", "directives"},
	KindInlineFragment:     {"typeCondition", "directives", "selectionSet"},
	KindFragmentDefinition: {"name", "variableDefinitions", "typeCondition", "directives", "selectionSet"},

	KindIntValue:     {},
	KindFloatValue:   {},
	KindStringValue:  {},
	KindBooleanValue: {},
	KindNullValue:    {},
	KindEnumValue:    {},
	KindListValue:    {"values"},
	KindObjectValue:  {"fields"},
	KindObjectField:  {"name", "value"},

	KindDirective: {"name", "arguments"},

	KindNamedType:   {"name"},
	KindListType:    {"type"},
	KindNonNullType: {"type"},

	KindSchemaDefinition:        {"description", "directives", "operationTypes"},
	KindOperationTypeDefinition: {"type"},

	KindScalarTypeDefinition:      {"description", "name", "directives"},
	KindObjectTypeDefinition:      {"description", "name", "interfaces", "directives", "fields"},
	KindFieldDefinition:           {"description", "name", "arguments", "type", "directives"},
	KindInputValueDefinition:      {"description", "name", "type", "defaultValue", "directives"},
	KindInterfaceTypeDefinition:   {"description", "name", "interfaces", "directives", "fields"},
	KindUnionTypeDefinition:       {"description", "name", "directives", "types"},
	KindEnumTypeDefinition:        {"description", "name", "directives", "values"},
	KindEnumValueDefinition:       {"description", "name", "directives"},
	KindInputObjectTypeDefinition: {"description", "name", "directives", "fields"},
	KindDirectiveDefinition:       {"description", "name", "arguments", "locations"},

	KindSchemaExtension:          {"directives", "operationTypes"},
	KindScalarTypeExtension:      {"name", "directives"},
	KindObjectTypeExtension:      {"name", "interfaces", "directives", "fields"},
	KindInterfaceTypeExtension:   {"name", "interfaces", "directives", "fields"},
	KindUnionTypeExtension:       {"name", "directives", "types"},
	KindEnumTypeExtension:        {"name", "directives", "values"},
	KindInputObjectTypeExtension: {"name", "directives", "fields"},
}

// ChildFields returns the ordered child field names for kind k. The result
// is shared, read-only state; callers must not modify it.
func ChildFields(k Kind) []string {
	return childFields[k]
}

// Kinds returns all declared node kinds in lexical order.
func Kinds() []Kind {
	return slices.Sorted(maps.Keys(childFields))
}
