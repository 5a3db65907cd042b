package ast

// Node is a single vertex of the query-language AST. The set of
// implementations is closed: every node kind declared in the child-field
// table has exactly one struct here, and nothing else satisfies Node.
//
// Nodes are treated as immutable once built. Rewrites go through the visit
// package, which shallow-copies a node before changing any of its child
// slots, so untouched subtrees stay shared between the old and new tree.
type Node interface {
	Kind() Kind
	node()
}

// Value is a node expressing a constant value directly: one of IntValue,
// FloatValue, StringValue, BooleanValue, NullValue, EnumValue, ListValue,
// ObjectValue, or Variable.
type Value interface {
	Node
	value()
}

// Selection is a member of a selection set: Field, FragmentSpread or
// InlineFragment.
type Selection interface {
	Node
	selection()
}

// Type is a type reference: NamedType, ListType or NonNullType.
type Type interface {
	Node
	typeRef()
}

// Definition is a top-level document definition.
type Definition interface {
	Node
	definition()
}

// OperationType names one of the three operation roots.
type OperationType string

const (
	Query        OperationType = "query"
	Mutation     OperationType = "mutation"
	Subscription OperationType = "subscription"
)

type Name struct {
	Value string
}

type Document struct {
	Definitions []Definition
}

type OperationDefinition struct {
	Operation           OperationType
	Name                *Name
	VariableDefinitions []*VariableDefinition
	Directives          []*Directive
	SelectionSet        *SelectionSet
}

type VariableDefinition struct {
	Variable     *Variable
	Type         Type
	DefaultValue Value
	Directives   []*Directive
}

type Variable struct {
	Name *Name
}

type SelectionSet struct {
	Selections []Selection
}

type Field struct {
	Alias        *Name
	Name         *Name
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet *SelectionSet
}

type Argument struct {
	Name  *Name
	Value Value
}

type FragmentSpread struct {
	Name       *Name
	Directives []*Directive
}

type InlineFragment struct {
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

type FragmentDefinition struct {
	Name *Name
	// VariableDefinitions supports the fragment-variables grammar extension.
	VariableDefinitions []*VariableDefinition
	TypeCondition       *NamedType
	Directives          []*Directive
	SelectionSet        *SelectionSet
}

// IntValue and FloatValue keep their numbers as the decimal source strings
// so precision is never lost to a host float.
type IntValue struct {
	Value string
}

type FloatValue struct {
	Value string
}

type StringValue struct {
	Value string
	Block bool
}

type BooleanValue struct {
	Value bool
}

type NullValue struct{}

type EnumValue struct {
	Value string
}

type ListValue struct {
	Values []Value
}

type ObjectValue struct {
	Fields []*ObjectField
}

type ObjectField struct {
	Name  *Name
	Value Value
}

type Directive struct {
	Name      *Name
	Arguments []*Argument
}

type NamedType struct {
	Name *Name
}

type ListType struct {
	Type Type
}

type NonNullType struct {
	// Type is the wrapped reference; it is never itself a NonNullType.
	Type Type
}

type SchemaDefinition struct {
	Description    *StringValue
	Directives     []*Directive
	OperationTypes []*OperationTypeDefinition
}

type OperationTypeDefinition struct {
	Operation OperationType
	Type      *NamedType
}

type ScalarTypeDefinition struct {
	Description *StringValue
	Name        *Name
	Directives  []*Directive
}

type ObjectTypeDefinition struct {
	Description *StringValue
	Name        *Name
	Interfaces  []*NamedType
	Directives  []*Directive
	Fields      []*FieldDefinition
}

type FieldDefinition struct {
	Description *StringValue
	Name        *Name
	Arguments   []*InputValueDefinition
	Type        Type
	Directives  []*Directive
}

type InputValueDefinition struct {
	Description  *StringValue
	Name         *Name
	Type         Type
	DefaultValue Value
	Directives   []*Directive
}

type InterfaceTypeDefinition struct {
	Description *StringValue
	Name        *Name
	Interfaces  []*NamedType
	Directives  []*Directive
	Fields      []*FieldDefinition
}

type UnionTypeDefinition struct {
	Description *StringValue
	Name        *Name
	Directives  []*Directive
	Types       []*NamedType
}

type EnumTypeDefinition struct {
	Description *StringValue
	Name        *Name
	Directives  []*Directive
	Values      []*EnumValueDefinition
}

type EnumValueDefinition struct {
	Description *StringValue
	Name        *Name
	Directives  []*Directive
}

type InputObjectTypeDefinition struct {
	Description *StringValue
	Name        *Name
	Directives  []*Directive
	Fields      []*InputValueDefinition
}

type DirectiveDefinition struct {
	Description *StringValue
	Name        *Name
	Arguments   []*InputValueDefinition
	Repeatable  bool
	Locations   []*Name
}

type SchemaExtension struct {
	Directives     []*Directive
	OperationTypes []*OperationTypeDefinition
}

type ScalarTypeExtension struct {
	Name       *Name
	Directives []*Directive
}

type ObjectTypeExtension struct {
	Name       *Name
	Interfaces []*NamedType
	Directives []*Directive
	Fields     []*FieldDefinition
}

type InterfaceTypeExtension struct {
	Name       *Name
	Interfaces []*NamedType
	Directives []*Directive
	Fields     []*FieldDefinition
}

type UnionTypeExtension struct {
	Name       *Name
	Directives []*Directive
	Types      []*NamedType
}

type EnumTypeExtension struct {
	Name       *Name
	Directives []*Directive
	Values     []*EnumValueDefinition
}

type InputObjectTypeExtension struct {
	Name       *Name
	Directives []*Directive
	Fields     []*InputValueDefinition
}

func (*Name) Kind() Kind                      { return KindName }
func (*Document) Kind() Kind                  { return KindDocument }
func (*OperationDefinition) Kind() Kind       { return KindOperationDefinition }
func (*VariableDefinition) Kind() Kind        { return KindVariableDefinition }
func (*Variable) Kind() Kind                  { return KindVariable }
func (*SelectionSet) Kind() Kind              { return KindSelectionSet }
func (*Field) Kind() Kind                     { return KindField }
func (*Argument) Kind() Kind                  { return KindArgument }
func (*FragmentSpread) Kind() Kind            { return KindFragmentSpread }
func (*InlineFragment) Kind() Kind            { return KindInlineFragment }
func (*FragmentDefinition) Kind() Kind        { return KindFragmentDefinition }
func (*IntValue) Kind() Kind                  { return KindIntValue }
func (*FloatValue) Kind() Kind                { return KindFloatValue }
func (*StringValue) Kind() Kind               { return KindStringValue }
func (*BooleanValue) Kind() Kind              { return KindBooleanValue }
func (*NullValue) Kind() Kind                 { return KindNullValue }
func (*EnumValue) Kind() Kind                 { return KindEnumValue }
func (*ListValue) Kind() Kind                 { return KindListValue }
func (*ObjectValue) Kind() Kind               { return KindObjectValue }
func (*ObjectField) Kind() Kind               { return KindObjectField }
func (*Directive) Kind() Kind                 { return KindDirective }
func (*NamedType) Kind() Kind                 { return KindNamedType }
func (*ListType) Kind() Kind                  { return KindListType }
func (*NonNullType) Kind() Kind               { return KindNonNullType }
func (*SchemaDefinition) Kind() Kind          { return KindSchemaDefinition }
func (*OperationTypeDefinition) Kind() Kind   { return KindOperationTypeDefinition }
func (*ScalarTypeDefinition) Kind() Kind      { return KindScalarTypeDefinition }
func (*ObjectTypeDefinition) Kind() Kind      { return KindObjectTypeDefinition }
func (*FieldDefinition) Kind() Kind           { return KindFieldDefinition }
func (*InputValueDefinition) Kind() Kind      { return KindInputValueDefinition }
func (*InterfaceTypeDefinition) Kind() Kind   { return KindInterfaceTypeDefinition }
func (*UnionTypeDefinition) Kind() Kind       { return KindUnionTypeDefinition }
func (*EnumTypeDefinition) Kind() Kind        { return KindEnumTypeDefinition }
func (*EnumValueDefinition) Kind() Kind       { return KindEnumValueDefinition }
func (*InputObjectTypeDefinition) Kind() Kind { return KindInputObjectTypeDefinition }
func (*DirectiveDefinition) Kind() Kind       { return KindDirectiveDefinition }
func (*SchemaExtension) Kind() Kind           { return KindSchemaExtension }
func (*ScalarTypeExtension) Kind() Kind       { return KindScalarTypeExtension }
func (*ObjectTypeExtension) Kind() Kind       { return KindObjectTypeExtension }
func (*InterfaceTypeExtension) Kind() Kind    { return KindInterfaceTypeExtension }
func (*UnionTypeExtension) Kind() Kind        { return KindUnionTypeExtension }
func (*EnumTypeExtension) Kind() Kind         { return KindEnumTypeExtension }
func (*InputObjectTypeExtension) Kind() Kind  { return KindInputObjectTypeExtension }

func (*Name) node()                      {}
func (*Document) node()                  {}
func (*OperationDefinition) node()       {}
func (*VariableDefinition) node()        {}
func (*Variable) node()                  {}
func (*SelectionSet) node()              {}
func (*Field) node()                     {}
func (*Argument) node()                  {}
func (*FragmentSpread) node()            {}
func (*InlineFragment) node()            {}
func (*FragmentDefinition) node()        {}
func (*IntValue) node()                  {}
func (*FloatValue) node()                {}
func (*StringValue) node()               {}
func (*BooleanValue) node()              {}
func (*NullValue) node()                 {}
func (*EnumValue) node()                 {}
func (*ListValue) node()                 {}
func (*ObjectValue) node()               {}
func (*ObjectField) node()               {}
func (*Directive) node()                 {}
func (*NamedType) node()                 {}
func (*ListType) node()                  {}
func (*NonNullType) node()               {}
func (*SchemaDefinition) node()          {}
func (*OperationTypeDefinition) node()   {}
func (*ScalarTypeDefinition) node()      {}
func (*ObjectTypeDefinition) node()      {}
func (*FieldDefinition) node()           {}
func (*InputValueDefinition) node()      {}
func (*InterfaceTypeDefinition) node()   {}
func (*UnionTypeDefinition) node()       {}
func (*EnumTypeDefinition) node()        {}
func (*EnumValueDefinition) node()       {}
func (*InputObjectTypeDefinition) node() {}
func (*DirectiveDefinition) node()       {}
func (*SchemaExtension) node()           {}
func (*ScalarTypeExtension) node()       {}
func (*ObjectTypeExtension) node()       {}
func (*InterfaceTypeExtension) node()    {}
func (*UnionTypeExtension) node()        {}
func (*EnumTypeExtension) node()         {}
func (*InputObjectTypeExtension) node()  {}

func (*Variable) value()     {}
func (*IntValue) value()     {}
func (*FloatValue) value()   {}
func (*StringValue) value()  {}
func (*BooleanValue) value() {}
func (*NullValue) value()    {}
func (*EnumValue) value()    {}
func (*ListValue) value()    {}
func (*ObjectValue) value()  {}

func (*Field) selection()          {}
func (*FragmentSpread) selection() {}
func (*InlineFragment) selection() {}

func (*NamedType) typeRef()   {}
func (*ListType) typeRef()    {}
func (*NonNullType) typeRef() {}

func (*OperationDefinition) definition()       {}
func (*FragmentDefinition) definition()        {}
func (*SchemaDefinition) definition()          {}
func (*ScalarTypeDefinition) definition()      {}
func (*ObjectTypeDefinition) definition()      {}
func (*InterfaceTypeDefinition) definition()   {}
func (*UnionTypeDefinition) definition()       {}
func (*EnumTypeDefinition) definition()        {}
func (*InputObjectTypeDefinition) definition() {}
func (*DirectiveDefinition) definition()       {}
func (*SchemaExtension) definition()           {}
func (*ScalarTypeExtension) definition()       {}
func (*ObjectTypeExtension) definition()       {}
func (*InterfaceTypeExtension) definition()    {}
func (*UnionTypeExtension) definition()        {}
func (*EnumTypeExtension) definition()         {}
func (*InputObjectTypeExtension) definition()  {}
