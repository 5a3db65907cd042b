package ast

import (
	"errors"
	"fmt"
)

// Child returns the value of one of n's child slots: nil when the slot is
// absent or empty, a Node for single-node slots, or a []Node view for
// sequence slots. Slot names come from ChildFields(n.Kind()).
func Child(n Node, field string) any {
	switch n := n.(type) {
	case *Name:
		return nil
	case *Document:
		if field == "definitions" {
			return many(n.Definitions)
		}
	case *OperationDefinition:
		switch field {
		case "name":
			return one(n.Name)
		case "variableDefinitions":
			return many(n.VariableDefinitions)
		case "directives":
			return many(n.Directives)
		case "selectionSet":
			return one(n.SelectionSet)
		}
	case *VariableDefinition:
		switch field {
		case "variable":
			return one(n.Variable)
		case "type":
			return iface(n.Type)
		case "defaultValue":
			return iface(n.DefaultValue)
		case "directives":
			return many(n.Directives)
		}
	case *Variable:
		if field == "name" {
			return one(n.Name)
		}
	case *SelectionSet:
		if field == "selections" {
			return many(n.Selections)
		}
	case *Field:
		switch field {
		case "alias":
			return one(n.Alias)
		case "name":
			return one(n.Name)
		case "arguments":
			return many(n.Arguments)
		case "directives":
			return many(n.Directives)
		case "selectionSet":
			return one(n.SelectionSet)
		}
	case *Argument:
		switch field {
		case "name":
			return one(n.Name)
		case "value":
			return iface(n.Value)
		}
	case *FragmentSpread:
		switch field {
		case "name":
			return one(n.Name)
		case "directives":
			return many(n.Directives)
		}
	case *InlineFragment:
		switch field {
		case "typeCondition":
			return one(n.TypeCondition)
		case "directives":
			return many(n.Directives)
		case "selectionSet":
			return one(n.SelectionSet)
		}
	case *FragmentDefinition:
		switch field {
		case "name":
			return one(n.Name)
		case "variableDefinitions":
			return many(n.VariableDefinitions)
		case "typeCondition":
			return one(n.TypeCondition)
		case "directives":
			return many(n.Directives)
		case "selectionSet":
			return one(n.SelectionSet)
		}
	case *IntValue, *FloatValue, *StringValue, *BooleanValue, *NullValue, *EnumValue:
		return nil
	case *ListValue:
		if field == "values" {
			return many(n.Values)
		}
	case *ObjectValue:
		if field == "fields" {
			return many(n.Fields)
		}
	case *ObjectField:
		switch field {
		case "name":
			return one(n.Name)
		case "value":
			return iface(n.Value)
		}
	case *Directive:
		switch field {
		case "name":
			return one(n.Name)
		case "arguments":
			return many(n.Arguments)
		}
	case *NamedType:
		if field == "name" {
			return one(n.Name)
		}
	case *ListType:
		if field == "type" {
			return iface(n.Type)
		}
	case *NonNullType:
		if field == "type" {
			return iface(n.Type)
		}
	case *SchemaDefinition:
		switch field {
		case "description":
			return one(n.Description)
		case "directives":
			return many(n.Directives)
		case "operationTypes":
			return many(n.OperationTypes)
		}
	case *OperationTypeDefinition:
		if field == "type" {
			return one(n.Type)
		}
	case *ScalarTypeDefinition:
		switch field {
		case "description":
			return one(n.Description)
		case "name":
			return one(n.Name)
		case "directives":
			return many(n.Directives)
		}
	case *ObjectTypeDefinition:
		switch field {
		case "description":
			return one(n.Description)
		case "name":
			return one(n.Name)
		case "interfaces":
			return many(n.Interfaces)
		case "directives":
			return many(n.Directives)
		case "fields":
			return many(n.Fields)
		}
	case *FieldDefinition:
		switch field {
		case "description":
			return one(n.Description)
		case "name":
			return one(n.Name)
		case "arguments":
			return many(n.Arguments)
		case "type":
			return iface(n.Type)
		case "directives":
			return many(n.Directives)
		}
	case *InputValueDefinition:
		switch field {
		case "description":
			return one(n.Description)
		case "name":
			return one(n.Name)
		case "type":
			return iface(n.Type)
		case "defaultValue":
			return iface(n.DefaultValue)
		case "directives":
			return many(n.Directives)
		}
	case *InterfaceTypeDefinition:
		switch field {
		case "description":
			return one(n.Description)
		case "name":
			return one(n.Name)
		case "interfaces":
			return many(n.Interfaces)
		case "directives":
			return many(n.Directives)
		case "fields":
			return many(n.Fields)
		}
	case *UnionTypeDefinition:
		switch field {
		case "description":
			return one(n.Description)
		case "name":
			return one(n.Name)
		case "directives":
			return many(n.Directives)
		case "types":
			return many(n.Types)
		}
	case *EnumTypeDefinition:
		switch field {
		case "description":
			return one(n.Description)
		case "name":
			return one(n.Name)
		case "directives":
			return many(n.Directives)
		case "values":
			return many(n.Values)
		}
	case *EnumValueDefinition:
		switch field {
		case "description":
			return one(n.Description)
		case "name":
			return one(n.Name)
		case "directives":
			return many(n.Directives)
		}
	case *InputObjectTypeDefinition:
		switch field {
		case "description":
			return one(n.Description)
		case "name":
			return one(n.Name)
		case "directives":
			return many(n.Directives)
		case "fields":
			return many(n.Fields)
		}
	case *DirectiveDefinition:
		switch field {
		case "description":
			return one(n.Description)
		case "name":
			return one(n.Name)
		case "arguments":
			return many(n.Arguments)
		case "locations":
			return many(n.Locations)
		}
	case *SchemaExtension:
		switch field {
		case "directives":
			return many(n.Directives)
		case "operationTypes":
			return many(n.OperationTypes)
		}
	case *ScalarTypeExtension:
		switch field {
		case "name":
			return one(n.Name)
		case "directives":
			return many(n.Directives)
		}
	case *ObjectTypeExtension:
		switch field {
		case "name":
			return one(n.Name)
		case "interfaces":
			return many(n.Interfaces)
		case "directives":
			return many(n.Directives)
		case "fields":
			return many(n.Fields)
		}
	case *InterfaceTypeExtension:
		switch field {
		case "name":
			return one(n.Name)
		case "interfaces":
			return many(n.Interfaces)
		case "directives":
			return many(n.Directives)
		case "fields":
			return many(n.Fields)
		}
	case *UnionTypeExtension:
		switch field {
		case "name":
			return one(n.Name)
		case "directives":
			return many(n.Directives)
		case "types":
			return many(n.Types)
		}
	case *EnumTypeExtension:
		switch field {
		case "name":
			return one(n.Name)
		case "directives":
			return many(n.Directives)
		case "values":
			return many(n.Values)
		}
	case *InputObjectTypeExtension:
		switch field {
		case "name":
			return one(n.Name)
		case "directives":
			return many(n.Directives)
		case "fields":
			return many(n.Fields)
		}
	}
	return nil
}

// Copy returns a shallow copy of n: a fresh node of the same kind whose
// child slots still alias n's children.
func Copy(n Node) Node {
	switch n := n.(type) {
	case *Name:
		cp := *n
		return &cp
	case *Document:
		cp := *n
		return &cp
	case *OperationDefinition:
		cp := *n
		return &cp
	case *VariableDefinition:
		cp := *n
		return &cp
	case *Variable:
		cp := *n
		return &cp
	case *SelectionSet:
		cp := *n
		return &cp
	case *Field:
		cp := *n
		return &cp
	case *Argument:
		cp := *n
		return &cp
	case *FragmentSpread:
		cp := *n
		return &cp
	case *InlineFragment:
		cp := *n
		return &cp
	case *FragmentDefinition:
		cp := *n
		return &cp
	case *IntValue:
		cp := *n
		return &cp
	case *FloatValue:
		cp := *n
		return &cp
	case *StringValue:
		cp := *n
		return &cp
	case *BooleanValue:
		cp := *n
		return &cp
	case *NullValue:
		cp := *n
		return &cp
	case *EnumValue:
		cp := *n
		return &cp
	case *ListValue:
		cp := *n
		return &cp
	case *ObjectValue:
		cp := *n
		return &cp
	case *ObjectField:
		cp := *n
		return &cp
	case *Directive:
		cp := *n
		return &cp
	case *NamedType:
		cp := *n
		return &cp
	case *ListType:
		cp := *n
		return &cp
	case *NonNullType:
		cp := *n
		return &cp
	case *SchemaDefinition:
		cp := *n
		return &cp
	case *OperationTypeDefinition:
		cp := *n
		return &cp
	case *ScalarTypeDefinition:
		cp := *n
		return &cp
	case *ObjectTypeDefinition:
		cp := *n
		return &cp
	case *FieldDefinition:
		cp := *n
		return &cp
	case *InputValueDefinition:
		cp := *n
		return &cp
	case *InterfaceTypeDefinition:
		cp := *n
		return &cp
	case *UnionTypeDefinition:
		cp := *n
		return &cp
	case *EnumTypeDefinition:
		cp := *n
		return &cp
	case *EnumValueDefinition:
		cp := *n
		return &cp
	case *InputObjectTypeDefinition:
		cp := *n
		return &cp
	case *DirectiveDefinition:
		cp := *n
		return &cp
	case *SchemaExtension:
		cp := *n
		return &cp
	case *ScalarTypeExtension:
		cp := *n
		return &cp
	case *ObjectTypeExtension:
		cp := *n
		return &cp
	case *InterfaceTypeExtension:
		cp := *n
		return &cp
	case *UnionTypeExtension:
		cp := *n
		return &cp
	case *EnumTypeExtension:
		cp := *n
		return &cp
	case *InputObjectTypeExtension:
		cp := *n
		return &cp
	}
	panic(fmt.Sprintf("ast: Copy of unknown node %T", n))
}

// SetChild stores v into n's child slot named field, mutating n in place.
// v may be nil (clear the slot), a Node, or a []Node whose elements are
// converted to the slot's element type. Callers that need copy-on-write
// semantics pass a Copy of the original node.
func SetChild(n Node, field string, v any) error {
	if err := setChild(n, field, v); err != nil {
		return fmt.Errorf("ast: %s.%s: %w", n.Kind(), field, err)
	}
	return nil
}

var errNoField = errors.New("no such child field")

func setChild(n Node, field string, v any) error {
	switch n := n.(type) {
	case *Document:
		if field == "definitions" {
			return setList(&n.Definitions, v)
		}
	case *OperationDefinition:
		switch field {
		case "name":
			return set(&n.Name, v)
		case "variableDefinitions":
			return setList(&n.VariableDefinitions, v)
		case "directives":
			return setList(&n.Directives, v)
		case "selectionSet":
			return set(&n.SelectionSet, v)
		}
	case *VariableDefinition:
		switch field {
		case "variable":
			return set(&n.Variable, v)
		case "type":
			return set(&n.Type, v)
		case "defaultValue":
			return set(&n.DefaultValue, v)
		case "directives":
			return setList(&n.Directives, v)
		}
	case *Variable:
		if field == "name" {
			return set(&n.Name, v)
		}
	case *SelectionSet:
		if field == "selections" {
			return setList(&n.Selections, v)
		}
	case *Field:
		switch field {
		case "alias":
			return set(&n.Alias, v)
		case "name":
			return set(&n.Name, v)
		case "arguments":
			return setList(&n.Arguments, v)
		case "directives":
			return setList(&n.Directives, v)
		case "selectionSet":
			return set(&n.SelectionSet, v)
		}
	case *Argument:
		switch field {
		case "name":
			return set(&n.Name, v)
		case "value":
			return set(&n.Value, v)
		}
	case *FragmentSpread:
		switch field {
		case "name":
			return set(&n.Name, v)
		case "directives":
			return setList(&n.Directives, v)
		}
	case *InlineFragment:
		switch field {
		case "typeCondition":
			return set(&n.TypeCondition, v)
		case "directives":
			return setList(&n.Directives, v)
		case "selectionSet":
			return set(&n.SelectionSet, v)
		}
	case *FragmentDefinition:
		switch field {
		case "name":
			return set(&n.Name, v)
		case "variableDefinitions":
			return setList(&n.VariableDefinitions, v)
		case "typeCondition":
			return set(&n.TypeCondition, v)
		case "directives":
			return setList(&n.Directives, v)
		case "selectionSet":
			return set(&n.SelectionSet, v)
		}
	case *ListValue:
		if field == "values" {
			return setList(&n.Values, v)
		}
	case *ObjectValue:
		if field == "fields" {
			return setList(&n.Fields, v)
		}
	case *ObjectField:
		switch field {
		case "name":
			return set(&n.Name, v)
		case "value":
			return set(&n.Value, v)
		}
	case *Directive:
		switch field {
		case "name":
			return set(&n.Name, v)
		case "arguments":
			return setList(&n.Arguments, v)
		}
	case *NamedType:
		if field == "name" {
			return set(&n.Name, v)
		}
	case *ListType:
		if field == "type" {
			return set(&n.Type, v)
		}
	case *NonNullType:
		if field == "type" {
			return set(&n.Type, v)
		}
	case *SchemaDefinition:
		switch field {
		case "description":
			return set(&n.Description, v)
		case "directives":
			return setList(&n.Directives, v)
		case "operationTypes":
			return setList(&n.OperationTypes, v)
		}
	case *OperationTypeDefinition:
		if field == "type" {
			return set(&n.Type, v)
		}
	case *ScalarTypeDefinition:
		switch field {
		case "description":
			return set(&n.Description, v)
		case "name":
			return set(&n.Name, v)
		case "directives":
			return setList(&n.Directives, v)
		}
	case *ObjectTypeDefinition:
		switch field {
		case "description":
			return set(&n.Description, v)
		case "name":
			return set(&n.Name, v)
		case "interfaces":
			return setList(&n.Interfaces, v)
		case "directives":
			return setList(&n.Directives, v)
		case "fields":
			return setList(&n.Fields, v)
		}
	case *FieldDefinition:
		switch field {
		case "description":
			return set(&n.Description, v)
		case "name":
			return set(&n.Name, v)
		case "arguments":
			return setList(&n.Arguments, v)
		case "type":
			return set(&n.Type, v)
		case "directives":
			return setList(&n.Directives, v)
		}
	case *InputValueDefinition:
		switch field {
		case "description":
			return set(&n.Description, v)
		case "name":
			return set(&n.Name, v)
		case "type":
			return set(&n.Type, v)
		case "defaultValue":
			return set(&n.DefaultValue, v)
		case "directives":
			return setList(&n.Directives, v)
		}
	case *InterfaceTypeDefinition:
		switch field {
		case "description":
			return set(&n.Description, v)
		case "name":
			return set(&n.Name, v)
		case "interfaces":
			return setList(&n.Interfaces, v)
		case "directives":
			return setList(&n.Directives, v)
		case "fields":
			return setList(&n.Fields, v)
		}
	case *UnionTypeDefinition:
		switch field {
		case "description":
			return set(&n.Description, v)
		case "name":
			return set(&n.Name, v)
		case "directives":
			return setList(&n.Directives, v)
		case "types":
			return setList(&n.Types, v)
		}
	case *EnumTypeDefinition:
		switch field {
		case "description":
			return set(&n.Description, v)
		case "name":
			return set(&n.Name, v)
		case "directives":
			return setList(&n.Directives, v)
		case "values":
			return setList(&n.Values, v)
		}
	case *EnumValueDefinition:
		switch field {
		case "description":
			return set(&n.Description, v)
		case "name":
			return set(&n.Name, v)
		case "directives":
			return setList(&n.Directives, v)
		}
	case *InputObjectTypeDefinition:
		switch field {
		case "description":
			return set(&n.Description, v)
		case "name":
			return set(&n.Name, v)
		case "directives":
			return setList(&n.Directives, v)
		case "fields":
			return setList(&n.Fields, v)
		}
	case *DirectiveDefinition:
		switch field {
		case "description":
			return set(&n.Description, v)
		case "name":
			return set(&n.Name, v)
		case "arguments":
			return setList(&n.Arguments, v)
		case "locations":
			return setList(&n.Locations, v)
		}
	case *SchemaExtension:
		switch field {
		case "directives":
			return setList(&n.Directives, v)
		case "operationTypes":
			return setList(&n.OperationTypes, v)
		}
	case *ScalarTypeExtension:
		switch field {
		case "name":
			return set(&n.Name, v)
		case "directives":
			return setList(&n.Directives, v)
		}
	case *ObjectTypeExtension:
		switch field {
		case "name":
			return set(&n.Name, v)
		case "interfaces":
			return setList(&n.Interfaces, v)
		case "directives":
			return setList(&n.Directives, v)
		case "fields":
			return setList(&n.Fields, v)
		}
	case *InterfaceTypeExtension:
		switch field {
		case "name":
			return set(&n.Name, v)
		case "interfaces":
			return setList(&n.Interfaces, v)
		case "directives":
			return setList(&n.Directives, v)
		case "fields":
			return setList(&n.Fields, v)
		}
	case *UnionTypeExtension:
		switch field {
		case "name":
			return set(&n.Name, v)
		case "directives":
			return setList(&n.Directives, v)
		case "types":
			return setList(&n.Types, v)
		}
	case *EnumTypeExtension:
		switch field {
		case "name":
			return set(&n.Name, v)
		case "directives":
			return setList(&n.Directives, v)
		case "values":
			return setList(&n.Values, v)
		}
	case *InputObjectTypeExtension:
		switch field {
		case "name":
			return set(&n.Name, v)
		case "directives":
			return setList(&n.Directives, v)
		case "fields":
			return setList(&n.Fields, v)
		}
	}
	return errNoField
}

// one wraps a concrete pointer child, mapping nil to an absent slot.
func one[T any, PT interface {
	*T
	Node
}](p PT) any {
	if p == nil {
		return nil
	}
	return Node(p)
}

// iface wraps an interface-typed child, mapping nil to an absent slot.
func iface[T Node](v T) any {
	if Node(v) == nil {
		return nil
	}
	return Node(v)
}

// many materializes a sequence child as []Node; empty sequences read as
// absent.
func many[T Node](xs []T) any {
	if len(xs) == 0 {
		return nil
	}
	out := make([]Node, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

func set[T Node](dst *T, v any) error {
	if v == nil {
		var zero T
		*dst = zero
		return nil
	}
	tv, ok := v.(T)
	if !ok {
		return fmt.Errorf("cannot hold %T", v)
	}
	*dst = tv
	return nil
}

func setList[T Node](dst *[]T, v any) error {
	if v == nil {
		*dst = nil
		return nil
	}
	if tl, ok := v.([]T); ok {
		*dst = tl
		return nil
	}
	nl, ok := v.([]Node)
	if !ok {
		return fmt.Errorf("cannot hold %T", v)
	}
	out := make([]T, len(nl))
	for i, e := range nl {
		te, ok := e.(T)
		if !ok {
			return fmt.Errorf("cannot hold %T element", e)
		}
		out[i] = te
	}
	*dst = out
	return nil
}
