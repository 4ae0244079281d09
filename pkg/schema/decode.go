package schema

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/constgen/pkg/core"
	"github.com/leapstack-labs/constgen/pkg/document"
)

// Fields accepted per kind, in the order they are reported in errors.
var kindFields = map[core.Kind][]string{
	core.KindEnum:    {fieldType, fieldDescription, fieldAsPreproc, fieldValues, fieldOverrides},
	core.KindBitflag: {fieldType, fieldDescription, fieldValues, fieldComposites},
	core.KindAlias:   {fieldType, fieldDescription, fieldAsPreproc, fieldValues},
}

// Decode converts one schema document into a ConstantSet named name.
// Every failure is a *core.DecodeError.
func Decode(name string, doc *document.Node) (*core.ConstantSet, error) {
	d := &decoder{set: name}

	if doc == nil || doc.Kind != document.KindMapping {
		return nil, d.errorf(doc, "", "schema must be a mapping, got %s", kindOf(doc))
	}

	typeNode, ok := doc.Get(fieldType)
	if !ok {
		return nil, d.errorf(doc, "", "missing required field %q", fieldType)
	}
	typeName, err := d.str(typeNode, fieldType)
	if err != nil {
		return nil, err
	}
	kind, ok := core.ParseKind(typeName)
	if !ok {
		return nil, d.errorf(typeNode, fieldType, "unknown type %q (expected one of: %s)",
			typeName, strings.Join(core.KindNames(), ", "))
	}

	fields, err := d.fields(doc, "", kindFields[kind]...)
	if err != nil {
		return nil, err
	}

	set := &core.ConstantSet{Name: name, Kind: kind}
	if n, ok, err := d.optional(fields, "", fieldDescription); err != nil {
		return nil, err
	} else if ok {
		if set.Description, err = d.str(n, fieldDescription); err != nil {
			return nil, err
		}
	}

	switch kind {
	case core.KindEnum:
		set.Enum, err = d.decodeEnum(doc, fields)
	case core.KindBitflag:
		set.Bitflag, err = d.decodeBitflag(doc, fields)
	case core.KindAlias:
		set.Alias, err = d.decodeAlias(doc, fields)
	default:
		panic(fmt.Sprintf("schema: unhandled kind %s", kind))
	}
	if err != nil {
		return nil, err
	}
	return set, nil
}

func (d *decoder) asPreproc(fields map[string]*document.Node) (bool, error) {
	n, ok, err := d.optional(fields, "", fieldAsPreproc)
	if err != nil || !ok {
		return false, err
	}
	return d.boolean(n, fieldAsPreproc)
}

func (d *decoder) decodeEnum(doc *document.Node, fields map[string]*document.Node) (*core.EnumSet, error) {
	out := &core.EnumSet{}

	var err error
	if out.AsPreproc, err = d.asPreproc(fields); err != nil {
		return nil, err
	}

	valuesNode, err := d.required(fields, doc, "", fieldValues)
	if err != nil {
		return nil, err
	}
	if out.Values, err = d.names(valuesNode, fieldValues); err != nil {
		return nil, err
	}

	if n, ok, err := d.optional(fields, "", fieldOverrides); err != nil {
		return nil, err
	} else if ok {
		if out.Overrides, err = d.namedValues(n, fieldOverrides, true); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (d *decoder) decodeBitflag(doc *document.Node, fields map[string]*document.Node) (*core.BitflagSet, error) {
	out := &core.BitflagSet{}

	valuesNode, err := d.required(fields, doc, "", fieldValues)
	if err != nil {
		return nil, err
	}
	if out.Values, err = d.names(valuesNode, fieldValues); err != nil {
		return nil, err
	}
	if len(out.Values) > MaxBitflagValues {
		return nil, d.errorf(valuesNode, fieldValues, "bitflag sets support at most %d base values, got %d",
			MaxBitflagValues, len(out.Values))
	}

	n, ok, err := d.optional(fields, "", fieldComposites)
	if err != nil {
		return nil, err
	}
	if !ok {
		return out, nil
	}
	if n.Kind != document.KindMapping {
		return nil, d.errorf(n, fieldComposites, "expected a mapping of name to composite, got %s", n.Kind)
	}
	out.Composites = make([]core.Composite, 0, len(n.Entries))
	for _, e := range n.Entries {
		c, err := d.decodeComposite(e)
		if err != nil {
			return nil, err
		}
		out.Composites = append(out.Composites, c)
	}
	return out, nil
}

func (d *decoder) decodeComposite(e document.Entry) (core.Composite, error) {
	path := joinPath(fieldComposites, e.Key)
	if err := d.ident(e.Value, path, e.Key); err != nil {
		return core.Composite{}, err
	}

	fields, err := d.fields(e.Value, path, fieldOp, fieldComponents, fieldOperands)
	if err != nil {
		return core.Composite{}, err
	}

	opNode, err := d.required(fields, e.Value, path, fieldOp)
	if err != nil {
		return core.Composite{}, err
	}
	opName, err := d.str(opNode, joinPath(path, fieldOp))
	if err != nil {
		return core.Composite{}, err
	}
	op, ok := core.ParseOperator(opName)
	if !ok {
		return core.Composite{}, d.errorf(opNode, joinPath(path, fieldOp), "unknown operator %q (expected one of: %s)",
			opName, strings.Join(core.OperatorNames(), ", "))
	}

	operandsKey := fieldComponents
	_, hasComponents := fields[fieldComponents]
	_, hasOperands := fields[fieldOperands]
	switch {
	case hasComponents && hasOperands:
		return core.Composite{}, d.errorf(e.Value, path, "%q and %q are aliases; give only one", fieldComponents, fieldOperands)
	case hasOperands:
		operandsKey = fieldOperands
	}
	operandsNode, err := d.required(fields, e.Value, path, operandsKey)
	if err != nil {
		return core.Composite{}, err
	}
	operands, err := d.names(operandsNode, joinPath(path, operandsKey))
	if err != nil {
		return core.Composite{}, err
	}

	return core.Composite{Name: e.Key, Op: op, Operands: operands}, nil
}

func (d *decoder) decodeAlias(doc *document.Node, fields map[string]*document.Node) (*core.AliasSet, error) {
	out := &core.AliasSet{}

	var err error
	if out.AsPreproc, err = d.asPreproc(fields); err != nil {
		return nil, err
	}

	valuesNode, err := d.required(fields, doc, "", fieldValues)
	if err != nil {
		return nil, err
	}
	if out.Values, err = d.namedValues(valuesNode, fieldValues, false); err != nil {
		return nil, err
	}
	return out, nil
}
