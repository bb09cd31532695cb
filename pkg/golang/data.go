package golang

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vkbind/vkbind-go/pkg/cexpr"
	"github.com/vkbind/vkbind-go/pkg/ident"
	"github.com/vkbind/vkbind-go/pkg/ir"
)

// --- Template data types ---

type fieldData struct {
	Name string
	Type string
}

type structData struct {
	Name   string
	Fields []fieldData
}

// unionData describes a union as opaque storage plus one accessor per member.
type unionData struct {
	Name    string
	Storage string
	Size    int64
	Members []fieldData
}

type flagData struct {
	Name  string
	Value string
}

type bitflagsData struct {
	Name   string
	All    string
	Values []flagData
}

type variantData struct {
	Const       string
	Name        string
	Value       int64
	Description string
	Alias       bool
}

type enumData struct {
	Name     string
	Variants []variantData
	Describe bool
}

type constantData struct {
	Name  string
	Type  string
	Value string
}

type slotData struct {
	Field      string
	Method     string
	EntryPoint string
	Params     string
	Args       string
	Return     string
}

type tableData struct {
	Name  string
	Doc   string
	Slots []slotData
}

type typedefData struct {
	Name string
	Base string
}

// --- Builders ---

func newStructData(s *ir.Struct) (structData, error) {
	fields, err := newFields(s.Fields)
	if err != nil {
		return structData{}, fmt.Errorf("struct %s: %w", s.Name, err)
	}
	return structData{Name: s.Name, Fields: fields}, nil
}

func newFields(fs []ir.Field) ([]fieldData, error) {
	out := make([]fieldData, 0, len(fs))
	for _, f := range fs {
		t, err := goType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		out = append(out, fieldData{Name: ident.GoField(f.Name), Type: t})
	}
	return out, nil
}

var storageWords = map[int64]string{1: "uint8", 2: "uint16", 4: "uint32", 8: "uint64"}

func newUnionData(u *ir.Union) (unionData, error) {
	word, ok := storageWords[u.Align]
	if !ok {
		return unionData{}, fmt.Errorf("union %s: unsupported alignment %d", u.Name, u.Align)
	}
	members, err := newFields(u.Fields)
	if err != nil {
		return unionData{}, fmt.Errorf("union %s: %w", u.Name, err)
	}
	return unionData{
		Name:    u.Name,
		Storage: fmt.Sprintf("[%d]%s", u.Size/u.Align, word),
		Size:    u.Size,
		Members: members,
	}, nil
}

func newBitflagsData(b *ir.Bitflags) bitflagsData {
	data := bitflagsData{Name: b.Name, All: "0"}
	if b.All != 0 {
		data.All = "0b" + strconv.FormatUint(b.All, 2)
	}
	for _, v := range b.Values {
		lit, ok := flagLiteral(b.Name, v.Value)
		if !ok {
			continue
		}
		data.Values = append(data.Values, flagData{Name: v.Name, Value: lit})
	}
	return data
}

// flagLiteral renders a flag value. Text values have no bit representation
// and are left out.
func flagLiteral(typeName string, v ir.ConstValue) (string, bool) {
	switch v.Form {
	case ir.FormNumber:
		return strconv.FormatInt(v.Number, 10), true
	case ir.FormHex:
		return "0x" + strings.ToLower(v.Hex), true
	case ir.FormBitPos:
		return fmt.Sprintf("1 << %d", v.BitPos), true
	case ir.FormExpr:
		if v.Expr.Type == cexpr.Float {
			return "", false
		}
		return inverseLiteral(typeName, v.Expr), true
	default:
		return "", false
	}
}

func newEnumData(e *ir.Enum) enumData {
	data := enumData{Name: e.Name, Describe: e.Describe}
	for _, v := range e.Variants {
		data.Variants = append(data.Variants, variantData{
			Const:       e.Name + v.Name,
			Name:        v.Name,
			Value:       v.Value,
			Description: v.Description,
			Alias:       v.Alias,
		})
	}
	return data
}

func newConstantData(c *ir.Constant) (constantData, error) {
	v := c.Value
	data := constantData{Name: c.Name}

	switch v.Form {
	case ir.FormNumber:
		data.Type = "uint"
		if v.Number < 0 {
			data.Type = "int"
		}
		data.Value = strconv.FormatInt(v.Number, 10)
	case ir.FormHex:
		data.Type = "uint"
		data.Value = "0x" + strings.ToLower(v.Hex)
	case ir.FormBitPos:
		data.Type = "uint32"
		if v.Scalar == ir.ScalarU64 {
			data.Type = "uint64"
		}
		data.Value = fmt.Sprintf("1 << %d", v.BitPos)
	case ir.FormExpr:
		switch v.Expr.Type {
		case cexpr.Float:
			data.Type = "float32"
			data.Value = v.Expr.Text
		case cexpr.U32:
			data.Type = "uint32"
			data.Value = inverseLiteral(data.Type, v.Expr)
		default:
			data.Type = "uint64"
			data.Value = inverseLiteral(data.Type, v.Expr)
		}
	case ir.FormText:
		data.Type = "string"
		data.Value = strconv.Quote(v.Text)
	default:
		return constantData{}, fmt.Errorf("constant %s: no value", c.Name)
	}
	return data, nil
}

// inverseLiteral renders "(~N)" and "(~N-M)" as typed Go expressions. Only
// an operand of 0 is a full bit inversion; other operands keep their value.
func inverseLiteral(typeName string, e cexpr.Expr) string {
	s := fmt.Sprintf("^%s(%d)", typeName, e.Operand)
	if e.HasSubtrahend {
		s += fmt.Sprintf(" - %d", e.Subtrahend)
	}
	return s
}

func newTableData(t *ir.FnTable) (tableData, error) {
	data := tableData{Name: t.Name, Doc: tableDoc(t)}
	for _, s := range t.Slots {
		slot, err := newSlotData(s)
		if err != nil {
			return tableData{}, fmt.Errorf("table %s: %w", t.Name, err)
		}
		data.Slots = append(data.Slots, slot)
	}
	return data, nil
}

func tableDoc(t *ir.FnTable) string {
	switch t.Level {
	case ir.TableInstance:
		return fmt.Sprintf("%s holds the instance-level entry points of version %s.", t.Name, t.Origin)
	case ir.TableDevice:
		return fmt.Sprintf("%s holds the device-level entry points of version %s.", t.Name, t.Origin)
	default:
		return fmt.Sprintf("%s holds the entry points of %s.", t.Name, t.Origin)
	}
}

func newSlotData(s ir.Slot) (slotData, error) {
	params := make([]string, 0, len(s.Params))
	args := make([]string, 0, len(s.Params))
	for _, p := range s.Params {
		t, err := goType(p.Type)
		if err != nil {
			return slotData{}, fmt.Errorf("%s: param %s: %w", s.EntryPoint, p.Name, err)
		}
		name := ident.GoParam(p.Name)
		params = append(params, name+" "+t)
		args = append(args, name)
	}
	ret, err := goReturn(s.Return)
	if err != nil {
		return slotData{}, fmt.Errorf("%s: return: %w", s.EntryPoint, err)
	}
	return slotData{
		Field:      ident.GoIdent(ident.LowerCamelCase(s.Name)),
		Method:     ident.CamelCase(s.Name),
		EntryPoint: s.EntryPoint,
		Params:     strings.Join(params, ", "),
		Args:       strings.Join(args, ", "),
		Return:     ret,
	}, nil
}
