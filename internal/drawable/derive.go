package drawable

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// TagName is the struct tag consulted by Dump. `tsuika:"label"` renames a
// field and `tsuika:"-"` hides it.
const TagName = "tsuika"

const indentUnit = "    "

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

// derived renders a value through Dump every time it is drawn
type derived struct {
	value any
}

// Derive returns a Drawable that renders v with Dump. Pass a pointer to see
// later mutations of the value reflected in the next Draw.
func Derive(v any) Drawable {
	return derived{value: v}
}

func (d derived) Draw() string {
	return Dump(d.value)
}

// Dump pretty-prints v by reflection. Struct fields appear in declaration
// order, one per line:
//
//	Bar {
//	    c: 69,
//	    d: 2131283,
//	}
//
// Map entries are sorted by their rendered key so output is deterministic.
func Dump(v any) string {
	if v == nil {
		return "nil"
	}
	d := &dumper{seen: make(map[visit]bool)}
	var b strings.Builder
	d.write(&b, reflect.ValueOf(v), 0)
	return b.String()
}

// visit identifies a reference value on the current path. Slices also key on
// length so a shorter view of the same array is not taken for a cycle.
type visit struct {
	ptr uintptr
	len int
	typ reflect.Type
}

type dumper struct {
	seen map[visit]bool // references on the current path, for cycle detection
}

// enter marks v as being on the current path. It returns false when v is
// already there.
func (d *dumper) enter(v reflect.Value) (visit, bool) {
	key := visit{ptr: v.Pointer(), typ: v.Type()}
	if v.Kind() == reflect.Slice {
		key.len = v.Len()
	}
	if d.seen[key] {
		return key, false
	}
	d.seen[key] = true
	return key, true
}

func (d *dumper) write(b *strings.Builder, v reflect.Value, depth int) {
	if !v.IsValid() {
		b.WriteString("nil")
		return
	}

	if v.CanInterface() && v.Type().Implements(stringerType) && !isNilRef(v) {
		b.WriteString(v.Interface().(fmt.Stringer).String())
		return
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			b.WriteString("nil")
			return
		}
		key, ok := d.enter(v)
		if !ok {
			b.WriteString("<cycle>")
			return
		}
		d.write(b, v.Elem(), depth)
		delete(d.seen, key)

	case reflect.Interface:
		if v.IsNil() {
			b.WriteString("nil")
			return
		}
		d.write(b, v.Elem(), depth)

	case reflect.Struct:
		d.writeStruct(b, v, depth)

	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			b.WriteString("[]")
			return
		}
		if v.Len() == 0 {
			b.WriteString("[]")
			return
		}
		if v.Kind() == reflect.Slice {
			key, ok := d.enter(v)
			if !ok {
				b.WriteString("<cycle>")
				return
			}
			defer delete(d.seen, key)
		}
		b.WriteString("[\n")
		for i := 0; i < v.Len(); i++ {
			b.WriteString(strings.Repeat(indentUnit, depth+1))
			d.write(b, v.Index(i), depth+1)
			b.WriteString(",\n")
		}
		b.WriteString(strings.Repeat(indentUnit, depth))
		b.WriteString("]")

	case reflect.Map:
		d.writeMap(b, v, depth)

	case reflect.String:
		b.WriteString(strconv.Quote(v.String()))
	case reflect.Bool:
		b.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		b.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32:
		b.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 32))
	case reflect.Float64:
		b.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	case reflect.Complex64, reflect.Complex128:
		b.WriteString(fmt.Sprint(v.Complex()))

	default:
		// chan, func, unsafe pointer: only the type is meaningful
		b.WriteString(v.Type().String())
	}
}

func (d *dumper) writeStruct(b *strings.Builder, v reflect.Value, depth int) {
	t := v.Type()
	name := t.Name()
	if name == "" {
		name = "struct"
	}

	type field struct {
		label string
		value reflect.Value
	}
	fields := make([]field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		label := sf.Name
		if tag, ok := sf.Tag.Lookup(TagName); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				label = tag
			}
		}
		fields = append(fields, field{label: label, value: v.Field(i)})
	}

	b.WriteString(name)
	if len(fields) == 0 {
		return
	}
	b.WriteString(" {\n")
	for _, f := range fields {
		b.WriteString(strings.Repeat(indentUnit, depth+1))
		b.WriteString(f.label)
		b.WriteString(": ")
		d.write(b, f.value, depth+1)
		b.WriteString(",\n")
	}
	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteString("}")
}

func (d *dumper) writeMap(b *strings.Builder, v reflect.Value, depth int) {
	if v.Len() == 0 {
		b.WriteString("{}")
		return
	}
	key, ok := d.enter(v)
	if !ok {
		b.WriteString("<cycle>")
		return
	}
	defer delete(d.seen, key)

	type entry struct {
		key   string
		value reflect.Value
	}
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		var kb strings.Builder
		d.write(&kb, iter.Key(), depth+1)
		entries = append(entries, entry{key: kb.String(), value: iter.Value()})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})

	b.WriteString("{\n")
	for _, e := range entries {
		b.WriteString(strings.Repeat(indentUnit, depth+1))
		b.WriteString(e.key)
		b.WriteString(": ")
		d.write(b, e.value, depth+1)
		b.WriteString(",\n")
	}
	b.WriteString(strings.Repeat(indentUnit, depth))
	b.WriteString("}")
}

func isNilRef(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	}
	return false
}
