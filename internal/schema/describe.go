package schema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Struct tag keys read by DescribeType.
const (
	tagTable   = "table"   // on the embedded Entity marker
	tagColumn  = "db"      // name[,pk][,identity][,notnull|null][,unique][,size:N]; "-" = transient
	tagSQLType = "sqltype" // explicit column type
	tagDefault = "default" // raw SQL default expression
)

const descriptorCacheSize = 512

var (
	entityType  = reflect.TypeOf(Entity{})
	entityPtrT  = reflect.PointerTo(entityType)
	describerT  = reflect.TypeOf((*Describer)(nil)).Elem()
	tableNamerT = reflect.TypeOf((*TableNamer)(nil)).Elem()

	descriptorCache = mustCache()
)

func mustCache() *lru.Cache[reflect.Type, Descriptor] {
	c, err := lru.New[reflect.Type, Descriptor](descriptorCacheSize)
	if err != nil {
		panic(err)
	}
	return c
}

// Describe returns the Descriptor for v, which must be a struct or a pointer
// to a struct. Values implementing Describer describe themselves; all other
// types are inspected via struct tags (see Entity) and cached per type.
func Describe(v any) (Descriptor, error) {
	if d, ok := v.(Describer); ok {
		return d.Descriptor(), nil
	}
	if v == nil {
		return Descriptor{}, fmt.Errorf("schema: cannot describe nil")
	}
	return DescribeType(reflect.TypeOf(v))
}

// DescribeType is Describe for a reflect.Type.
func DescribeType(t reflect.Type) (Descriptor, error) {
	if t == nil {
		return Descriptor{}, fmt.Errorf("schema: cannot describe nil type")
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return Descriptor{}, fmt.Errorf("schema: %s is not a struct", t.Kind())
	}
	if t.Name() == "" && !reflect.PointerTo(t).Implements(describerT) {
		return Descriptor{}, fmt.Errorf("schema: cannot describe unnamed struct type %s", t)
	}

	if d, ok := descriptorCache.Get(t); ok {
		return d.clone(), nil
	}

	d := buildDescriptor(t)
	descriptorCache.Add(t, d)
	return d.clone(), nil
}

func buildDescriptor(t reflect.Type) Descriptor {
	ptr := reflect.PointerTo(t)
	if ptr.Implements(describerT) {
		return reflect.New(t).Interface().(Describer).Descriptor()
	}

	d := Descriptor{Name: t.Name()}
	collectFields(t, &d, map[reflect.Type]bool{t: true})

	if ptr.Implements(tableNamerT) {
		if name := strings.TrimSpace(reflect.New(t).Interface().(TableNamer).TableName()); name != "" {
			d.Table = &TableMarker{Name: name}
		}
	}
	return d
}

// collectFields appends the fields of t to d in declaration order, flattening
// anonymous structs and recording the entity marker.
func collectFields(t reflect.Type, d *Descriptor, seen map[reflect.Type]bool) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)

		if sf.Anonymous && (sf.Type == entityType || sf.Type == entityPtrT) {
			d.Entity = true
			if name, ok := sf.Tag.Lookup(tagTable); ok {
				d.Table = &TableMarker{Name: name}
			}
			continue
		}

		tag, hasTag := sf.Tag.Lookup(tagColumn)

		if sf.Anonymous && !hasTag {
			et := sf.Type
			if et.Kind() == reflect.Pointer {
				et = et.Elem()
			}
			if et.Kind() == reflect.Struct && et != timeType && !seen[et] {
				seen[et] = true
				collectFields(et, d, seen)
				delete(seen, et)
				continue
			}
		}

		if !sf.IsExported() {
			continue
		}

		kind, nullable, ok := kindOf(sf.Type)
		f := Field{
			Name:      ColumnName(sf.Name),
			Kind:      kind,
			Nullable:  nullable,
			Transient: !ok || strings.TrimSpace(tag) == "-",
		}
		if hasTag && !f.Transient {
			applyColumnTag(&f, tag)
		}
		if v, ok := sf.Tag.Lookup(tagSQLType); ok && strings.TrimSpace(v) != "" {
			f.marker().SQLType = strings.TrimSpace(v)
		}
		if v, ok := sf.Tag.Lookup(tagDefault); ok && strings.TrimSpace(v) != "" {
			f.marker().Default = strings.TrimSpace(v)
		}
		d.Fields = append(d.Fields, f)
	}
}

// applyColumnTag parses `db:"name,opt,..."` into f. SQL types containing a
// comma must use the sqltype tag instead of the type option.
func applyColumnTag(f *Field, tag string) {
	parts := strings.Split(tag, ",")
	if name := strings.TrimSpace(parts[0]); name != "" {
		f.marker().Name = name
	}
	for _, opt := range parts[1:] {
		opt = strings.TrimSpace(opt)
		key, val, _ := strings.Cut(opt, ":")
		switch strings.ToLower(key) {
		case "pk", "id":
			f.ID = true
		case "identity", "autoincrement":
			f.Generated = true
		case "notnull":
			f.marker().Nullable = Bool(false)
		case "null":
			f.marker().Nullable = Bool(true)
		case "unique":
			f.marker().Unique = true
		case "size":
			if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil && n > 0 {
				f.Length = n
			}
		case "text":
			f.Kind = "text"
		case "type":
			if v := strings.TrimSpace(val); v != "" {
				f.marker().SQLType = v
			}
		case "default":
			if v := strings.TrimSpace(val); v != "" {
				f.marker().Default = v
			}
		}
	}
}

// marker returns f.Column, allocating it on first use.
func (f *Field) marker() *ColumnMarker {
	if f.Column == nil {
		f.Column = &ColumnMarker{}
	}
	return f.Column
}

// clone copies d deeply enough that callers cannot mutate cached state.
func (d Descriptor) clone() Descriptor {
	out := d
	if d.Table != nil {
		tm := *d.Table
		out.Table = &tm
	}
	if d.Fields != nil {
		out.Fields = make([]Field, len(d.Fields))
		for i, f := range d.Fields {
			if f.Column != nil {
				cm := *f.Column
				if cm.Nullable != nil {
					cm.Nullable = Bool(*cm.Nullable)
				}
				f.Column = &cm
			}
			out.Fields[i] = f
		}
	}
	return out
}
