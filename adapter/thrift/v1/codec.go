package v1

import (
	"context"

	"github.com/apache/thrift/lib/go/thrift"

	adapter "github.com/cassette-db/cassette/adapter/thrift"
)

// Field-level write helpers. Thrift field names are not part of the binary
// encoding, so they are left empty throughout.

func writeBinaryField(ctx context.Context, p thrift.TProtocol, id int16, v []byte) error {
	if err := p.WriteFieldBegin(ctx, "", thrift.STRING, id); err != nil {
		return err
	}
	if err := p.WriteBinary(ctx, v); err != nil {
		return err
	}

	return p.WriteFieldEnd(ctx)
}

func writeStringField(ctx context.Context, p thrift.TProtocol, id int16, v string) error {
	if err := p.WriteFieldBegin(ctx, "", thrift.STRING, id); err != nil {
		return err
	}
	if err := p.WriteString(ctx, v); err != nil {
		return err
	}

	return p.WriteFieldEnd(ctx)
}

func writeI32Field(ctx context.Context, p thrift.TProtocol, id int16, v int32) error {
	if err := p.WriteFieldBegin(ctx, "", thrift.I32, id); err != nil {
		return err
	}
	if err := p.WriteI32(ctx, v); err != nil {
		return err
	}

	return p.WriteFieldEnd(ctx)
}

func writeI64Field(ctx context.Context, p thrift.TProtocol, id int16, v int64) error {
	if err := p.WriteFieldBegin(ctx, "", thrift.I64, id); err != nil {
		return err
	}
	if err := p.WriteI64(ctx, v); err != nil {
		return err
	}

	return p.WriteFieldEnd(ctx)
}

func writeBoolField(ctx context.Context, p thrift.TProtocol, id int16, v bool) error {
	if err := p.WriteFieldBegin(ctx, "", thrift.BOOL, id); err != nil {
		return err
	}
	if err := p.WriteBool(ctx, v); err != nil {
		return err
	}

	return p.WriteFieldEnd(ctx)
}

func writeStructField(ctx context.Context, p thrift.TProtocol, id int16, write func() error) error {
	if err := p.WriteFieldBegin(ctx, "", thrift.STRUCT, id); err != nil {
		return err
	}
	if err := write(); err != nil {
		return err
	}

	return p.WriteFieldEnd(ctx)
}

func writeKeyListField(ctx context.Context, p thrift.TProtocol, id int16, keys [][]byte) error {
	if err := p.WriteFieldBegin(ctx, "", thrift.LIST, id); err != nil {
		return err
	}
	if err := p.WriteListBegin(ctx, thrift.STRING, len(keys)); err != nil {
		return err
	}
	for _, key := range keys {
		if err := p.WriteBinary(ctx, key); err != nil {
			return err
		}
	}
	if err := p.WriteListEnd(ctx); err != nil {
		return err
	}

	return p.WriteFieldEnd(ctx)
}

// Struct codecs. Field numbering follows the legacy RPC IDL; optional fields
// are written only when set.

func writeColumnParent(ctx context.Context, p thrift.TProtocol, parent adapter.ColumnParent) error {
	if err := p.WriteStructBegin(ctx, "ColumnParent"); err != nil {
		return err
	}
	if err := writeStringField(ctx, p, 3, parent.ColumnFamily); err != nil {
		return err
	}
	if len(parent.SuperColumn) > 0 {
		if err := writeBinaryField(ctx, p, 4, parent.SuperColumn); err != nil {
			return err
		}
	}
	if err := p.WriteFieldStop(ctx); err != nil {
		return err
	}

	return p.WriteStructEnd(ctx)
}

func writeColumnPath(ctx context.Context, p thrift.TProtocol, path adapter.ColumnPath) error {
	if err := p.WriteStructBegin(ctx, "ColumnPath"); err != nil {
		return err
	}
	if err := writeStringField(ctx, p, 3, path.ColumnFamily); err != nil {
		return err
	}
	if len(path.SuperColumn) > 0 {
		if err := writeBinaryField(ctx, p, 4, path.SuperColumn); err != nil {
			return err
		}
	}
	if len(path.Column) > 0 {
		if err := writeBinaryField(ctx, p, 5, path.Column); err != nil {
			return err
		}
	}
	if err := p.WriteFieldStop(ctx); err != nil {
		return err
	}

	return p.WriteStructEnd(ctx)
}

func writeSliceRange(ctx context.Context, p thrift.TProtocol, r adapter.SliceRange) error {
	if err := p.WriteStructBegin(ctx, "SliceRange"); err != nil {
		return err
	}
	if err := writeBinaryField(ctx, p, 1, r.Start); err != nil {
		return err
	}
	if err := writeBinaryField(ctx, p, 2, r.Finish); err != nil {
		return err
	}
	if err := writeBoolField(ctx, p, 3, r.Reversed); err != nil {
		return err
	}
	if err := writeI32Field(ctx, p, 4, r.Count); err != nil {
		return err
	}
	if err := p.WriteFieldStop(ctx); err != nil {
		return err
	}

	return p.WriteStructEnd(ctx)
}

func writeSlicePredicate(ctx context.Context, p thrift.TProtocol, pred adapter.SlicePredicate) error {
	if err := p.WriteStructBegin(ctx, "SlicePredicate"); err != nil {
		return err
	}
	if pred.ColumnNames != nil {
		if err := writeKeyListField(ctx, p, 1, pred.ColumnNames); err != nil {
			return err
		}
	}
	if pred.SliceRange != nil {
		err := writeStructField(ctx, p, 2, func() error {
			return writeSliceRange(ctx, p, *pred.SliceRange)
		})
		if err != nil {
			return err
		}
	}
	if err := p.WriteFieldStop(ctx); err != nil {
		return err
	}

	return p.WriteStructEnd(ctx)
}

func writeKeyRange(ctx context.Context, p thrift.TProtocol, kr adapter.KeyRange) error {
	if err := p.WriteStructBegin(ctx, "KeyRange"); err != nil {
		return err
	}
	// Token bounds and key bounds are mutually exclusive on the wire; the
	// request builder only ever sets one pair.
	if kr.StartToken != "" || kr.EndToken != "" {
		if err := writeStringField(ctx, p, 3, kr.StartToken); err != nil {
			return err
		}
		if err := writeStringField(ctx, p, 4, kr.EndToken); err != nil {
			return err
		}
	} else {
		if err := writeBinaryField(ctx, p, 1, kr.StartKey); err != nil {
			return err
		}
		if err := writeBinaryField(ctx, p, 2, kr.EndKey); err != nil {
			return err
		}
	}
	if err := writeI32Field(ctx, p, 5, kr.Count); err != nil {
		return err
	}
	if err := p.WriteFieldStop(ctx); err != nil {
		return err
	}

	return p.WriteStructEnd(ctx)
}

func writeIndexExpression(ctx context.Context, p thrift.TProtocol, expr adapter.IndexExpression) error {
	if err := p.WriteStructBegin(ctx, "IndexExpression"); err != nil {
		return err
	}
	if err := writeBinaryField(ctx, p, 1, expr.ColumnName); err != nil {
		return err
	}
	if err := writeI32Field(ctx, p, 2, int32(expr.Op)); err != nil {
		return err
	}
	if err := writeBinaryField(ctx, p, 3, expr.Value); err != nil {
		return err
	}
	if err := p.WriteFieldStop(ctx); err != nil {
		return err
	}

	return p.WriteStructEnd(ctx)
}

func writeIndexClause(ctx context.Context, p thrift.TProtocol, clause adapter.IndexClause) error {
	if err := p.WriteStructBegin(ctx, "IndexClause"); err != nil {
		return err
	}
	if err := p.WriteFieldBegin(ctx, "", thrift.LIST, 1); err != nil {
		return err
	}
	if err := p.WriteListBegin(ctx, thrift.STRUCT, len(clause.Expressions)); err != nil {
		return err
	}
	for _, expr := range clause.Expressions {
		if err := writeIndexExpression(ctx, p, expr); err != nil {
			return err
		}
	}
	if err := p.WriteListEnd(ctx); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if err := writeBinaryField(ctx, p, 2, clause.StartKey); err != nil {
		return err
	}
	if err := writeI32Field(ctx, p, 3, clause.Count); err != nil {
		return err
	}
	if err := p.WriteFieldStop(ctx); err != nil {
		return err
	}

	return p.WriteStructEnd(ctx)
}

func writeColumn(ctx context.Context, p thrift.TProtocol, col adapter.Column) error {
	if err := p.WriteStructBegin(ctx, "Column"); err != nil {
		return err
	}
	if err := writeBinaryField(ctx, p, 1, col.Name); err != nil {
		return err
	}
	if err := writeBinaryField(ctx, p, 2, col.Value); err != nil {
		return err
	}
	if err := writeI64Field(ctx, p, 3, col.Timestamp); err != nil {
		return err
	}
	if col.TTL > 0 {
		if err := writeI32Field(ctx, p, 4, col.TTL); err != nil {
			return err
		}
	}
	if err := p.WriteFieldStop(ctx); err != nil {
		return err
	}

	return p.WriteStructEnd(ctx)
}

func writeSuperColumn(ctx context.Context, p thrift.TProtocol, sc adapter.SuperColumn) error {
	if err := p.WriteStructBegin(ctx, "SuperColumn"); err != nil {
		return err
	}
	if err := writeBinaryField(ctx, p, 1, sc.Name); err != nil {
		return err
	}
	if err := p.WriteFieldBegin(ctx, "", thrift.LIST, 2); err != nil {
		return err
	}
	if err := p.WriteListBegin(ctx, thrift.STRUCT, len(sc.Columns)); err != nil {
		return err
	}
	for _, col := range sc.Columns {
		if err := writeColumn(ctx, p, col); err != nil {
			return err
		}
	}
	if err := p.WriteListEnd(ctx); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if err := p.WriteFieldStop(ctx); err != nil {
		return err
	}

	return p.WriteStructEnd(ctx)
}

func writeColumnOrSuperColumn(ctx context.Context, p thrift.TProtocol, cosc adapter.ColumnOrSuperColumn) error {
	if err := p.WriteStructBegin(ctx, "ColumnOrSuperColumn"); err != nil {
		return err
	}
	if cosc.Column != nil {
		err := writeStructField(ctx, p, 1, func() error {
			return writeColumn(ctx, p, *cosc.Column)
		})
		if err != nil {
			return err
		}
	}
	if cosc.SuperColumn != nil {
		err := writeStructField(ctx, p, 2, func() error {
			return writeSuperColumn(ctx, p, *cosc.SuperColumn)
		})
		if err != nil {
			return err
		}
	}
	if err := p.WriteFieldStop(ctx); err != nil {
		return err
	}

	return p.WriteStructEnd(ctx)
}

func writeDeletion(ctx context.Context, p thrift.TProtocol, del adapter.Deletion) error {
	if err := p.WriteStructBegin(ctx, "Deletion"); err != nil {
		return err
	}
	if err := writeI64Field(ctx, p, 1, del.Timestamp); err != nil {
		return err
	}
	if len(del.SuperColumn) > 0 {
		if err := writeBinaryField(ctx, p, 2, del.SuperColumn); err != nil {
			return err
		}
	}
	if del.Predicate != nil {
		err := writeStructField(ctx, p, 3, func() error {
			return writeSlicePredicate(ctx, p, *del.Predicate)
		})
		if err != nil {
			return err
		}
	}
	if err := p.WriteFieldStop(ctx); err != nil {
		return err
	}

	return p.WriteStructEnd(ctx)
}

func writeMutation(ctx context.Context, p thrift.TProtocol, m adapter.Mutation) error {
	if err := p.WriteStructBegin(ctx, "Mutation"); err != nil {
		return err
	}
	if m.ColumnOrSuperColumn != nil {
		err := writeStructField(ctx, p, 1, func() error {
			return writeColumnOrSuperColumn(ctx, p, *m.ColumnOrSuperColumn)
		})
		if err != nil {
			return err
		}
	}
	if m.Deletion != nil {
		err := writeStructField(ctx, p, 2, func() error {
			return writeDeletion(ctx, p, *m.Deletion)
		})
		if err != nil {
			return err
		}
	}
	if err := p.WriteFieldStop(ctx); err != nil {
		return err
	}

	return p.WriteStructEnd(ctx)
}

func writeMutationMap(ctx context.Context, p thrift.TProtocol, id int16, mutations map[string]map[string][]adapter.Mutation) error {
	if err := p.WriteFieldBegin(ctx, "", thrift.MAP, id); err != nil {
		return err
	}
	if err := p.WriteMapBegin(ctx, thrift.STRING, thrift.MAP, len(mutations)); err != nil {
		return err
	}
	for key, families := range mutations {
		if err := p.WriteBinary(ctx, []byte(key)); err != nil {
			return err
		}
		if err := p.WriteMapBegin(ctx, thrift.STRING, thrift.LIST, len(families)); err != nil {
			return err
		}
		for family, muts := range families {
			if err := p.WriteString(ctx, family); err != nil {
				return err
			}
			if err := p.WriteListBegin(ctx, thrift.STRUCT, len(muts)); err != nil {
				return err
			}
			for _, m := range muts {
				if err := writeMutation(ctx, p, m); err != nil {
					return err
				}
			}
			if err := p.WriteListEnd(ctx); err != nil {
				return err
			}
		}
		if err := p.WriteMapEnd(ctx); err != nil {
			return err
		}
	}
	if err := p.WriteMapEnd(ctx); err != nil {
		return err
	}

	return p.WriteFieldEnd(ctx)
}

func writeAuthenticationRequest(ctx context.Context, p thrift.TProtocol, username, password string) error {
	if err := p.WriteStructBegin(ctx, "AuthenticationRequest"); err != nil {
		return err
	}
	if err := p.WriteFieldBegin(ctx, "", thrift.MAP, 1); err != nil {
		return err
	}
	if err := p.WriteMapBegin(ctx, thrift.STRING, thrift.STRING, 2); err != nil {
		return err
	}
	if err := p.WriteString(ctx, "username"); err != nil {
		return err
	}
	if err := p.WriteString(ctx, username); err != nil {
		return err
	}
	if err := p.WriteString(ctx, "password"); err != nil {
		return err
	}
	if err := p.WriteString(ctx, password); err != nil {
		return err
	}
	if err := p.WriteMapEnd(ctx); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(ctx); err != nil {
		return err
	}
	if err := p.WriteFieldStop(ctx); err != nil {
		return err
	}

	return p.WriteStructEnd(ctx)
}

// Read-side codecs. Unknown fields are always skipped, never rejected.

func readColumn(ctx context.Context, p thrift.TProtocol) (adapter.Column, error) {
	var col adapter.Column
	if _, err := p.ReadStructBegin(ctx); err != nil {
		return col, err
	}
	for {
		_, ftype, fid, err := p.ReadFieldBegin(ctx)
		if err != nil {
			return col, err
		}
		if ftype == thrift.STOP {
			break
		}
		switch {
		case fid == 1 && ftype == thrift.STRING:
			if col.Name, err = p.ReadBinary(ctx); err != nil {
				return col, err
			}
		case fid == 2 && ftype == thrift.STRING:
			if col.Value, err = p.ReadBinary(ctx); err != nil {
				return col, err
			}
		case fid == 3 && ftype == thrift.I64:
			if col.Timestamp, err = p.ReadI64(ctx); err != nil {
				return col, err
			}
		case fid == 4 && ftype == thrift.I32:
			if col.TTL, err = p.ReadI32(ctx); err != nil {
				return col, err
			}
		default:
			if err := thrift.SkipDefaultDepth(ctx, p, ftype); err != nil {
				return col, err
			}
		}
		if err := p.ReadFieldEnd(ctx); err != nil {
			return col, err
		}
	}
	if err := p.ReadStructEnd(ctx); err != nil {
		return col, err
	}

	return col, nil
}

func readColumnList(ctx context.Context, p thrift.TProtocol) ([]adapter.Column, error) {
	_, size, err := p.ReadListBegin(ctx)
	if err != nil {
		return nil, err
	}
	cols := make([]adapter.Column, 0, size)
	for i := 0; i < size; i++ {
		col, err := readColumn(ctx, p)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}

	return cols, p.ReadListEnd(ctx)
}

func readSuperColumn(ctx context.Context, p thrift.TProtocol) (adapter.SuperColumn, error) {
	var sc adapter.SuperColumn
	if _, err := p.ReadStructBegin(ctx); err != nil {
		return sc, err
	}
	for {
		_, ftype, fid, err := p.ReadFieldBegin(ctx)
		if err != nil {
			return sc, err
		}
		if ftype == thrift.STOP {
			break
		}
		switch {
		case fid == 1 && ftype == thrift.STRING:
			if sc.Name, err = p.ReadBinary(ctx); err != nil {
				return sc, err
			}
		case fid == 2 && ftype == thrift.LIST:
			if sc.Columns, err = readColumnList(ctx, p); err != nil {
				return sc, err
			}
		default:
			if err := thrift.SkipDefaultDepth(ctx, p, ftype); err != nil {
				return sc, err
			}
		}
		if err := p.ReadFieldEnd(ctx); err != nil {
			return sc, err
		}
	}
	if err := p.ReadStructEnd(ctx); err != nil {
		return sc, err
	}

	return sc, nil
}

func readColumnOrSuperColumn(ctx context.Context, p thrift.TProtocol) (adapter.ColumnOrSuperColumn, error) {
	var cosc adapter.ColumnOrSuperColumn
	if _, err := p.ReadStructBegin(ctx); err != nil {
		return cosc, err
	}
	for {
		_, ftype, fid, err := p.ReadFieldBegin(ctx)
		if err != nil {
			return cosc, err
		}
		if ftype == thrift.STOP {
			break
		}
		switch {
		case fid == 1 && ftype == thrift.STRUCT:
			col, err := readColumn(ctx, p)
			if err != nil {
				return cosc, err
			}
			cosc.Column = &col
		case fid == 2 && ftype == thrift.STRUCT:
			sc, err := readSuperColumn(ctx, p)
			if err != nil {
				return cosc, err
			}
			cosc.SuperColumn = &sc
		default:
			if err := thrift.SkipDefaultDepth(ctx, p, ftype); err != nil {
				return cosc, err
			}
		}
		if err := p.ReadFieldEnd(ctx); err != nil {
			return cosc, err
		}
	}
	if err := p.ReadStructEnd(ctx); err != nil {
		return cosc, err
	}

	return cosc, nil
}

func readCoscList(ctx context.Context, p thrift.TProtocol) ([]adapter.ColumnOrSuperColumn, error) {
	_, size, err := p.ReadListBegin(ctx)
	if err != nil {
		return nil, err
	}
	coscs := make([]adapter.ColumnOrSuperColumn, 0, size)
	for i := 0; i < size; i++ {
		cosc, err := readColumnOrSuperColumn(ctx, p)
		if err != nil {
			return nil, err
		}
		coscs = append(coscs, cosc)
	}

	return coscs, p.ReadListEnd(ctx)
}

func readKeySlice(ctx context.Context, p thrift.TProtocol) (adapter.KeySlice, error) {
	var ks adapter.KeySlice
	if _, err := p.ReadStructBegin(ctx); err != nil {
		return ks, err
	}
	for {
		_, ftype, fid, err := p.ReadFieldBegin(ctx)
		if err != nil {
			return ks, err
		}
		if ftype == thrift.STOP {
			break
		}
		switch {
		case fid == 1 && ftype == thrift.STRING:
			if ks.Key, err = p.ReadBinary(ctx); err != nil {
				return ks, err
			}
		case fid == 2 && ftype == thrift.LIST:
			if ks.Columns, err = readCoscList(ctx, p); err != nil {
				return ks, err
			}
		default:
			if err := thrift.SkipDefaultDepth(ctx, p, ftype); err != nil {
				return ks, err
			}
		}
		if err := p.ReadFieldEnd(ctx); err != nil {
			return ks, err
		}
	}
	if err := p.ReadStructEnd(ctx); err != nil {
		return ks, err
	}

	return ks, nil
}

func readKeySliceList(ctx context.Context, p thrift.TProtocol) ([]adapter.KeySlice, error) {
	_, size, err := p.ReadListBegin(ctx)
	if err != nil {
		return nil, err
	}
	slices := make([]adapter.KeySlice, 0, size)
	for i := 0; i < size; i++ {
		ks, err := readKeySlice(ctx, p)
		if err != nil {
			return nil, err
		}
		slices = append(slices, ks)
	}

	return slices, p.ReadListEnd(ctx)
}

func readStringMap(ctx context.Context, p thrift.TProtocol) (map[string]string, error) {
	_, _, size, err := p.ReadMapBegin(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, size)
	for i := 0; i < size; i++ {
		k, err := p.ReadString(ctx)
		if err != nil {
			return nil, err
		}
		v, err := p.ReadString(ctx)
		if err != nil {
			return nil, err
		}
		m[k] = v
	}

	return m, p.ReadMapEnd(ctx)
}

func readStringList(ctx context.Context, p thrift.TProtocol) ([]string, error) {
	_, size, err := p.ReadListBegin(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, size)
	for i := 0; i < size; i++ {
		s, err := p.ReadString(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, p.ReadListEnd(ctx)
}

func readCfDef(ctx context.Context, p thrift.TProtocol) (adapter.CfDef, error) {
	var cf adapter.CfDef
	if _, err := p.ReadStructBegin(ctx); err != nil {
		return cf, err
	}
	for {
		_, ftype, fid, err := p.ReadFieldBegin(ctx)
		if err != nil {
			return cf, err
		}
		if ftype == thrift.STOP {
			break
		}
		switch {
		case fid == 1 && ftype == thrift.STRING:
			if cf.Keyspace, err = p.ReadString(ctx); err != nil {
				return cf, err
			}
		case fid == 2 && ftype == thrift.STRING:
			if cf.Name, err = p.ReadString(ctx); err != nil {
				return cf, err
			}
		case fid == 3 && ftype == thrift.STRING:
			if cf.ColumnType, err = p.ReadString(ctx); err != nil {
				return cf, err
			}
		case fid == 5 && ftype == thrift.STRING:
			if cf.ComparatorType, err = p.ReadString(ctx); err != nil {
				return cf, err
			}
		case fid == 8 && ftype == thrift.STRING:
			if cf.Comment, err = p.ReadString(ctx); err != nil {
				return cf, err
			}
		default:
			if err := thrift.SkipDefaultDepth(ctx, p, ftype); err != nil {
				return cf, err
			}
		}
		if err := p.ReadFieldEnd(ctx); err != nil {
			return cf, err
		}
	}
	if err := p.ReadStructEnd(ctx); err != nil {
		return cf, err
	}

	return cf, nil
}

func readKsDef(ctx context.Context, p thrift.TProtocol) (adapter.KsDef, error) {
	ks := adapter.KsDef{DurableWrites: true}
	if _, err := p.ReadStructBegin(ctx); err != nil {
		return ks, err
	}
	for {
		_, ftype, fid, err := p.ReadFieldBegin(ctx)
		if err != nil {
			return ks, err
		}
		if ftype == thrift.STOP {
			break
		}
		switch {
		case fid == 1 && ftype == thrift.STRING:
			if ks.Name, err = p.ReadString(ctx); err != nil {
				return ks, err
			}
		case fid == 2 && ftype == thrift.STRING:
			if ks.StrategyClass, err = p.ReadString(ctx); err != nil {
				return ks, err
			}
		case fid == 3 && ftype == thrift.MAP:
			if ks.StrategyOptions, err = readStringMap(ctx, p); err != nil {
				return ks, err
			}
		case fid == 5 && ftype == thrift.LIST:
			_, size, err := p.ReadListBegin(ctx)
			if err != nil {
				return ks, err
			}
			ks.CfDefs = make([]adapter.CfDef, 0, size)
			for i := 0; i < size; i++ {
				cf, err := readCfDef(ctx, p)
				if err != nil {
					return ks, err
				}
				ks.CfDefs = append(ks.CfDefs, cf)
			}
			if err := p.ReadListEnd(ctx); err != nil {
				return ks, err
			}
		case fid == 6 && ftype == thrift.BOOL:
			if ks.DurableWrites, err = p.ReadBool(ctx); err != nil {
				return ks, err
			}
		default:
			if err := thrift.SkipDefaultDepth(ctx, p, ftype); err != nil {
				return ks, err
			}
		}
		if err := p.ReadFieldEnd(ctx); err != nil {
			return ks, err
		}
	}
	if err := p.ReadStructEnd(ctx); err != nil {
		return ks, err
	}

	return ks, nil
}

func readTokenRange(ctx context.Context, p thrift.TProtocol) (adapter.TokenRange, error) {
	var tr adapter.TokenRange
	if _, err := p.ReadStructBegin(ctx); err != nil {
		return tr, err
	}
	for {
		_, ftype, fid, err := p.ReadFieldBegin(ctx)
		if err != nil {
			return tr, err
		}
		if ftype == thrift.STOP {
			break
		}
		switch {
		case fid == 1 && ftype == thrift.STRING:
			if tr.StartToken, err = p.ReadString(ctx); err != nil {
				return tr, err
			}
		case fid == 2 && ftype == thrift.STRING:
			if tr.EndToken, err = p.ReadString(ctx); err != nil {
				return tr, err
			}
		case fid == 3 && ftype == thrift.LIST:
			if tr.Endpoints, err = readStringList(ctx, p); err != nil {
				return tr, err
			}
		default:
			if err := thrift.SkipDefaultDepth(ctx, p, ftype); err != nil {
				return tr, err
			}
		}
		if err := p.ReadFieldEnd(ctx); err != nil {
			return tr, err
		}
	}
	if err := p.ReadStructEnd(ctx); err != nil {
		return tr, err
	}

	return tr, nil
}
