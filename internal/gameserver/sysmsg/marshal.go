package sysmsg

import (
	"go.uber.org/zap/zapcore"
)

// MarshalLogObject 实现 zapcore.ObjectMarshaler。
func (m *Message[T]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt32("id", m.id.ID())
	if m.id.Name() != "" {
		enc.AddString("name", m.id.Name())
	}
	enc.AddInt("capacity", len(m.params))
	enc.AddInt("filled", m.next)
	return enc.AddArray("params", paramArray(m.params[:m.next]))
}

type paramArray []Param

func (a paramArray) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, p := range a {
		if err := enc.AppendObject(p); err != nil {
			return err
		}
	}
	return nil
}

// MarshalLogObject 实现 zapcore.ObjectMarshaler。
func (p Param) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("type", p.typ.String())
	switch p.typ {
	case TypeText, TypePlayerName:
		enc.AddString("value", p.text)
	case TypeLongNumber:
		enc.AddInt64("value", p.long)
	case TypeSkillName, TypeZoneName, TypePopupID:
		return enc.AddArray("value", zapcore.ArrayMarshalerFunc(func(ae zapcore.ArrayEncoder) error {
			for _, v := range p.Ints() {
				ae.AppendInt32(v)
			}
			return nil
		}))
	default:
		enc.AddInt32("value", p.ints[0])
	}
	return nil
}
