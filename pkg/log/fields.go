package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FieldNameModule    = "module"
	FieldNameComponent = "component"
	FieldNameMessageID = "messageID"
)

// FieldModule 返回一个包含模块名的 zap 字段。
func FieldModule(module string) zap.Field {
	return zap.String(FieldNameModule, module)
}

// FieldComponent 返回一个包含组件名的 zap 字段。
func FieldComponent(component string) zap.Field {
	return zap.String(FieldNameComponent, component)
}

// FieldMessageID 返回一个包含系统消息 ID 的 zap 字段。
func FieldMessageID(id int32) zap.Field {
	return zap.Int32(FieldNameMessageID, id)
}

// FieldMessage 返回一个包含消息对象的 zap 字段。
func FieldMessage(msg zapcore.ObjectMarshaler) zap.Field {
	return zap.Object("message", msg)
}
