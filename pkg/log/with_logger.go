package log

import (
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

var (
	_ WithLogger   = &Binder{}
	_ LoggerBinder = &Binder{}
)

// WithLogger 是一个用于访问本地 Logger 的接口。
type WithLogger interface {
	Logger() *MLogger
}

// LoggerBinder 是一个用于设置 Logger 的接口。
type LoggerBinder interface {
	SetLogger(logger *MLogger)
}

// Binder 是一个嵌入式类型，用于在组件内部统一管理和访问 Logger。
//
// 未绑定 Logger 时每次访问都从当前全局 Logger 派生，
// 因此组件可以早于 ReplaceGlobals 创建。
type Binder struct {
	logger atomic.Pointer[MLogger]
	fields []zap.Field
}

// SetLogger 将 Logger 绑定到 Binder 上。
func (w *Binder) SetLogger(logger *MLogger) {
	w.logger.Store(logger)
}

// SetFields 设置未绑定 Logger 时附加到全局 Logger 上的字段，须在组件开始使用前调用。
func (w *Binder) SetFields(fields ...zap.Field) {
	w.fields = fields
}

// Logger 返回当前绑定在 Binder 上的 Logger。
func (w *Binder) Logger() *MLogger {
	if l := w.logger.Load(); l != nil {
		return l
	}
	return With(w.fields...)
}
