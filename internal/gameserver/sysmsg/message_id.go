package sysmsg

import (
	"fmt"

	"go.uber.org/atomic"
)

// MessageID 是一条系统消息的身份：数值 ID、名称和声明的参数个数。
//
// MessageID 在所有以它构建的消息之间共享。声明的参数个数只会增长，
// 当某条消息追加的参数超过声明值时由该消息修正。
type MessageID struct {
	id         int32
	name       string
	paramCount atomic.Int32
}

// NewMessageID 创建消息身份，paramCount 为声明的参数个数，负数按 0 处理。
func NewMessageID(id int32, name string, paramCount int) *MessageID {
	m := &MessageID{id: id, name: name}
	if paramCount > 0 {
		m.paramCount.Store(int32(paramCount))
	}
	return m
}

func (m *MessageID) ID() int32 { return m.id }

func (m *MessageID) Name() string { return m.name }

// ParamCount 返回当前声明的参数个数。
func (m *MessageID) ParamCount() int { return int(m.paramCount.Load()) }

// raiseParamCount 把声明的参数个数提升到至少 n。
// 只有当本次调用实际修改了数值时返回 true。
func (m *MessageID) raiseParamCount(n int) bool {
	for {
		cur := m.paramCount.Load()
		if int(cur) >= n {
			return false
		}
		if m.paramCount.CompareAndSwap(cur, int32(n)) {
			return true
		}
	}
}

func (m *MessageID) String() string {
	if m.name == "" {
		return fmt.Sprintf("SystemMessage(%d)", m.id)
	}
	return fmt.Sprintf("%s(%d)", m.name, m.id)
}
