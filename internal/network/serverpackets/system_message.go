package serverpackets

import (
	"github.com/lk2023060901/lineage-gameserver-go/internal/gameserver/catalog"
	"github.com/lk2023060901/lineage-gameserver-go/internal/gameserver/sysmsg"
	"github.com/lk2023060901/lineage-gameserver-go/internal/network/packet"
)

const (
	OpcodeSystemMessage = 0x62

	// genericTextMessage 是只有一个文本参数的通用消息，正文即参数本身。
	genericTextMessage = "S1"
)

// SystemMessage 是系统消息封包 (S2C 0x62)。
type SystemMessage struct {
	sysmsg.Message[*SystemMessage]
}

// NewSystemMessage 以消息身份创建系统消息。
func NewSystemMessage(id *sysmsg.MessageID) (*SystemMessage, error) {
	m := &SystemMessage{}
	if err := m.Init(m, id); err != nil {
		return nil, err
	}
	return m, nil
}

// SystemMessageFrom 从目录中按 ID 查找消息身份并创建系统消息。
func SystemMessageFrom(reg *catalog.Registry, id int32) (*SystemMessage, error) {
	msgID, err := reg.Get(id)
	if err != nil {
		return nil, err
	}
	return NewSystemMessage(msgID)
}

// Text 创建一条直接显示 text 的系统消息。
func Text(reg *catalog.Registry, text string) (*SystemMessage, error) {
	msgID, err := reg.ByName(genericTextMessage)
	if err != nil {
		return nil, err
	}
	m, err := NewSystemMessage(msgID)
	if err != nil {
		return nil, err
	}
	return m.AddString(text), nil
}

func (m *SystemMessage) Opcode() byte { return OpcodeSystemMessage }

func (m *SystemMessage) Write(w *packet.Writer) {
	w.WriteD(m.ID())
	m.WriteParams(w)
}
