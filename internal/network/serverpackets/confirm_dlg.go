package serverpackets

import (
	"github.com/lk2023060901/lineage-gameserver-go/internal/gameserver/sysmsg"
	"github.com/lk2023060901/lineage-gameserver-go/internal/network/packet"
)

const OpcodeConfirmDlg = 0xF3

// ConfirmDlg 是带确认按钮的系统消息对话框 (S2C 0xF3)。
// 客户端在 time 毫秒后自动关闭对话框，答复中带回 requesterID。
type ConfirmDlg struct {
	sysmsg.Message[*ConfirmDlg]

	time        int32
	requesterID int32
}

func NewConfirmDlg(id *sysmsg.MessageID) (*ConfirmDlg, error) {
	d := &ConfirmDlg{}
	if err := d.Init(d, id); err != nil {
		return nil, err
	}
	return d, nil
}

// AddTime 设置对话框的自动关闭时间，单位毫秒。
func (d *ConfirmDlg) AddTime(ms int32) *ConfirmDlg {
	d.time = ms
	return d
}

// AddRequesterID 设置发起请求的对象 ID。
func (d *ConfirmDlg) AddRequesterID(id int32) *ConfirmDlg {
	d.requesterID = id
	return d
}

func (d *ConfirmDlg) Opcode() byte { return OpcodeConfirmDlg }

func (d *ConfirmDlg) Write(w *packet.Writer) {
	w.WriteD(d.ID())
	d.WriteParams(w)
	w.WriteD(d.time)
	w.WriteD(d.requesterID)
}
