package sysmsg

import (
	"go.uber.org/zap"

	"github.com/lk2023060901/lineage-gameserver-go/pkg/log"
	"github.com/lk2023060901/lineage-gameserver-go/pkg/metrics"
)

// ParamWriter 是参数块写出的目标，字节序与字符串编码由实现决定。
type ParamWriter interface {
	WriteC(v byte)
	WriteH(v int16)
	WriteD(v int32)
	WriteQ(v int64)
	WriteS(v string)
}

type payloadWriter func(w ParamWriter, p Param)

func writeText(w ParamWriter, p Param) { w.WriteS(p.text) }

func writeInt(w ParamWriter, p Param) { w.WriteD(p.ints[0]) }

var payloadWriters = map[ParamType]payloadWriter{
	TypeText:         writeText,
	TypePlayerName:   writeText,
	TypeLongNumber:   func(w ParamWriter, p Param) { w.WriteQ(p.long) },
	TypeIntNumber:    writeInt,
	TypeNpcName:      writeInt,
	TypeItemName:     writeInt,
	TypeCastleName:   writeInt,
	TypeElementName:  writeInt,
	TypeInstanceName: writeInt,
	TypeDoorName:     writeInt,
	TypeSystemString: writeInt,
	TypeSkillName: func(w ParamWriter, p Param) {
		w.WriteD(p.ints[0])
		w.WriteH(int16(p.ints[1]))
	},
	TypeZoneName: writeInts3,
	TypePopupID:  writeInts3,
	TypeClassID: func(w ParamWriter, p Param) {
		w.WriteH(int16(p.ints[0]))
	},
}

func writeInts3(w ParamWriter, p Param) {
	w.WriteD(p.ints[0])
	w.WriteD(p.ints[1])
	w.WriteD(p.ints[2])
}

// WriteParams 写出参数块：一个字节的存储容量，随后每个已填充参数写出
// 类型字节和载荷。未填充的槽位不写出。
//
// 没有载荷布局的类型只写出类型字节。
func (m *Message[T]) WriteParams(w ParamWriter) {
	w.WriteC(byte(len(m.params)))
	for _, p := range m.params[:m.next] {
		w.WriteC(byte(p.typ))
		write, ok := payloadWriters[p.typ]
		if !ok {
			metrics.SysMsgDeadLetterParams.WithLabelValues(p.typ.String()).Inc()
			log.RatedWarn(10, "system message parameter has no wire layout",
				zap.Stringer("type", p.typ),
				log.FieldMessage(m))
			continue
		}
		write(w, p)
	}
}
