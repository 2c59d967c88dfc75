package sysmsg

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/lk2023060901/lineage-gameserver-go/internal/gameserver/model"
	"github.com/lk2023060901/lineage-gameserver-go/pkg/log"
	"github.com/lk2023060901/lineage-gameserver-go/pkg/metrics"
	"github.com/lk2023060901/lineage-gameserver-go/pkg/util/merr"
)

// Message 是带类型参数的系统消息构建器。
//
// 具体的消息类型通过嵌入 Message[*Concrete] 获得全部 Add 方法，
// 每个 Add 方法都返回具体类型本身，便于链式调用：
//
//	type SystemMessage struct {
//		sysmsg.Message[*SystemMessage]
//	}
//
// 参数个数按 MessageID 声明的个数预分配。追加超过声明个数时存储扩容一个槽位，
// 同时提升 MessageID 的声明个数并输出告警；少填的槽位在序列化时忽略。
//
// Message 不是并发安全的，一个实例只应由一个 goroutine 构建。
type Message[T any] struct {
	self   T
	id     *MessageID
	params []Param
	next   int
}

// Init 绑定具体类型实例和消息身份，必须在调用任何 Add 方法之前调用。
func (m *Message[T]) Init(self T, id *MessageID) error {
	if id == nil {
		return merr.WrapErrSysMsgIDMissing()
	}
	m.self = self
	m.id = id
	m.params = make([]Param, id.ParamCount())
	m.next = 0
	return nil
}

// MessageID 返回消息身份。
func (m *Message[T]) MessageID() *MessageID { return m.id }

// ID 返回消息的数值 ID。
func (m *Message[T]) ID() int32 { return m.id.ID() }

// Cap 返回参数存储的容量，即线上写出的参数个数字节。
func (m *Message[T]) Cap() int { return len(m.params) }

// Len 返回已填充的参数个数。
func (m *Message[T]) Len() int { return m.next }

// Params 返回已填充参数的副本。
func (m *Message[T]) Params() []Param {
	out := make([]Param, m.next)
	copy(out, m.params[:m.next])
	return out
}

func (m *Message[T]) append(p Param) T {
	if m.next >= len(m.params) {
		m.params = append(m.params, Param{})
		size := len(m.params)
		corrected := m.id.raiseParamCount(size)
		if corrected {
			metrics.SysMsgParamCountCorrections.WithLabelValues(strconv.Itoa(int(m.id.ID()))).Inc()
		}
		log.With(log.FieldModule("sysmsg")).Warn("wrong parameter count for system message",
			log.FieldMessageID(m.id.ID()),
			zap.String("name", m.id.Name()),
			zap.Int("paramCount", size),
			zap.Bool("catalogCorrected", corrected))
	}
	m.params[m.next] = p
	m.next++
	metrics.SysMsgParamsAppended.WithLabelValues(p.typ.String()).Inc()
	return m.self
}

// AddString 追加一段文本。
func (m *Message[T]) AddString(text string) T {
	return m.append(textParam(TypeText, text))
}

func (m *Message[T]) AddInt(n int32) T {
	return m.append(intParam(TypeIntNumber, n))
}

func (m *Message[T]) AddLong(n int64) T {
	return m.append(Param{typ: TypeLongNumber, long: n})
}

// AddCastleID 追加城堡 ID，客户端显示城堡名。
func (m *Message[T]) AddCastleID(id int32) T {
	return m.append(intParam(TypeCastleName, id))
}

// AddClassID 追加职业 ID。线上只写出 16 位。
func (m *Message[T]) AddClassID(id int32) T {
	return m.append(intParam(TypeClassID, id))
}

func (m *Message[T]) AddElemental(id int32) T {
	return m.append(intParam(TypeElementName, id))
}

// AddSystemString 追加客户端 sysstring 表中的字符串 ID。
func (m *Message[T]) AddSystemString(id int32) T {
	return m.append(intParam(TypeSystemString, id))
}

func (m *Message[T]) AddInstanceName(id int32) T {
	return m.append(intParam(TypeInstanceName, id))
}

func (m *Message[T]) AddDoorName(id int32) T {
	return m.append(intParam(TypeDoorName, id))
}

func (m *Message[T]) AddItemName(id int32) T {
	return m.append(intParam(TypeItemName, id))
}

// AddItem 追加物品名，物品实例与物品模板取同一个模板 ID。
func (m *Message[T]) AddItem(item model.ItemRef) T {
	return m.AddItemName(item.ItemID())
}

// AddSkillName 追加 1 级技能名。
func (m *Message[T]) AddSkillName(id int32) T {
	return m.AddSkillNameLevel(id, 1)
}

func (m *Message[T]) AddSkillNameLevel(id, level int32) T {
	return m.append(Param{typ: TypeSkillName, ints: [3]int32{id, level}})
}

// AddSkill 追加技能名。自定义技能客户端无法查表，退化为文本。
func (m *Message[T]) AddSkill(skill *model.Skill) T {
	if skill.IsCustom() {
		return m.AddString(skill.Name)
	}
	return m.AddSkillNameLevel(skill.ID, skill.Level)
}

// AddNpcName 追加 NPC 名，id 为 NPC 模板 ID。
func (m *Message[T]) AddNpcName(id int32) T {
	return m.append(intParam(TypeNpcName, NpcNameOffset+id))
}

// AddNpcTemplate 追加模板对应的 NPC 名。模板要求显示自定义名称时退化为文本。
func (m *Message[T]) AddNpcTemplate(tpl *model.NpcTemplate) T {
	if tpl.ShowName {
		return m.AddString(tpl.Name)
	}
	return m.AddNpcName(tpl.ID)
}

// AddNpc 追加 NPC 或召唤兽的名称。
func (m *Message[T]) AddNpc(npc model.Templated) T {
	return m.AddNpcTemplate(npc.Template())
}

// AddPcName 追加玩家名。名称在调用时取值，之后改名不影响已追加的参数。
func (m *Message[T]) AddPcName(player model.Creature) T {
	return m.append(textParam(TypePlayerName, player.Name()))
}

// AddCharName 按角色种类追加名称，无法识别的种类使用其显示名文本。
func (m *Message[T]) AddCharName(cha model.Creature) T {
	switch cha.Kind() {
	case model.KindNpc, model.KindSummon:
		if npc, ok := cha.(model.Templated); ok {
			return m.AddNpc(npc)
		}
	case model.KindPlayer:
		return m.AddPcName(cha)
	case model.KindDoor:
		if door, ok := cha.(model.DoorCreature); ok {
			return m.AddDoorName(door.DoorID())
		}
	}
	return m.AddString(cha.Name())
}

// AddZoneName 追加一个坐标，客户端显示其所在区域名。
func (m *Message[T]) AddZoneName(x, y, z int32) T {
	return m.append(Param{typ: TypeZoneName, ints: [3]int32{x, y, z}})
}

// AddPopup 追加伤害弹出信息。
func (m *Message[T]) AddPopup(target, attacker, damage int32) T {
	return m.append(Param{typ: TypePopupID, ints: [3]int32{target, attacker, damage}})
}
