package sysmsg

import "fmt"

// ParamType 是系统消息参数的类型标签，取值集合封闭，数值即线上的类型字节。
type ParamType byte

const (
	TypeText       ParamType = 0
	TypeIntNumber  ParamType = 1
	TypeNpcName    ParamType = 2
	TypeItemName   ParamType = 3
	TypeSkillName  ParamType = 4
	TypeCastleName ParamType = 5
	TypeLongNumber ParamType = 6
	TypeZoneName   ParamType = 7
	// 8 与 ItemName 含义相同，服务端不使用。
	TypeElementName  ParamType = 9
	TypeInstanceName ParamType = 10
	TypeDoorName     ParamType = 11
	TypePlayerName   ParamType = 12
	TypeSystemString ParamType = 13
	// 14 未知。
	TypeClassID ParamType = 15
	TypePopupID ParamType = 16
)

// NpcNameOffset 加在 NPC ID 上，客户端据此按名称表查 NPC 名。
const NpcNameOffset = 1000000

var paramTypeNames = map[ParamType]string{
	TypeText:         "TEXT",
	TypeIntNumber:    "INT_NUMBER",
	TypeNpcName:      "NPC_NAME",
	TypeItemName:     "ITEM_NAME",
	TypeSkillName:    "SKILL_NAME",
	TypeCastleName:   "CASTLE_NAME",
	TypeLongNumber:   "LONG_NUMBER",
	TypeZoneName:     "ZONE_NAME",
	TypeElementName:  "ELEMENT_NAME",
	TypeInstanceName: "INSTANCE_NAME",
	TypeDoorName:     "DOOR_NAME",
	TypePlayerName:   "PLAYER_NAME",
	TypeSystemString: "SYSTEM_STRING",
	TypeClassID:      "CLASS_ID",
	TypePopupID:      "POPUP_ID",
}

func (t ParamType) String() string {
	if name, ok := paramTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", byte(t))
}

// Param 是一个已经追加到消息中的参数，追加后不可修改。
//
// 载荷形状由类型决定：
//   - TEXT、PLAYER_NAME：text
//   - LONG_NUMBER：long
//   - SKILL_NAME：ints[0..1]（id、level）
//   - ZONE_NAME：ints[0..2]（x、y、z）
//   - POPUP_ID：ints[0..2]（target、attacker、damage）
//   - 其余单整数类型：ints[0]
type Param struct {
	typ  ParamType
	text string
	long int64
	ints [3]int32
}

func textParam(typ ParamType, text string) Param {
	return Param{typ: typ, text: text}
}

func intParam(typ ParamType, v int32) Param {
	return Param{typ: typ, ints: [3]int32{v}}
}

// Type 返回参数类型。
func (p Param) Type() ParamType { return p.typ }

// Text 返回文本载荷。
func (p Param) Text() string { return p.text }

// Int 返回单整数载荷，对多整数类型返回第一个分量。
func (p Param) Int() int32 { return p.ints[0] }

// Long 返回 64 位整数载荷。
func (p Param) Long() int64 { return p.long }

// Ints 返回多整数载荷的全部分量。
func (p Param) Ints() []int32 {
	switch p.typ {
	case TypeSkillName:
		return []int32{p.ints[0], p.ints[1]}
	case TypeZoneName, TypePopupID:
		return []int32{p.ints[0], p.ints[1], p.ints[2]}
	default:
		return []int32{p.ints[0]}
	}
}
