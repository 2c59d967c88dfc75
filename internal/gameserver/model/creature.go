// Package model 定义系统消息编码所需的世界实体边界类型。
//
// 这里只保留编码层关心的字段：ID、显示名、模板以及 show-name 开关；
// 实体的其它行为（AI、战斗、持久化）不属于本包。
package model

import "go.uber.org/atomic"

// Kind 标识 Creature 的运行时种类，是一个封闭集合。
type Kind int

const (
	KindOther Kind = iota
	KindNpc
	KindPlayer
	KindSummon
	KindDoor
)

var kindNames = map[Kind]string{
	KindOther:  "other",
	KindNpc:    "npc",
	KindPlayer: "player",
	KindSummon: "summon",
	KindDoor:   "door",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Creature 是所有可被命名的世界实体。
type Creature interface {
	Kind() Kind
	Name() string
}

// Templated 是持有 NPC 模板的实体（NPC 与召唤兽）。
type Templated interface {
	Creature
	Template() *NpcTemplate
}

// DoorCreature 是可以解析出门 ID 的实体。
type DoorCreature interface {
	Creature
	DoorID() int32
}

var (
	_ Templated    = (*Npc)(nil)
	_ Templated    = (*Summon)(nil)
	_ Creature     = (*Player)(nil)
	_ DoorCreature = (*Door)(nil)
	_ Creature     = (*FakePlayer)(nil)
)

// NpcTemplate 是 NPC/召唤兽共享的静态模板。
type NpcTemplate struct {
	ID   int32
	Name string
	// ShowName 为 true 时，客户端直接显示 Name，而不是按 ID 查名称表。
	ShowName bool
}

// Npc 是一个 NPC 实例。
type Npc struct {
	ObjectID int32
	template *NpcTemplate
}

func NewNpc(objectID int32, template *NpcTemplate) *Npc {
	return &Npc{ObjectID: objectID, template: template}
}

func (n *Npc) Kind() Kind             { return KindNpc }
func (n *Npc) Name() string           { return n.template.Name }
func (n *Npc) Template() *NpcTemplate { return n.template }

// Player 是一个在线玩家。
// 名字可能在改名时被其它 goroutine 修改，因此使用原子字符串保存。
type Player struct {
	ObjectID int32
	name     atomic.String
}

func NewPlayer(objectID int32, name string) *Player {
	p := &Player{ObjectID: objectID}
	p.name.Store(name)
	return p
}

func (p *Player) Kind() Kind   { return KindPlayer }
func (p *Player) Name() string { return p.name.Load() }

// SetName 修改玩家的显示名。
func (p *Player) SetName(name string) { p.name.Store(name) }

// Summon 是玩家召唤出的伙伴。
type Summon struct {
	ObjectID int32
	Owner    *Player
	template *NpcTemplate
}

func NewSummon(objectID int32, owner *Player, template *NpcTemplate) *Summon {
	return &Summon{ObjectID: objectID, Owner: owner, template: template}
}

func (s *Summon) Kind() Kind             { return KindSummon }
func (s *Summon) Name() string           { return s.template.Name }
func (s *Summon) Template() *NpcTemplate { return s.template }

// Door 是一扇门，ID 来自 doorData。
type Door struct {
	ID   int32
	name string
}

func NewDoor(id int32, name string) *Door {
	return &Door{ID: id, name: name}
}

func (d *Door) Kind() Kind    { return KindDoor }
func (d *Door) Name() string  { return d.name }
func (d *Door) DoorID() int32 { return d.ID }

// FakePlayer 是跟随玩家的分身，它既不是 Player 也不是 Summon。
type FakePlayer struct {
	ObjectID int32
	Owner    *Player
}

func NewFakePlayer(objectID int32, owner *Player) *FakePlayer {
	return &FakePlayer{ObjectID: objectID, Owner: owner}
}

func (f *FakePlayer) Kind() Kind   { return KindOther }
func (f *FakePlayer) Name() string { return f.Owner.Name() }
