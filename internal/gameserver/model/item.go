package model

// ItemRef 是可以解析出物品 ID 的引用（模板或实例）。
type ItemRef interface {
	ItemID() int32
}

var (
	_ ItemRef = (*ItemTemplate)(nil)
	_ ItemRef = (*Item)(nil)
)

// ItemTemplate 是物品的静态模板。
type ItemTemplate struct {
	ID   int32
	Name string
}

func (t *ItemTemplate) ItemID() int32 { return t.ID }

// Item 是背包或地面上的物品实例。
type Item struct {
	ObjectID int32
	Count    int64
	Template *ItemTemplate
}

func (i *Item) ItemID() int32 { return i.Template.ID }

// Skill 是一个具体等级的技能。
//
// DisplayID 与 ID 不同时表示服务端自定义技能，客户端的技能表中没有它，
// 只能以文本形式显示 Name。
type Skill struct {
	ID        int32
	DisplayID int32
	Level     int32
	Name      string
}

// NewSkill 创建一个显示 ID 与真实 ID 相同的技能。
func NewSkill(id, level int32, name string) *Skill {
	return &Skill{ID: id, DisplayID: id, Level: level, Name: name}
}

// IsCustom 表示该技能需要以文本形式显示。
func (s *Skill) IsCustom() bool {
	return s.ID != s.DisplayID
}
