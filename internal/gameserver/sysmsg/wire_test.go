package sysmsg

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/lineage-gameserver-go/internal/gameserver/model"
	"github.com/lk2023060901/lineage-gameserver-go/internal/network/packet"
	"github.com/lk2023060901/lineage-gameserver-go/pkg/metrics"
)

type decodedParam struct {
	typ  ParamType
	text string
	long int64
	ints []int32
}

// decodeParams 按线格式解析参数块。
func decodeParams(t *testing.T, data []byte) (int, []decodedParam) {
	r := packet.NewReader(data)
	count, err := r.ReadC()
	require.NoError(t, err)

	var out []decodedParam
	for r.Remaining() > 0 {
		tag, err := r.ReadC()
		require.NoError(t, err)
		p := decodedParam{typ: ParamType(tag)}
		switch p.typ {
		case TypeText, TypePlayerName:
			p.text, err = r.ReadS()
			require.NoError(t, err)
		case TypeLongNumber:
			p.long, err = r.ReadQ()
			require.NoError(t, err)
		case TypeSkillName:
			id, err := r.ReadD()
			require.NoError(t, err)
			level, err := r.ReadH()
			require.NoError(t, err)
			p.ints = []int32{id, int32(level)}
		case TypeZoneName, TypePopupID:
			for i := 0; i < 3; i++ {
				v, err := r.ReadD()
				require.NoError(t, err)
				p.ints = append(p.ints, v)
			}
		case TypeClassID:
			v, err := r.ReadH()
			require.NoError(t, err)
			p.ints = []int32{int32(v)}
		default:
			v, err := r.ReadD()
			require.NoError(t, err)
			p.ints = []int32{v}
		}
		out = append(out, p)
	}
	return int(count), out
}

func TestWireRoundTrip(t *testing.T) {
	m := newTestMessage(t, NewMessageID(30, "", 15))
	m.AddString("Giran").
		AddInt(-7).
		AddNpcName(20001).
		AddItemName(57).
		AddSkillNameLevel(1204, 3).
		AddCastleID(5).
		AddLong(1<<40).
		AddZoneName(-80000, 150000, -3000).
		AddElemental(2).
		AddInstanceName(120).
		AddDoorName(24190001).
		AddPcName(model.NewPlayer(1, "Alice")).
		AddSystemString(1500).
		AddClassID(88).
		AddPopup(268477, 268478, 1200)

	count, got := decodeParams(t, encode(t, m))
	assert.Equal(t, 15, count)
	assert.Equal(t, []decodedParam{
		{typ: TypeText, text: "Giran"},
		{typ: TypeIntNumber, ints: []int32{-7}},
		{typ: TypeNpcName, ints: []int32{NpcNameOffset + 20001}},
		{typ: TypeItemName, ints: []int32{57}},
		{typ: TypeSkillName, ints: []int32{1204, 3}},
		{typ: TypeCastleName, ints: []int32{5}},
		{typ: TypeLongNumber, long: 1 << 40},
		{typ: TypeZoneName, ints: []int32{-80000, 150000, -3000}},
		{typ: TypeElementName, ints: []int32{2}},
		{typ: TypeInstanceName, ints: []int32{120}},
		{typ: TypeDoorName, ints: []int32{24190001}},
		{typ: TypePlayerName, text: "Alice"},
		{typ: TypeSystemString, ints: []int32{1500}},
		{typ: TypeClassID, ints: []int32{88}},
		{typ: TypePopupID, ints: []int32{268477, 268478, 1200}},
	}, got)
}

func TestWirePlayerAndInt(t *testing.T) {
	m := newTestMessage(t, NewMessageID(31, "", 2))
	m.AddPcName(model.NewPlayer(1, "Alice")).AddInt(42)

	assert.Equal(t, []byte{
		2,
		byte(TypePlayerName), 5, 0, 'A', 0, 'l', 0, 'i', 0, 'c', 0, 'e', 0,
		byte(TypeIntNumber), 42, 0, 0, 0,
	}, encode(t, m))
}

func TestWireZoneOnUndeclaredMessage(t *testing.T) {
	id := NewMessageID(32, "", 0)
	m := newTestMessage(t, id)
	m.AddZoneName(100, 200, 300)

	assert.Equal(t, 1, m.Cap())
	assert.Equal(t, 1, id.ParamCount())
	assert.Equal(t, []byte{
		1,
		byte(TypeZoneName),
		100, 0, 0, 0,
		200, 0, 0, 0,
		0x2C, 0x01, 0, 0,
	}, encode(t, m))
}

func TestWireClassIDIsShort(t *testing.T) {
	m := newTestMessage(t, NewMessageID(33, "", 1))
	m.AddClassID(0x1234)

	assert.Equal(t, []byte{1, byte(TypeClassID), 0x34, 0x12}, encode(t, m))
	assert.Equal(t, "98\n33\n1\n4660\n", m.DebugString())
}

func TestWireSkillLevelIsShort(t *testing.T) {
	m := newTestMessage(t, NewMessageID(34, "", 1))
	m.AddSkillName(3)

	assert.Equal(t, []byte{1, byte(TypeSkillName), 3, 0, 0, 0, 1, 0}, encode(t, m))
}

func TestWireEmptyMessage(t *testing.T) {
	m := newTestMessage(t, NewMessageID(35, "", 0))
	assert.Equal(t, []byte{0}, encode(t, m))
}

func TestWireParamWithoutLayout(t *testing.T) {
	counter := metrics.SysMsgDeadLetterParams.WithLabelValues(ParamType(8).String())
	before := testutil.ToFloat64(counter)

	m := newTestMessage(t, NewMessageID(36, "", 2))
	m.append(Param{typ: 8})
	m.AddInt(9)

	// 没有布局的参数只占一个类型字节，后续参数仍按布局写出。
	data := encode(t, m)
	assert.Equal(t, []byte{2, 8, byte(TypeIntNumber), 9, 0, 0, 0}, data)
	assert.Equal(t, float64(1), testutil.ToFloat64(counter)-before)

	assert.Equal(t, "98\n36\n2\n9\n", m.DebugString())
}
