package serverpackets

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/lineage-gameserver-go/internal/gameserver/catalog"
	"github.com/lk2023060901/lineage-gameserver-go/internal/gameserver/model"
	"github.com/lk2023060901/lineage-gameserver-go/internal/gameserver/sysmsg"
	"github.com/lk2023060901/lineage-gameserver-go/internal/network/packet"
	"github.com/lk2023060901/lineage-gameserver-go/pkg/metrics"
	"github.com/lk2023060901/lineage-gameserver-go/pkg/util/merr"
)

func newRegistry(t *testing.T) *catalog.Registry {
	r := catalog.NewRegistry()
	require.NoError(t, r.LoadBytes([]byte(`
messages:
  - id: 1983
    name: S1
    params: 1
  - id: 1510
    name: C1_IS_ASKING_TO_RESURRECT
    params: 1
  - id: 46
    name: S1_HAS_GAINED_S2
    params: 2
`), "yaml"))
	return r
}

func TestSystemMessageEncode(t *testing.T) {
	reg := newRegistry(t)
	m, err := SystemMessageFrom(reg, 46)
	require.NoError(t, err)
	m.AddPcName(model.NewPlayer(1, "Alice")).AddInt(42)

	data, err := Encode(m)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		OpcodeSystemMessage,
		46, 0, 0, 0,
		2,
		byte(sysmsg.TypePlayerName), 5, 0, 'A', 0, 'l', 0, 'i', 0, 'c', 0, 'e', 0,
		byte(sysmsg.TypeIntNumber), 42, 0, 0, 0,
	}, data)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(metrics.ServerPacketBytes), 1)
}

func TestSystemMessageFromMissing(t *testing.T) {
	reg := newRegistry(t)
	_, err := SystemMessageFrom(reg, 9999)
	assert.True(t, errors.Is(err, merr.ErrSysMsgNotFound))

	_, err = NewSystemMessage(nil)
	assert.True(t, errors.Is(err, merr.ErrSysMsgIDMissing))
}

func TestText(t *testing.T) {
	reg := newRegistry(t)
	m, err := Text(reg, "Hi")
	require.NoError(t, err)

	data, err := Encode(m)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		OpcodeSystemMessage,
		0xBF, 0x07, 0, 0,
		1,
		byte(sysmsg.TypeText), 2, 0, 'H', 0, 'i', 0,
	}, data)

	_, err = Text(catalog.NewRegistry(), "Hi")
	assert.True(t, errors.Is(err, merr.ErrSysMsgNotFound))
}

func TestConfirmDlgEncode(t *testing.T) {
	reg := newRegistry(t)
	id, err := reg.ByName("C1_IS_ASKING_TO_RESURRECT")
	require.NoError(t, err)

	d, err := NewConfirmDlg(id)
	require.NoError(t, err)
	got := d.AddCharName(model.NewPlayer(1, "Bo")).AddTime(15000).AddRequesterID(268435457)
	assert.Same(t, d, got)

	data, err := Encode(d)
	require.NoError(t, err)

	r := packet.NewReader(data)
	opcode, _ := r.ReadC()
	assert.Equal(t, byte(OpcodeConfirmDlg), opcode)
	msgID, _ := r.ReadD()
	assert.Equal(t, int32(1510), msgID)
	count, _ := r.ReadC()
	assert.Equal(t, byte(1), count)
	tag, _ := r.ReadC()
	assert.Equal(t, byte(sysmsg.TypePlayerName), tag)
	name, _ := r.ReadS()
	assert.Equal(t, "Bo", name)
	ms, _ := r.ReadD()
	assert.Equal(t, int32(15000), ms)
	requester, err := r.ReadD()
	require.NoError(t, err)
	assert.Equal(t, int32(268435457), requester)
	assert.Equal(t, 0, r.Remaining())
}

func TestEncodeFailure(t *testing.T) {
	m, err := NewSystemMessage(sysmsg.NewMessageID(1983, "S1", 1))
	require.NoError(t, err)
	m.AddString(strings.Repeat("a", packet.MaxStringUnits+1))

	_, err = Encode(m)
	assert.True(t, errors.Is(err, merr.ErrPacketEncodeFailed))
}

func TestDump(t *testing.T) {
	m, err := NewSystemMessage(sysmsg.NewMessageID(1983, "S1", 1))
	require.NoError(t, err)
	m.AddClassID(88)

	var b strings.Builder
	require.NoError(t, Dump(m, &b))
	assert.Equal(t, "98\n1983\n1\n88\n", b.String())

	err = Dump(rawPacket{}, &b)
	assert.True(t, errors.Is(err, merr.ErrOperationNotSupported))
}

type rawPacket struct{}

func (rawPacket) Opcode() byte           { return 0x01 }
func (rawPacket) Write(w *packet.Writer) {}
