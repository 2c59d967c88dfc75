package packet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/lineage-gameserver-go/pkg/util/merr"
)

func TestWriterLayout(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.WriteC(0x62)
	w.WriteH(-2)
	w.WriteD(42)
	w.WriteQ(1 << 40)
	w.WriteS("Hi")

	require.NoError(t, w.Err())
	assert.Equal(t, []byte{
		0x62,
		0xFE, 0xFF,
		0x2A, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00,
		0x02, 0x00, 'H', 0x00, 'i', 0x00,
	}, w.Bytes())
	assert.Equal(t, 21, w.Len())
}

func TestWriterReaderRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteC(7)
	w.WriteH(12345)
	w.WriteD(-1000000)
	w.WriteQ(-9000000000)
	w.WriteS("Алиса ☃")
	w.WriteS("")
	data := w.Bytes()
	w.Release()

	r := NewReader(data)
	c, err := r.ReadC()
	require.NoError(t, err)
	assert.Equal(t, byte(7), c)

	h, err := r.ReadH()
	require.NoError(t, err)
	assert.Equal(t, int16(12345), h)

	d, err := r.ReadD()
	require.NoError(t, err)
	assert.Equal(t, int32(-1000000), d)

	q, err := r.ReadQ()
	require.NoError(t, err)
	assert.Equal(t, int64(-9000000000), q)

	s, err := r.ReadS()
	require.NoError(t, err)
	assert.Equal(t, "Алиса ☃", s)

	s, err = r.ReadS()
	require.NoError(t, err)
	assert.Equal(t, "", s)

	assert.Equal(t, 0, r.Remaining())
}

func TestReaderUnderflow(t *testing.T) {
	r := NewReader([]byte{1, 2})
	_, err := r.ReadD()
	assert.ErrorIs(t, err, merr.ErrPacketBufferUnderflow)

	// 长度前缀声明了 3 个码元，但只有 1 个。
	r = NewReader([]byte{0x03, 0x00, 'a', 0x00})
	_, err = r.ReadS()
	assert.ErrorIs(t, err, merr.ErrPacketBufferUnderflow)
}

func TestWriterStringTooLong(t *testing.T) {
	w := NewWriter()
	defer w.Release()

	w.WriteS(strings.Repeat("a", MaxStringUnits+1))
	assert.ErrorIs(t, w.Err(), merr.ErrPacketStringTooLong)

	// 出错之后的写入被忽略。
	w.WriteC(1)
	assert.Equal(t, 0, w.Len())
}

func TestReleaseTwice(t *testing.T) {
	w := NewWriter()
	w.WriteD(1)
	out := w.Bytes()
	w.Release()
	w.Release()
	assert.Equal(t, []byte{1, 0, 0, 0}, out)
}
