package packet

import (
	"encoding/binary"
	"math"

	"github.com/valyala/bytebufferpool"
	"golang.org/x/text/encoding/unicode"

	"github.com/lk2023060901/lineage-gameserver-go/pkg/util/merr"
)

// MaxStringUnits 为 WriteS 允许的最大 UTF-16 码元个数（长度前缀为 uint16）。
const MaxStringUnits = math.MaxUint16

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Writer 是服务端封包的字节写入器。
//
// 约定：
//   - 所有整数均为小端序；
//   - 文本为 uint16 码元个数前缀 + UTF-16LE 码元，不带结尾 0；
//   - 写入错误是粘滞的：第一次出错后后续写入被忽略，通过 Err 取回。
//
// Writer 的底层缓冲区来自 bytebufferpool，使用完毕后应调用 Release 归还。
type Writer struct {
	buf *bytebufferpool.ByteBuffer
	err error
}

// NewWriter 从缓冲池中取出一个空的 Writer。
func NewWriter() *Writer {
	return &Writer{buf: bytebufferpool.Get()}
}

// WriteC 写入 1 字节。
func (w *Writer) WriteC(v byte) {
	if w.err != nil {
		return
	}
	w.buf.B = append(w.buf.B, v)
}

// WriteH 写入 2 字节整数。
func (w *Writer) WriteH(v int16) {
	if w.err != nil {
		return
	}
	w.buf.B = binary.LittleEndian.AppendUint16(w.buf.B, uint16(v))
}

// WriteD 写入 4 字节整数。
func (w *Writer) WriteD(v int32) {
	if w.err != nil {
		return
	}
	w.buf.B = binary.LittleEndian.AppendUint32(w.buf.B, uint32(v))
}

// WriteQ 写入 8 字节整数。
func (w *Writer) WriteQ(v int64) {
	if w.err != nil {
		return
	}
	w.buf.B = binary.LittleEndian.AppendUint64(w.buf.B, uint64(v))
}

// WriteS 写入带长度前缀的文本。
func (w *Writer) WriteS(s string) {
	if w.err != nil {
		return
	}
	units, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		w.err = merr.WrapErrPacketEncodeFailed("string", err)
		return
	}
	n := len(units) / 2
	if n > MaxStringUnits {
		w.err = merr.WrapErrPacketStringTooLong(n, MaxStringUnits)
		return
	}
	w.buf.B = binary.LittleEndian.AppendUint16(w.buf.B, uint16(n))
	w.buf.B = append(w.buf.B, units...)
}

// Len 返回已写入的字节数。
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Err 返回第一次写入失败的原因。
func (w *Writer) Err() error {
	return w.err
}

// Bytes 返回已写入内容的副本，Release 之后依然有效。
func (w *Writer) Bytes() []byte {
	out := make([]byte, w.buf.Len())
	copy(out, w.buf.B)
	return out
}

// Release 将底层缓冲区归还缓冲池，之后不能再使用该 Writer。
func (w *Writer) Release() {
	if w.buf == nil {
		return
	}
	bytebufferpool.Put(w.buf)
	w.buf = nil
}
