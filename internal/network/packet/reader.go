package packet

import (
	"encoding/binary"

	"github.com/lk2023060901/lineage-gameserver-go/pkg/util/merr"
)

// Reader 按 Writer 的布局从字节切片中读取基础类型。
type Reader struct {
	data []byte
	off  int
}

// NewReader 创建一个从 data 开头读取的 Reader，data 不会被复制。
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining 返回尚未读取的字节数。
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

func (r *Reader) next(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, merr.WrapErrPacketBufferUnderflow(n, r.Remaining())
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

// ReadC 读取 1 字节。
func (r *Reader) ReadC() (byte, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadH 读取 2 字节整数。
func (r *Reader) ReadH() (int16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(b)), nil
}

// ReadD 读取 4 字节整数。
func (r *Reader) ReadD() (int32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

// ReadQ 读取 8 字节整数。
func (r *Reader) ReadQ() (int64, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

// ReadS 读取带长度前缀的文本。
func (r *Reader) ReadS() (string, error) {
	n, err := r.ReadH()
	if err != nil {
		return "", err
	}
	raw, err := r.next(int(uint16(n)) * 2)
	if err != nil {
		return "", err
	}
	text, err := utf16le.NewDecoder().Bytes(raw)
	if err != nil {
		return "", merr.WrapErrIoUnexpectEOF("string", err)
	}
	return string(text), nil
}
