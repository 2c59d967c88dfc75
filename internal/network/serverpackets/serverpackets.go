// Package serverpackets 定义由服务端发往客户端的封包。
package serverpackets

import (
	"fmt"
	"io"

	"github.com/lk2023060901/lineage-gameserver-go/internal/network/packet"
	"github.com/lk2023060901/lineage-gameserver-go/pkg/metrics"
	"github.com/lk2023060901/lineage-gameserver-go/pkg/util/merr"
)

// ServerPacket 是一个可编码的服务端封包。
type ServerPacket interface {
	Opcode() byte
	// Write 写出操作码之后的封包体。
	Write(w *packet.Writer)
}

// Printer 由可以输出调试文本的封包实现。
type Printer interface {
	PrintTo(out io.Writer) error
}

func label(p ServerPacket) string {
	return fmt.Sprintf("0x%02X", p.Opcode())
}

// Encode 编码封包：操作码字节加封包体。
func Encode(p ServerPacket) ([]byte, error) {
	w := packet.NewWriter()
	defer w.Release()

	w.WriteC(p.Opcode())
	p.Write(w)
	if err := w.Err(); err != nil {
		return nil, merr.WrapErrPacketEncodeFailed(label(p), err)
	}
	data := w.Bytes()
	metrics.ServerPacketBytes.WithLabelValues(label(p)).Observe(float64(len(data)))
	return data, nil
}

// Dump 将封包的调试文本写入 out，封包不支持调试输出时返回 ErrOperationNotSupported。
func Dump(p ServerPacket, out io.Writer) error {
	printer, ok := p.(Printer)
	if !ok {
		return merr.WrapErrOperationNotSupported(label(p), "dump")
	}
	return printer.PrintTo(out)
}
