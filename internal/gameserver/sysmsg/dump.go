package sysmsg

import (
	"io"
	"strconv"
	"strings"
)

// DebugMarker 是调试输出的第一行，与系统消息包的操作码相同。
const DebugMarker = 0x62

type payloadPrinter func(b *strings.Builder, p Param)

func printText(b *strings.Builder, p Param) { line(b, p.text) }

func printInt(b *strings.Builder, p Param) { line(b, strconv.Itoa(int(p.ints[0]))) }

func printInts(b *strings.Builder, p Param) {
	for _, v := range p.Ints() {
		line(b, strconv.Itoa(int(v)))
	}
}

var payloadPrinters = map[ParamType]payloadPrinter{
	TypeText:         printText,
	TypePlayerName:   printText,
	TypeLongNumber:   func(b *strings.Builder, p Param) { line(b, strconv.FormatInt(p.long, 10)) },
	TypeIntNumber:    printInt,
	TypeNpcName:      printInt,
	TypeItemName:     printInt,
	TypeCastleName:   printInt,
	TypeElementName:  printInt,
	TypeInstanceName: printInt,
	TypeDoorName:     printInt,
	TypeSystemString: printInt,
	TypeClassID:      printInt,
	TypeSkillName:    printInts,
	TypeZoneName:     printInts,
	TypePopupID:      printInts,
}

func line(b *strings.Builder, s string) {
	b.WriteString(s)
	b.WriteByte('\n')
}

// DebugString 返回消息的调试文本：标记、消息 ID、容量，随后每个已填充参数的
// 载荷各占一行，多分量载荷每个分量一行。
//
// 调试文本不包含类型标签，没有载荷布局的参数不输出。
func (m *Message[T]) DebugString() string {
	var b strings.Builder
	line(&b, strconv.Itoa(DebugMarker))
	line(&b, strconv.Itoa(int(m.id.ID())))
	line(&b, strconv.Itoa(len(m.params)))
	for _, p := range m.params[:m.next] {
		if printPayload, ok := payloadPrinters[p.typ]; ok {
			printPayload(&b, p)
		}
	}
	return b.String()
}

// PrintTo 把调试文本写入 out。
func (m *Message[T]) PrintTo(out io.Writer) error {
	_, err := io.WriteString(out, m.DebugString())
	return err
}
