package types

// Value is a decoded payload. The set of implementations is closed: the
// twelve concrete types below are the only ones, so a type switch covering
// them is exhaustive.
type Value interface {
	Kind() Kind
	isValue()
}

type (
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []int8
	String    string
	IntArray  []int32
	LongArray []int64
)

// List is an ordered sequence of nodes that all share one element kind. An
// empty list still records the element kind byte it was encoded with, which
// may be KindEnd.
type List struct {
	Elem  Kind
	Items []*Node
}

// Compound maps field names to nodes. Field order is not significant; when a
// name repeats, the last occurrence wins.
type Compound map[string]*Node

func (Byte) Kind() Kind      { return KindByte }
func (Short) Kind() Kind     { return KindShort }
func (Int) Kind() Kind       { return KindInt }
func (Long) Kind() Kind      { return KindLong }
func (Float) Kind() Kind     { return KindFloat }
func (Double) Kind() Kind    { return KindDouble }
func (ByteArray) Kind() Kind { return KindByteArray }
func (String) Kind() Kind    { return KindString }
func (List) Kind() Kind      { return KindList }
func (Compound) Kind() Kind  { return KindCompound }
func (IntArray) Kind() Kind  { return KindIntArray }
func (LongArray) Kind() Kind { return KindLongArray }

func (Byte) isValue()      {}
func (Short) isValue()     {}
func (Int) isValue()       {}
func (Long) isValue()      {}
func (Float) isValue()     {}
func (Double) isValue()    {}
func (ByteArray) isValue() {}
func (String) isValue()    {}
func (List) isValue()      {}
func (Compound) isValue()  {}
func (IntArray) isValue()  {}
func (LongArray) isValue() {}
