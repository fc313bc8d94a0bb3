package types

import (
	"fmt"
	"strings"
)

// Kind identifies one of the payload variants of the format. The numbers are
// the on-disk tag ids.
type Kind uint8

const (
	// KindEnd terminates a compound. It is not a value kind and is never
	// decoded as one.
	KindEnd       Kind = 0
	KindByte      Kind = 1
	KindShort     Kind = 2
	KindInt       Kind = 3
	KindLong      Kind = 4
	KindFloat     Kind = 5
	KindDouble    Kind = 6
	KindByteArray Kind = 7
	KindString    Kind = 8
	KindList      Kind = 9
	KindCompound  Kind = 10
	KindIntArray  Kind = 11
	KindLongArray Kind = 12
)

// MaxKind is the highest recognized tag id.
const MaxKind = KindLongArray

var kindNames = [...]string{
	KindEnd:       "TAG_End",
	KindByte:      "TAG_Byte",
	KindShort:     "TAG_Short",
	KindInt:       "TAG_Int",
	KindLong:      "TAG_Long",
	KindFloat:     "TAG_Float",
	KindDouble:    "TAG_Double",
	KindByteArray: "TAG_Byte_Array",
	KindString:    "TAG_String",
	KindList:      "TAG_List",
	KindCompound:  "TAG_Compound",
	KindIntArray:  "TAG_Int_Array",
	KindLongArray: "TAG_Long_Array",
}

// String implements the Stringer interface for Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("TAG_Unknown_%d", uint8(k))
}

// Valid reports whether k names a value kind. KindEnd is not valid.
func (k Kind) Valid() bool {
	return k >= KindByte && k <= MaxKind
}

// ParseKind accepts a kind name such as "TAG_Compound", "compound" or
// "Byte_Array". Matching is case-insensitive and the TAG_ prefix is optional.
func ParseKind(name string) (Kind, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	needle = strings.TrimPrefix(needle, "tag_")
	for k, n := range kindNames {
		if strings.ToLower(strings.TrimPrefix(n, "TAG_")) == needle {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown tag kind %q", name)
}
