package typetags

// Kind tags the native shape a storage cell is marshalled into
type Kind uint8

const (
	KindInvalid Kind = 0
	KindBytes   Kind = 1 // caller-specified length
	KindInt8    Kind = 2
	KindInt16   Kind = 3
	KindInt32   Kind = 4
)

// String returns the name the native-call side uses for the kind
func (k Kind) String() string {
	switch k {
	case KindBytes:
		return "byte[]"
	case KindInt8:
		return "byte"
	case KindInt16:
		return "short"
	case KindInt32:
		return "int"
	default:
		return "invalid"
	}
}

// JNIName returns the JNI type a native method receives the kind as
func (k Kind) JNIName() string {
	switch k {
	case KindBytes:
		return "jbyteArray"
	case KindInt8:
		return "jbyte"
	case KindInt16:
		return "jshort"
	case KindInt32:
		return "jint"
	default:
		return "invalid"
	}
}

// Width returns the fixed byte width of the kind. Bytes has no fixed width and reports 0.
func (k Kind) Width() int {
	switch k {
	case KindInt8:
		return 1
	case KindInt16:
		return 2
	case KindInt32:
		return 4
	default:
		return 0
	}
}

func (k Kind) IsFixedWidth() bool {
	return k.Width() > 0
}

// ParseKind accepts both Go-style and native-call-style names.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "bytes", "byte[]":
		return KindBytes, true
	case "int8", "byte":
		return KindInt8, true
	case "int16", "short":
		return KindInt16, true
	case "int32", "int":
		return KindInt32, true
	default:
		return KindInvalid, false
	}
}

// FromCType maps a C parameter type name to the kind it is passed as.
// Anything that is not one of the primitive integer names travels as raw bytes.
func FromCType(typeName string) Kind {
	switch typeName {
	case "int", "unsigned int":
		return KindInt32
	case "char", "unsigned char":
		return KindInt8
	case "short", "unsigned short":
		return KindInt16
	default:
		return KindBytes
	}
}

func IsPrimitiveCType(typeName string) bool {
	return FromCType(typeName) != KindBytes
}
