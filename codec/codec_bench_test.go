package codec

import (
	"testing"
	"time"

	"github.com/quickwritereader/CobolGlue/storage"
	"github.com/vmihailenco/msgpack/v5"

	goccyjson "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
)

type scalarArgs struct {
	A int8   `json:"a" msgpack:"a"`
	B int16  `json:"b" msgpack:"b"`
	C int32  `json:"c" msgpack:"c"`
	D []byte `json:"d" msgpack:"d"`
}

var args = scalarArgs{A: -5, B: 1234, C: -98765, D: []byte("CUSTOMER-0001")}

var sinkBytes []byte
var sinkInt int32

func logPerOp(b *testing.B, name string, count int, elapsed time.Duration, size int) {
	perOp := float64(elapsed.Nanoseconds()) / float64(b.N*count)
	b.Logf("%s: per-op = %.2f ns/op, %.2f ops/sec", name, perOp, 1e9/perOp)
	b.Logf("%s size: %d bytes", name, size)
}

func BenchmarkScalars_Cells(b *testing.B) {
	const count = 1000
	ca, cb, cc, cd := storage.New(1), storage.New(2), storage.New(4), storage.New(len(args.D))
	b.ReportAllocs()
	b.ResetTimer()

	start := time.Now()
	for i := 0; i < b.N; i++ {
		for j := 0; j < count; j++ {
			_ = InjectInt8(ca, args.A)
			_ = InjectInt16(cb, args.B)
			_ = InjectInt32(cc, args.C)
			_ = InjectBytes(cd, args.D)
			sinkInt, _ = ExtractInt32(cc)
			sinkBytes, _ = ExtractBytes(cd, cd.Size())
		}
	}
	elapsed := time.Since(start)

	b.StopTimer()
	logPerOp(b, "Cells", count, elapsed, ca.Size()+cb.Size()+cc.Size()+cd.Size())
}

func BenchmarkScalars_GoJson(b *testing.B) {
	const count = 1000
	b.ReportAllocs()
	b.ResetTimer()

	start := time.Now()
	for i := 0; i < b.N; i++ {
		for j := 0; j < count; j++ {
			sinkBytes, _ = goccyjson.Marshal(args)
		}
	}
	elapsed := time.Since(start)

	b.StopTimer()
	logPerOp(b, "GoJson", count, elapsed, len(sinkBytes))
}

func BenchmarkScalars_JsonIter(b *testing.B) {
	const count = 1000
	var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary
	b.ReportAllocs()
	b.ResetTimer()

	start := time.Now()
	for i := 0; i < b.N; i++ {
		for j := 0; j < count; j++ {
			sinkBytes, _ = jsonIter.Marshal(args)
		}
	}
	elapsed := time.Since(start)

	b.StopTimer()
	logPerOp(b, "JsonIter", count, elapsed, len(sinkBytes))
}

func BenchmarkScalars_MsgPack(b *testing.B) {
	const count = 1000
	b.ReportAllocs()
	b.ResetTimer()

	start := time.Now()
	for i := 0; i < b.N; i++ {
		for j := 0; j < count; j++ {
			sinkBytes, _ = msgpack.Marshal(args)
		}
	}
	elapsed := time.Since(start)

	b.StopTimer()
	logPerOp(b, "MsgPack", count, elapsed, len(sinkBytes))
}
